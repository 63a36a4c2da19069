package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nihei9/combc/combinator"
	verr "github.com/nihei9/combc/error"
	"github.com/nihei9/combc/tracing"
)

var parseFlags = struct {
	source *string
	format *string
	trace  *bool
}{}

const (
	outputFormatText = "text"
	outputFormatJSON = "json"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse <grammar name>",
		Short:   "Parse a text stream against a built-in grammar",
		Example: `  echo 'jane@example.com' | combc parse email`,
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	parseFlags.format = cmd.Flags().StringP("format", "f", outputFormatText, "output format: one of text|json")
	parseFlags.trace = cmd.Flags().Bool("trace", false, "print a structured trace of driver steps to stderr")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if *parseFlags.format != outputFormatText && *parseFlags.format != outputFormatJSON {
		return fmt.Errorf("invalid output format: %v", *parseFlags.format)
	}

	g, err := lookupGrammar(args[0])
	if err != nil {
		return err
	}
	if *parseFlags.trace {
		g.opts = append(g.opts, combinator.WithLogger(tracing.NewConsole()))
	}

	src := os.Stdin
	if *parseFlags.source != "" {
		f, err := os.Open(*parseFlags.source)
		if err != nil {
			return fmt.Errorf("cannot open the source file %s: %w", *parseFlags.source, err)
		}
		defer f.Close()
		src = f
	}

	text, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	res, parseErr := g.root.Parse(string(text), g.opts...)
	if parseErr != nil {
		writeParseError(os.Stdout, parseErr)
		return fmt.Errorf("parse failed")
	}

	switch *parseFlags.format {
	case outputFormatJSON:
		b, err := json.Marshal(res.Tree)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(b))
	default:
		for _, leaf := range res.Tree {
			fmt.Fprintf(os.Stdout, "%v\n", leaf)
		}
		if res.Remaining != "" {
			fmt.Fprintf(os.Stdout, "(unconsumed: %q)\n", res.Remaining)
		}
	}

	return nil
}

func writeParseError(w io.Writer, err error) {
	var pe *verr.ParseError
	if errors.As(err, &pe) {
		fmt.Fprintf(w, "%v:%v: unexpected text %q, expected one of: ", pe.Line, pe.Col, pe.Text)
		for i, e := range pe.Expected {
			if i > 0 {
				fmt.Fprintf(w, ", ")
			}
			fmt.Fprintf(w, "%v", e)
		}
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "%v\n", err)
}
