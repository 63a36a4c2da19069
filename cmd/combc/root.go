package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "combc",
	Short: "Run a parser-combinator grammar over a text stream",
	Long: `combc provides two features:
- Parses a text stream against one of the built-in example grammars.
- Prints a built-in grammar's entry point and its expect set, for debugging.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
