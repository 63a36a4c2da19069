package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nihei9/combc/driver"
)

func init() {
	cmd := &cobra.Command{
		Use:     "describe <grammar name>",
		Short:   "Print a built-in grammar's entry point and expect set",
		Example: `  combc describe restsh`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDescribe,
	}
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	g, err := lookupGrammar(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "root: %v\n", g.root.String())

	expect := driver.ComputeExpect(g.root, driver.NewExpectGuard())
	fmt.Fprintf(os.Stdout, "expect:\n")
	for _, e := range expect {
		fmt.Fprintf(os.Stdout, "  %v\n", e)
	}

	return nil
}
