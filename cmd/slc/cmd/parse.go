package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-slc/slc/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseEval bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source code and print the AST",
	Long: `Parse source code and print the Abstract Syntax Tree.

If no file is provided, reads from stdin. Use -e to parse a single
expression-bearing program from the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseEval, "expression", "e", false, "parse the argument as inline source instead of a file path")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input string

	switch {
	case parseEval:
		if len(args) == 0 {
			return fmt.Errorf("no source provided")
		}
		input = args[0]
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	root, errs := parser.ParseProgram(input)
	if len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "parse errors:")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	fmt.Println(root.String())
	return nil
}
