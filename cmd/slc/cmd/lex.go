package cmd

import (
	"fmt"
	"os"

	"github.com/go-slc/slc/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	lexEval     string
	lexShowPos  bool
	lexShowType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file and print the resulting tokens",
	Long: `Tokenize a program and print the resulting tokens.

Useful for debugging the Scanner and understanding how source code is
tokenized (algorithm).

Examples:
  slc lex script.slc
  slc lex -e "let x = 1 + 2;"
  slc lex --show-type --show-pos script.slc`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
}

func lexScript(cmd *cobra.Command, args []string) error {
	var input string

	if lexEval != "" {
		input = lexEval
	} else if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		input = string(content)
	} else {
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	l := lexer.New(input, lexer.WithPreserveComments(true))
	tokenCount := 0
	for {
		tok := l.NextToken()
		tokenCount++
		printToken(tok)
		if tok.Type == lexer.EOF {
			break
		}
	}

	for _, e := range l.Errors() {
		fmt.Fprintf(os.Stderr, "illegal byte at %s: %s\n", e.Pos, e.Message)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "---\ntotal tokens: %d\n", tokenCount)
	}

	return nil
}

func printToken(tok lexer.Token) {
	var output string
	if lexShowType {
		output = fmt.Sprintf("[%-10s]", tok.Type)
	}
	if tok.Literal == "" {
		output += fmt.Sprintf(" %s", tok.Type)
	} else {
		output += fmt.Sprintf(" %q", tok.Literal)
	}
	if lexShowPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(output)
}
