package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hhollis/spreadterm/internal/lexer"
)

var (
	lexExpr  string
	showPos  bool
	showType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a formula expression",
	Long: `Tokenize (lex) formula text (the part of a cell after the leading
"=") and print the resulting tokens.

This command is useful for debugging the lexer and for observing the
documented hazards directly: raw-substring keyword matching and the
order-of-tests "-" handling (spec §9).

Examples:
  # Tokenize an inline formula
  spreadterm lex -e "[0,0] + [0,1]"

  # Tokenize the contents of a file
  spreadterm lex formula.txt

  # Show token types and byte offsets
  spreadterm lex --show-type --show-pos -e "1 - 2"`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexFormula,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "tokenize inline formula text instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token byte offsets")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func lexFormula(cmd *cobra.Command, args []string) error {
	input, err := readFormulaInput(lexExpr, args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return fmt.Errorf("lex error: %w", err)
	}

	for _, tok := range tokens {
		printToken(tok)
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(tokens))
	}

	return nil
}

func printToken(tok lexer.Token) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-12v]", tok.Type)
	}
	output += fmt.Sprintf(" %q", tok.Text)
	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Start, tok.End)
	}
	fmt.Println(output)
}

// readFormulaInput resolves formula text from an -e flag or a file
// argument, in that priority order — the same convention lex/parse/eval
// all share. One of the two must be given.
func readFormulaInput(inlineExpr string, args []string) (string, error) {
	if inlineExpr != "" {
		return inlineExpr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("either provide a file path or use -e flag for inline formula text")
}
