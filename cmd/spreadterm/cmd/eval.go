package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hhollis/spreadterm/internal/clierror"
	"github.com/hhollis/spreadterm/internal/eval"
	"github.com/hhollis/spreadterm/internal/lexer"
	"github.com/hhollis/spreadterm/internal/parser"
)

var evalExpr string

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Lex, parse, and evaluate a standalone formula",
	Long: `Run the full lex -> parse -> evaluate pipeline on formula text (the
part of a cell after the leading "=") against an empty environment — no
cell references will resolve.

To evaluate a formula against an actual grid of cell values, use the
repl command instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate an inline formula instead of reading from file")
}

func runEval(cmd *cobra.Command, args []string) error {
	input, err := readFormulaInput(evalExpr, args)
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return clierror.New(err.Error(), input)
	}

	tree, err := parser.Parse(tokens)
	if err != nil {
		return clierror.New(err.Error(), input)
	}

	result, err := eval.Eval(tree, eval.MapEnvironment{})
	if err != nil {
		return clierror.New(err.Error(), input)
	}

	fmt.Println(result.Display())
	return nil
}
