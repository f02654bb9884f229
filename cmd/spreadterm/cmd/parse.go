package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hhollis/spreadterm/internal/ast"
	"github.com/hhollis/spreadterm/internal/clierror"
	"github.com/hhollis/spreadterm/internal/lexer"
	"github.com/hhollis/spreadterm/internal/parser"
	"github.com/hhollis/spreadterm/internal/value"
)

var parseExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse formula text and display the expression tree",
	Long: `Parse formula text (the part of a cell after the leading "=") and
display its expression tree.

Use -e to parse a single formula from the command line, or provide a
file containing the formula text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse an inline formula instead of reading from file")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readFormulaInput(parseExpr, args)
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

	dumpNode(tree, 0)
	return nil
}

func dumpNode(node ast.Node, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}

	switch n := node.(type) {
	case *ast.Literal:
		fmt.Printf("%sLiteral(%s)\n", pad, describePrimitive(n.Value))
	case *ast.CellRef:
		fmt.Printf("%sCellRef%s\n", pad, n.Addr)
	case *ast.Unary:
		fmt.Printf("%sUnary(%d)\n", pad, n.Op)
		dumpNode(n.Child, indent+1)
	case *ast.Binary:
		fmt.Printf("%sBinary(%d)\n", pad, n.Op)
		dumpNode(n.Left, indent+1)
		dumpNode(n.Right, indent+1)
	case *ast.Aggregate:
		fmt.Printf("%sAggregate(%d) over %s..%s\n", pad, n.Fn, n.TopLeft, n.BottomRight)
	default:
		fmt.Printf("%s%T\n", pad, node)
	}
}

func describePrimitive(p value.Primitive) string {
	return fmt.Sprintf("%s:%s", p.Kind(), p.Display())
}
