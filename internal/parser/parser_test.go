package parser

import (
	"testing"

	"github.com/hhollis/spreadterm/internal/ast"
	"github.com/hhollis/spreadterm/internal/lexer"
	"github.com/hhollis/spreadterm/internal/value"
)

func mustParse(t *testing.T, src string) ast.Node {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", src, err)
	}
	node, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", src, err)
	}
	return node
}

func TestParseLeftAssociativeAdditive(t *testing.T) {
	// 1 - 2 - 3 must parse as (1 - 2) - 3, not 1 - (2 - 3).
	node := mustParse(t, "1 - 2 - 3")
	top, ok := node.(*ast.Binary)
	if !ok || top.Op != value.OpSubtract {
		t.Fatalf("top node = %#v, want Binary(OpSubtract)", node)
	}
	inner, ok := top.Left.(*ast.Binary)
	if !ok || inner.Op != value.OpSubtract {
		t.Fatalf("top.Left = %#v, want Binary(OpSubtract) nested on the left", top.Left)
	}
	if _, ok := top.Right.(*ast.Literal); !ok {
		t.Fatalf("top.Right = %#v, want Literal", top.Right)
	}
}

func TestParsePowerIsLeftAssociative(t *testing.T) {
	// Deliberate deviation from math convention: 2**3**2 == (2**3)**2.
	node := mustParse(t, "2 ** 3 ** 2")
	top, ok := node.(*ast.Binary)
	if !ok || top.Op != value.OpPower {
		t.Fatalf("top node = %#v, want Binary(OpPower)", node)
	}
	if _, ok := top.Left.(*ast.Binary); !ok {
		t.Fatalf("top.Left = %#v, want nested Binary (left-grouped)", top.Left)
	}
	if lit, ok := top.Right.(*ast.Literal); !ok || lit.Value.IntValue() != 2 {
		t.Fatalf("top.Right = %#v, want Literal(2)", top.Right)
	}
}

func TestParsePrecedenceMultiplicativeOverAdditive(t *testing.T) {
	node := mustParse(t, "1 + 2 * 3")
	top, ok := node.(*ast.Binary)
	if !ok || top.Op != value.OpAdd {
		t.Fatalf("top node = %#v, want Binary(OpAdd)", node)
	}
	right, ok := top.Right.(*ast.Binary)
	if !ok || right.Op != value.OpMultiply {
		t.Fatalf("top.Right = %#v, want Binary(OpMultiply)", top.Right)
	}
}

func TestParseUnaryIsRightAssociative(t *testing.T) {
	// !!true parses as !(!true): the outer Unary's child is another Unary.
	node := mustParse(t, "!!true")
	outer, ok := node.(*ast.Unary)
	if !ok || outer.Op != value.OpLogicalNot {
		t.Fatalf("top node = %#v, want Unary(OpLogicalNot)", node)
	}
	inner, ok := outer.Child.(*ast.Unary)
	if !ok || inner.Op != value.OpLogicalNot {
		t.Fatalf("outer.Child = %#v, want nested Unary(OpLogicalNot)", outer.Child)
	}
}

func TestParseParenthesesOverridePrecedence(t *testing.T) {
	node := mustParse(t, "(1 + 2) * 3")
	top, ok := node.(*ast.Binary)
	if !ok || top.Op != value.OpMultiply {
		t.Fatalf("top node = %#v, want Binary(OpMultiply)", node)
	}
	if left, ok := top.Left.(*ast.Binary); !ok || left.Op != value.OpAdd {
		t.Fatalf("top.Left = %#v, want Binary(OpAdd)", top.Left)
	}
}

func TestParseCellRef(t *testing.T) {
	node := mustParse(t, "[2, 5]")
	ref, ok := node.(*ast.CellRef)
	if !ok {
		t.Fatalf("node = %#v, want CellRef", node)
	}
	if ref.Addr != (ast.CellAddress{Row: 2, Col: 5}) {
		t.Errorf("addr = %v, want [2, 5]", ref.Addr)
	}
}

func TestParseAggregateRequiresLiteralCorners(t *testing.T) {
	node := mustParse(t, "sum([0, 0], [1, 1])")
	agg, ok := node.(*ast.Aggregate)
	if !ok {
		t.Fatalf("node = %#v, want Aggregate", node)
	}
	if agg.Fn != value.AggSum {
		t.Errorf("Fn = %v, want AggSum", agg.Fn)
	}
	if agg.TopLeft != (ast.CellAddress{Row: 0, Col: 0}) || agg.BottomRight != (ast.CellAddress{Row: 1, Col: 1}) {
		t.Errorf("corners = %v, %v, want [0,0], [1,1]", agg.TopLeft, agg.BottomRight)
	}
}

func TestParseCastOperators(t *testing.T) {
	node := mustParse(t, "int 3.9")
	unary, ok := node.(*ast.Unary)
	if !ok || unary.Op != value.OpFloatToInt {
		t.Fatalf("node = %#v, want Unary(OpFloatToInt)", node)
	}

	node = mustParse(t, "float 3")
	unary, ok = node.(*ast.Unary)
	if !ok || unary.Op != value.OpIntToFloat {
		t.Fatalf("node = %#v, want Unary(OpIntToFloat)", node)
	}
}

func TestParseTrailingTokensFail(t *testing.T) {
	toks, err := lexer.Tokenize("1 2")
	if err != nil {
		t.Fatalf("Tokenize error = %v", err)
	}
	if _, err := Parse(toks); err == nil {
		t.Fatal("expected trailing-token error, got nil")
	}
}

func TestParseMissingClosingParenFails(t *testing.T) {
	toks, err := lexer.Tokenize("(1 + 2")
	if err != nil {
		t.Fatalf("Tokenize error = %v", err)
	}
	if _, err := Parse(toks); err == nil {
		t.Fatal("expected missing-paren error, got nil")
	}
}

func TestParseIncompleteInputFails(t *testing.T) {
	toks, err := lexer.Tokenize("1 +")
	if err != nil {
		t.Fatalf("Tokenize error = %v", err)
	}
	if _, err := Parse(toks); err == nil {
		t.Fatal("expected incomplete-input error, got nil")
	}
}

func TestParseAggregateRejectsNonLiteralCorner(t *testing.T) {
	toks, err := lexer.Tokenize("sum(1 + 1, [1, 1])")
	if err != nil {
		t.Fatalf("Tokenize error = %v", err)
	}
	if _, err := Parse(toks); err == nil {
		t.Fatal("expected aggregate-corner error, got nil")
	}
}

func TestParseStringAndBooleanLiterals(t *testing.T) {
	node := mustParse(t, `"hi"`)
	lit, ok := node.(*ast.Literal)
	if !ok || lit.Value.Kind() != value.KindString || lit.Value.StringValue() != "hi" {
		t.Fatalf("node = %#v, want Literal(String(\"hi\"))", node)
	}

	node = mustParse(t, "true")
	lit, ok = node.(*ast.Literal)
	if !ok || lit.Value.Kind() != value.KindBoolean || !lit.Value.BoolValue() {
		t.Fatalf("node = %#v, want Literal(Boolean(true))", node)
	}
}
