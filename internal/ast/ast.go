// Package ast defines the expression tree produced by the parser and
// walked by the evaluator. There is one node kind per spec §3: literals,
// cell references, unary/binary operations, and range aggregates.
package ast

import (
	"fmt"

	"github.com/hhollis/spreadterm/internal/value"
)

// CellAddress identifies a grid position by row and column. It is used as
// a map key in the text-grid driver, so equality is the plain struct
// comparison Go already gives it.
type CellAddress struct {
	Row int32
	Col int32
}

// String renders an address the way error messages quote it: "[row, col]".
func (a CellAddress) String() string {
	return fmt.Sprintf("[%d, %d]", a.Row, a.Col)
}

// Node is any expression tree node. Eval lives in the evaluator package,
// not here, so that ast stays free of the environment type it would
// otherwise need to import.
type Node interface {
	node()
}

// Literal wraps a constant primitive value.
type Literal struct {
	Value value.Primitive
}

func (*Literal) node() {}

// CellRef reads another cell's last-computed value at evaluation time.
type CellRef struct {
	Addr CellAddress
}

func (*CellRef) node() {}

// Unary applies one of the prefix operators (! ~ int float) to Child.
type Unary struct {
	Op    value.UnaryOp
	Child Node
}

func (*Unary) node() {}

// Binary applies a binary operator to Left and Right.
type Binary struct {
	Op          value.BinaryOp
	Left, Right Node
}

func (*Binary) node() {}

// Aggregate applies a range function (max/mean/min/sum) over the
// rectangular range spanning TopLeft and BottomRight. Both corners are
// literal addresses — the grammar never accepts an arbitrary expression
// here (spec §9, "aggregates as syntax, not as expressions").
type Aggregate struct {
	Fn                   value.AggregateFn
	TopLeft, BottomRight CellAddress
}

func (*Aggregate) node() {}
