// Package eval walks an expression tree against an Environment of already
// computed cell values, per spec §4.4. Evaluation is a pure function of
// the tree and the environment: it never mutates the grid itself, and it
// never attempts to reorder or schedule work — the grid driver owns the
// recomputation order (spec §5).
package eval

import (
	"fmt"

	"github.com/hhollis/spreadterm/internal/ast"
	"github.com/hhollis/spreadterm/internal/value"
)

// CellResult is what the environment stores for one address: either a
// computed value, or the error that a previous evaluation of that cell's
// formula produced. Exactly one of the two is meaningful, discriminated
// by Err being nil.
type CellResult struct {
	Value value.Primitive
	Err   error
}

// Environment supplies the already-computed result of another cell. The
// text-grid driver is the only production implementation; tests may
// supply a bare map.
type Environment interface {
	CellResult(addr ast.CellAddress) (CellResult, bool)
}

// MapEnvironment is a minimal Environment backed by a plain map of
// successful values, useful in isolated evaluator tests that don't need
// a full grid or any errored cells.
type MapEnvironment map[ast.CellAddress]value.Primitive

// CellResult implements Environment.
func (m MapEnvironment) CellResult(addr ast.CellAddress) (CellResult, bool) {
	v, ok := m[addr]
	if !ok {
		return CellResult{}, false
	}
	return CellResult{Value: v}, true
}

// Eval walks node against env and produces either a value or the first
// error encountered. Errors propagate unchanged from the point they are
// raised — there is no recovery or default-value substitution anywhere
// in the tree (spec §7).
func Eval(node ast.Node, env Environment) (value.Primitive, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return n.Value, nil

	case *ast.CellRef:
		res, ok := env.CellResult(n.Addr)
		if !ok {
			return value.Primitive{}, fmt.Errorf("cell %s has no value", n.Addr)
		}
		if res.Err != nil {
			return value.Primitive{}, res.Err
		}
		return res.Value, nil

	case *ast.Unary:
		operand, err := Eval(n.Child, env)
		if err != nil {
			return value.Primitive{}, err
		}
		return value.ApplyUnary(n.Op, operand)

	case *ast.Binary:
		left, err := Eval(n.Left, env)
		if err != nil {
			return value.Primitive{}, err
		}
		right, err := Eval(n.Right, env)
		if err != nil {
			return value.Primitive{}, err
		}
		return value.Apply(n.Op, left, right)

	case *ast.Aggregate:
		cells, err := gatherRange(n.TopLeft, n.BottomRight, env)
		if err != nil {
			return value.Primitive{}, err
		}
		return value.Reduce(n.Fn, cells)

	default:
		return value.Primitive{}, fmt.Errorf("unknown expression node")
	}
}

// gatherRange reads every present cell in the rectangle spanning
// topLeft..bottomRight (inclusive, regardless of which corner is which).
// Absent cells are skipped per spec §4.4; a cell present as a propagated
// error fails the whole aggregate with that error, same as a direct
// CellRef would.
func gatherRange(topLeft, bottomRight ast.CellAddress, env Environment) ([]value.Primitive, error) {
	minRow, maxRow := topLeft.Row, bottomRight.Row
	if minRow > maxRow {
		minRow, maxRow = maxRow, minRow
	}
	minCol, maxCol := topLeft.Col, bottomRight.Col
	if minCol > maxCol {
		minCol, maxCol = maxCol, minCol
	}

	var cells []value.Primitive
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			res, ok := env.CellResult(ast.CellAddress{Row: r, Col: c})
			if !ok {
				continue
			}
			if res.Err != nil {
				return nil, res.Err
			}
			cells = append(cells, res.Value)
		}
	}
	return cells, nil
}
