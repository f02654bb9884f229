// Package grid implements the text-grid driver described in spec §4.5: the
// stateful shell-facing surface that owns a cell's raw text, classifies it,
// and drives full-grid recomputation after every edit. It is the only
// production Environment the evaluator ever runs against.
package grid

import (
	"strconv"
	"strings"

	"github.com/hhollis/spreadterm/internal/ast"
	"github.com/hhollis/spreadterm/internal/eval"
	"github.com/hhollis/spreadterm/internal/lexer"
	"github.com/hhollis/spreadterm/internal/parser"
	"github.com/hhollis/spreadterm/internal/value"
)

// Grid owns the two maps from spec §3: text_map and value_map, plus the
// declared rectangular dimensions that bound a full recomputation pass.
type Grid struct {
	rows, cols int32
	text       map[ast.CellAddress]string
	values     map[ast.CellAddress]eval.CellResult
}

// New constructs an empty grid sized rows × cols (spec §6, "new").
func New(rows, cols int32) *Grid {
	return &Grid{
		rows:   rows,
		cols:   cols,
		text:   make(map[ast.CellAddress]string),
		values: make(map[ast.CellAddress]eval.CellResult),
	}
}

// Dimensions reports the grid's declared row/column extent.
func (g *Grid) Dimensions() (rows, cols int32) {
	return g.rows, g.cols
}

// SetCellText replaces the raw text at addr and performs a full grid
// recomputation (spec §5): every declared coordinate is reclassified and
// re-evaluated, in row-major order, against the value_map snapshot as it
// stands at the moment each cell is visited.
func (g *Grid) SetCellText(addr ast.CellAddress, text string) {
	if text == "" {
		delete(g.text, addr)
	} else {
		g.text[addr] = text
	}
	g.recomputeAll()
}

// GetCellText returns the raw text last set at addr, or false if never
// set or since cleared.
func (g *Grid) GetCellText(addr ast.CellAddress) (string, bool) {
	t, ok := g.text[addr]
	return t, ok
}

// GetCellValue returns the last-computed result at addr, or false if the
// cell has no value (never set, cleared, or never yet recomputed).
func (g *Grid) GetCellValue(addr ast.CellAddress) (value.Primitive, error, bool) {
	res, ok := g.values[addr]
	if !ok {
		return value.Primitive{}, nil, false
	}
	return res.Value, res.Err, true
}

// CellResultEntry pairs an address with its computed result, the element
// type of GetAllCellValues.
type CellResultEntry struct {
	Addr  ast.CellAddress
	Value value.Primitive
	Err   error
}

// GetAllCellValues returns a snapshot of every present value_map entry.
// Order is row-major for determinism, though callers should treat the
// grid as keyed storage rather than relying on list order.
func (g *Grid) GetAllCellValues() []CellResultEntry {
	var out []CellResultEntry
	for r := int32(0); r < g.rows; r++ {
		for c := int32(0); c < g.cols; c++ {
			addr := ast.CellAddress{Row: r, Col: c}
			res, ok := g.values[addr]
			if !ok {
				continue
			}
			out = append(out, CellResultEntry{Addr: addr, Value: res.Value, Err: res.Err})
		}
	}
	return out
}

// CellResult implements eval.Environment, letting the grid serve directly
// as the environment a formula is evaluated against.
func (g *Grid) CellResult(addr ast.CellAddress) (eval.CellResult, bool) {
	res, ok := g.values[addr]
	return res, ok
}

// recomputeAll re-derives value_map from text_map for every declared
// coordinate, in row-major order (spec §5). Formula cells read through
// g itself, so a formula sees whichever of its dependencies were visited
// earlier in this same pass — the documented, accepted non-determinism
// of multi-row cascades (spec §9.4).
func (g *Grid) recomputeAll() {
	next := make(map[ast.CellAddress]eval.CellResult, len(g.text))
	for r := int32(0); r < g.rows; r++ {
		for c := int32(0); c < g.cols; c++ {
			addr := ast.CellAddress{Row: r, Col: c}
			text, ok := g.text[addr]
			if !ok {
				delete(g.values, addr)
				continue
			}
			res, present := classify(text, g)
			if present {
				next[addr] = res
				g.values[addr] = res
			} else {
				delete(g.values, addr)
			}
		}
	}
	g.values = next
}

// classify applies the spec §4.5 first-match-wins rules to one cell's raw
// text. The bool result is false only for the empty-string case, meaning
// the cell has no entry in value_map at all.
func classify(text string, env eval.Environment) (eval.CellResult, bool) {
	if strings.HasPrefix(text, "=") {
		return evaluateFormula(text[1:], env), true
	}
	if n, err := strconv.ParseInt(text, 10, 32); err == nil {
		return eval.CellResult{Value: value.Integer(int32(n))}, true
	}
	if text == "true" {
		return eval.CellResult{Value: value.Boolean(true)}, true
	}
	if text == "false" {
		return eval.CellResult{Value: value.Boolean(false)}, true
	}
	if f, err := strconv.ParseFloat(text, 32); err == nil {
		return eval.CellResult{Value: value.Float(float32(f))}, true
	}
	if text == "" {
		return eval.CellResult{}, false
	}
	return eval.CellResult{Value: value.String(text)}, true
}

func evaluateFormula(src string, env eval.Environment) eval.CellResult {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return eval.CellResult{Err: err}
	}
	tree, err := parser.Parse(tokens)
	if err != nil {
		return eval.CellResult{Err: err}
	}
	v, err := eval.Eval(tree, env)
	if err != nil {
		return eval.CellResult{Err: err}
	}
	return eval.CellResult{Value: v}
}
