package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hhollis/spreadterm/internal/ast"
	"github.com/hhollis/spreadterm/internal/grid"
)

var setCells []string

// addSetFlag registers the --set flag shared by dump and query: each
// occurrence is "row,col=text", applied to a freshly constructed grid
// before the command does its own work.
func addSetFlag(c *cobra.Command) {
	c.Flags().StringArrayVar(&setCells, "set", nil, `cell assignment "row,col=text" (repeatable)`)
}

// buildGrid constructs a grid sized per cfg and applies every --set
// assignment in the order given, row-major config dimensions unless
// overridden by the assignment's own coordinates exceeding them.
func buildGrid() (*grid.Grid, error) {
	rows, cols := cfg.Rows, cfg.Cols
	for _, assignment := range setCells {
		addr, _, err := parseAssignment(assignment)
		if err != nil {
			continue
		}
		if addr.Row >= rows {
			rows = addr.Row + 1
		}
		if addr.Col >= cols {
			cols = addr.Col + 1
		}
	}

	g := grid.New(rows, cols)
	for _, assignment := range setCells {
		addr, text, err := parseAssignment(assignment)
		if err != nil {
			return nil, err
		}
		g.SetCellText(addr, text)
	}
	return g, nil
}

// parseAssignment splits "row,col=text" into a CellAddress and its text.
func parseAssignment(s string) (ast.CellAddress, string, error) {
	eq := strings.IndexByte(s, '=')
	if eq < 0 {
		return ast.CellAddress{}, "", fmt.Errorf(`invalid --set %q: expected "row,col=text"`, s)
	}
	coord, text := s[:eq], s[eq+1:]

	comma := strings.IndexByte(coord, ',')
	if comma < 0 {
		return ast.CellAddress{}, "", fmt.Errorf(`invalid --set %q: expected "row,col=text"`, s)
	}
	row, err := strconv.ParseInt(strings.TrimSpace(coord[:comma]), 10, 32)
	if err != nil {
		return ast.CellAddress{}, "", fmt.Errorf("invalid --set %q: %w", s, err)
	}
	col, err := strconv.ParseInt(strings.TrimSpace(coord[comma+1:]), 10, 32)
	if err != nil {
		return ast.CellAddress{}, "", fmt.Errorf("invalid --set %q: %w", s, err)
	}
	return ast.CellAddress{Row: int32(row), Col: int32(col)}, text, nil
}
