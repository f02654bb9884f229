package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hhollis/spreadterm/internal/ast"
	"github.com/hhollis/spreadterm/internal/clierror"
	"github.com/hhollis/spreadterm/internal/grid"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Drive a grid interactively from the terminal",
	Long: `A line-oriented stand-in for the original ncurses Grid/Editor
interface: the reference corpus carries no curses-style terminal
library, so instead of full-screen panes this reads commands from
stdin and prints the same two driver-level views the shell would
render — the editor line (raw text) and the result line (evaluated
value or error).

Commands:
  set <row>,<col> <text>   set a cell's raw text and recompute the grid
  get <row>,<col>          show the raw text and evaluated result
  clear <row>,<col>        equivalent to "set <row>,<col> " with empty text
  print                    show every present cell's computed value
  quit                     exit

A bare "set" with no text after the coordinate clears the cell, matching
set_cell_text(addr, "").`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	g := grid.New(cfg.Rows, cfg.Cols)
	rows, cols := g.Dimensions()
	fmt.Printf("spreadterm repl — %dx%d grid. Type \"quit\" to exit.\n", rows, cols)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runReplCommand(g, line); err != nil {
			if err == errQuit {
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

var errQuit = fmt.Errorf("quit")

func runReplCommand(g *grid.Grid, line string) error {
	fields := strings.SplitN(line, " ", 2)
	command := fields[0]
	rest := ""
	if len(fields) == 2 {
		rest = fields[1]
	}

	switch command {
	case "quit", "exit":
		return errQuit

	case "set":
		addrStr, text, _ := strings.Cut(strings.TrimSpace(rest), " ")
		addr, err := parseAddr(addrStr)
		if err != nil {
			return err
		}
		g.SetCellText(addr, text)
		return printCell(g, addr)

	case "clear":
		addr, err := parseAddr(strings.TrimSpace(rest))
		if err != nil {
			return err
		}
		g.SetCellText(addr, "")
		fmt.Printf("[%d,%d] cleared\n", addr.Row, addr.Col)
		return nil

	case "get":
		addr, err := parseAddr(strings.TrimSpace(rest))
		if err != nil {
			return err
		}
		return printCell(g, addr)

	case "print":
		for _, entry := range g.GetAllCellValues() {
			if entry.Err != nil {
				fmt.Printf("[%d,%d] ERROR: %s\n", entry.Addr.Row, entry.Addr.Col, entry.Err)
			} else {
				fmt.Printf("[%d,%d] %s\n", entry.Addr.Row, entry.Addr.Col, entry.Value.Display())
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func printCell(g *grid.Grid, addr ast.CellAddress) error {
	text, hasText := g.GetCellText(addr)
	if !hasText {
		text = ""
	}
	echo := text
	if cfg.UppercaseBooleanEcho && (text == "true" || text == "false") {
		echo = strings.ToUpper(text)
	}
	fmt.Printf("editor: %s\n", echo)

	cellValue, err, ok := g.GetCellValue(addr)
	switch {
	case !ok:
		fmt.Println("result: (empty)")
	case err != nil:
		if strings.HasPrefix(text, "=") {
			fmt.Println(clierror.New(err.Error(), text[1:]).Format(false))
		} else {
			fmt.Printf("result: ERROR: %s\n", err)
		}
	default:
		fmt.Printf("result: %s\n", cellValue.Display())
	}
	return nil
}

func parseAddr(s string) (ast.CellAddress, error) {
	row, col, ok := strings.Cut(s, ",")
	if !ok {
		return ast.CellAddress{}, fmt.Errorf(`expected "row,col", got %q`, s)
	}
	r, err := strconv.ParseInt(strings.TrimSpace(row), 10, 32)
	if err != nil {
		return ast.CellAddress{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	c, err := strconv.ParseInt(strings.TrimSpace(col), 10, 32)
	if err != nil {
		return ast.CellAddress{}, fmt.Errorf("invalid col in %q: %w", s, err)
	}
	return ast.CellAddress{Row: int32(r), Col: int32(c)}, nil
}
