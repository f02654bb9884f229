// Command spreadterm drives the formula evaluation pipeline from the
// terminal: lex/parse/eval on standalone formula text, or a line-oriented
// REPL over a full grid.
package main

import (
	"fmt"
	"os"

	"github.com/hhollis/spreadterm/cmd/spreadterm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
