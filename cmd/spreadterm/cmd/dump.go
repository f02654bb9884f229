package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hhollis/spreadterm/internal/snapshot"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print a grid's computed values as JSON",
	Long: `Build a grid from one or more --set "row,col=text" assignments, run a
full recomputation, and print its value_map as a JSON debug document.

This is read-only introspection, not a persistence format: there is no
corresponding "load" command, and the JSON shape is not meant to be fed
back in.

Example:
  spreadterm dump --set "0,0=2" --set "0,1=3" --set "0,2==[0,0]+[0,1]"`,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	addSetFlag(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	g, err := buildGrid()
	if err != nil {
		return err
	}

	doc, err := snapshot.Dump(g)
	if err != nil {
		return fmt.Errorf("failed to build dump document: %w", err)
	}

	fmt.Println(doc)
	return nil
}
