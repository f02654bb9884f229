package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hhollis/spreadterm/internal/snapshot"
)

var queryCmd = &cobra.Command{
	Use:   "query <path>",
	Short: "Read one field out of a grid's JSON dump",
	Long: `Build a grid from one or more --set "row,col=text" assignments, run a
full recomputation, and extract a single field from the resulting dump
document by gjson path (e.g. "0,2.value" or "1,1.kind").

Example:
  spreadterm query --set "0,0=2" --set "0,1=3" --set "0,2==[0,0]+[0,1]" "0,2.value"`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	addSetFlag(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	g, err := buildGrid()
	if err != nil {
		return err
	}

	doc, err := snapshot.Dump(g)
	if err != nil {
		return fmt.Errorf("failed to build dump document: %w", err)
	}

	result, ok := snapshot.Query(doc, args[0])
	if !ok {
		return fmt.Errorf("path %q not found", args[0])
	}

	fmt.Println(result)
	return nil
}
