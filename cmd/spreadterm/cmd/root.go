package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hhollis/spreadterm/internal/config"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose    bool
	configPath string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "spreadterm",
	Short: "Terminal spreadsheet formula engine",
	Long: `spreadterm is a terminal spreadsheet whose core is a formula
evaluation pipeline: a lexer, a recursive-descent parser, an expression
tree, and a cell-grid evaluator that recomputes the full grid after
every edit.

The subcommands here exercise each stage of that pipeline directly
(lex, parse, eval) or drive a full grid (repl, dump, query), useful
both for scripting and for debugging the engine itself.`,
	Version:           Version,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a display-preference YAML file (default: .spreadterm.yaml if present)")
}

// loadConfig resolves the effective configuration before any subcommand
// runs: an explicit --config always wins; otherwise a .spreadterm.yaml
// in the working directory is used if present, else the built-in
// defaults (spec.md's original 10x10 grid).
func loadConfig(*cobra.Command, []string) error {
	path := configPath
	if path == "" {
		if _, err := os.Stat(".spreadterm.yaml"); err == nil {
			path = ".spreadterm.yaml"
		}
	}

	loaded, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	cfg = loaded

	if verbose && path != "" {
		fmt.Fprintf(os.Stderr, "Loaded config: %s\n", path)
	}
	return nil
}
