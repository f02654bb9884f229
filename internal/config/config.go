// Package config loads the optional display-preference file the CLI shell
// reads on startup (`.spreadterm.yaml` or --config). None of it feeds back
// into the core: grid dimensions, column width, and the boolean-echo knob
// are shell concerns, not value_map semantics (spec.md §3's Boolean
// display form is always true/false regardless of this file).
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the shell's display-preference file.
type Config struct {
	// Rows and Cols size a freshly constructed grid; there are no
	// command-line flags for them. main.rs's original default is 10x10.
	Rows int32 `yaml:"rows"`
	Cols int32 `yaml:"cols"`

	// ColumnWidth is a per-cell character width read from the file. No
	// command reads it: the REPL prints one cell per line and has no grid
	// pane to size.
	ColumnWidth int `yaml:"column_width"`

	// UppercaseBooleanEcho controls whether the editor line echoes a
	// boolean literal's keyword in upper case (TRUE/FALSE) for
	// legibility. It never changes the stored text or the evaluated
	// Primitive, which is always lower-case true/false per spec.md §3.
	UppercaseBooleanEcho bool `yaml:"uppercase_boolean_echo"`
}

// Default returns the preferences used when no config file is present.
func Default() Config {
	return Config{
		Rows:        10,
		Cols:        10,
		ColumnWidth: 12,
	}
}

// Load reads and decodes path, falling back to Default() field-by-field
// for anything the file doesn't specify. A missing file is not an error:
// it simply yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
