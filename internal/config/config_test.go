package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Rows != 10 || cfg.Cols != 10 {
		t.Errorf("Default() grid = %dx%d, want 10x10", cfg.Rows, cfg.Cols)
	}
	if cfg.ColumnWidth != 12 {
		t.Errorf("Default().ColumnWidth = %d, want 12", cfg.ColumnWidth)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want %+v", cfg, Default())
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".spreadterm.yaml")
	contents := "rows: 20\ncols: 5\nuppercase_boolean_echo: true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Rows != 20 || cfg.Cols != 5 {
		t.Errorf("Load() grid = %dx%d, want 20x5", cfg.Rows, cfg.Cols)
	}
	if cfg.ColumnWidth != 12 {
		t.Errorf("Load().ColumnWidth = %d, want default 12 to survive partial overrides", cfg.ColumnWidth)
	}
	if !cfg.UppercaseBooleanEcho {
		t.Error("Load().UppercaseBooleanEcho = false, want true")
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rows: [this is not an int\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error for malformed YAML")
	}
}
