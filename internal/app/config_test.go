package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Width != 100 || cfg.Height != 100 || cfg.CellSize != 10 || cfg.UpdatesPerSecond != 20 || cfg.LiveCells != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestApplyFileFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width": 50, "height": 40, "hud": true}`), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-width", "12"}); err != nil {
		t.Fatal(err)
	}

	if err := cfg.ApplyFile(path, fs); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 12 {
		t.Fatalf("explicit flag lost to the file: width = %d", cfg.Width)
	}
	if cfg.Height != 40 || !cfg.HUD {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.CellSize != 10 {
		t.Fatalf("untouched field changed: cell size = %d", cfg.CellSize)
	}
}

func TestApplyFileErrors(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.ApplyFile(filepath.Join(t.TempDir(), "missing.json"), nil); err == nil {
		t.Fatal("missing file did not error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.ApplyFile(path, nil); err == nil {
		t.Fatal("malformed file did not error")
	}
}

func TestNormalizeClampsToDefaults(t *testing.T) {
	cfg := &Config{Width: -1, Height: 0, CellSize: 0, UpdatesPerSecond: -5, LiveCells: -2}
	cfg.Normalize()
	def := NewConfig()
	if cfg.Width != def.Width || cfg.Height != def.Height || cfg.CellSize != def.CellSize || cfg.UpdatesPerSecond != def.UpdatesPerSecond {
		t.Fatalf("normalize left bad values: %+v", cfg)
	}
	if cfg.LiveCells != 0 {
		t.Fatalf("negative live count not clamped: %d", cfg.LiveCells)
	}
}


