package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBreakoutEmbeddedDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}

	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded YAML and DefaultBreakoutConfig disagree:\n%+v\n%+v", cfg, DefaultBreakoutConfig())
	}
}

func TestLoadBreakoutCustomPathOverridesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("bricks:\n  rows: 4\n  columns: 6\nloop:\n  tick_rate: 30\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}

	if cfg.Bricks.Rows != 4 || cfg.Bricks.Columns != 6 {
		t.Errorf("grid = %dx%d, expected 4x6", cfg.Bricks.Rows, cfg.Bricks.Columns)
	}
	if cfg.Loop.TickRate != 30 {
		t.Errorf("tick rate = %d, expected 30", cfg.Loop.TickRate)
	}
	// Untouched keys keep their defaults
	if cfg.Canvas.Width != 480 || cfg.Bricks.Width != 75 {
		t.Errorf("partial file should keep defaults, got canvas %v brick %v", cfg.Canvas.Width, cfg.Bricks.Width)
	}
}

func TestLoadBreakoutUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".breakout")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "breakout.yaml"), []byte("paddle:\n  speed: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if cfg.Paddle.Speed != 9 {
		t.Errorf("paddle speed = %v, expected 9 from user config", cfg.Paddle.Speed)
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("canvas: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("paddle:\n  width: 600\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBreakout(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("paddle wider than canvas: got %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		ok     bool
	}{
		{"defaults", func(*BreakoutConfig) {}, true},
		{"zero canvas", func(c *BreakoutConfig) { c.Canvas.Width = 0 }, false},
		{"negative radius", func(c *BreakoutConfig) { c.Ball.Radius = -1 }, false},
		{"no rows", func(c *BreakoutConfig) { c.Bricks.Rows = 0 }, false},
		{"zero speed", func(c *BreakoutConfig) { c.Paddle.Speed = 0 }, false},
		{"zero tick rate", func(c *BreakoutConfig) { c.Loop.TickRate = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	base := DefaultBreakoutConfig()

	easy := base
	ApplyBreakoutPreset(&easy, ParsePreset("easy"))
	if easy.Paddle.Width <= base.Paddle.Width {
		t.Errorf("easy should widen paddle, got %v", easy.Paddle.Width)
	}

	hard := base
	ApplyBreakoutPreset(&hard, ParsePreset("hard"))
	if hard.Paddle.Width >= base.Paddle.Width {
		t.Errorf("hard should narrow paddle, got %v", hard.Paddle.Width)
	}
	if hard.Ball.DX != 3 || hard.Ball.DY != -3 {
		t.Errorf("hard ball velocity = (%v, %v), expected (3, -3)", hard.Ball.DX, hard.Ball.DY)
	}

	normal := base
	ApplyBreakoutPreset(&normal, ParsePreset("bogus"))
	if normal != base {
		t.Error("unknown preset should leave config unchanged")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultBreakoutConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("parse() failed: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Error("marshalled config should parse back to the same value")
	}
}
