package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded YAML is invalid: %v", err)
	}

	def := DefaultHanoiConfig()
	if cfg.Puzzle != def.Puzzle {
		t.Errorf("puzzle section differs: %+v vs %+v", cfg.Puzzle, def.Puzzle)
	}
	if cfg.Animation != def.Animation {
		t.Errorf("animation section differs: %+v vs %+v", cfg.Animation, def.Animation)
	}
	if len(cfg.Display.Palette) != len(def.Display.Palette) {
		t.Errorf("palette length %d, expected %d", len(cfg.Display.Palette), len(def.Display.Palette))
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("puzzle:\n  default_level: 5\nanimation:\n  default_speed: 2.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHanoi(path)
	if err != nil {
		t.Fatalf("LoadHanoi() failed: %v", err)
	}
	if cfg.Puzzle.DefaultLevel != 5 {
		t.Errorf("DefaultLevel = %d, expected 5", cfg.Puzzle.DefaultLevel)
	}
	if cfg.Animation.DefaultSpeed != 2.5 {
		t.Errorf("DefaultSpeed = %v, expected 2.5", cfg.Animation.DefaultSpeed)
	}
	// Untouched fields keep defaults
	if cfg.Puzzle.MaxLevel != 10 || cfg.Animation.LegDurationMs != 500 {
		t.Errorf("defaults not preserved: %+v %+v", cfg.Puzzle, cfg.Animation)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadHanoi(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("puzzle: [nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHanoi(path); err == nil {
		t.Error("malformed custom config should be an error")
	}

	path = filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(path, []byte("puzzle:\n  min_level: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHanoi(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	path = filepath.Join(t.TempDir(), "huge.yaml")
	if err := os.WriteFile(path, []byte("puzzle:\n  max_level: 40\n  default_level: 24\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHanoi(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("max_level 40: expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HanoiConfig)
	}{
		{"min level zero", func(c *HanoiConfig) { c.Puzzle.MinLevel = 0 }},
		{"max below min", func(c *HanoiConfig) { c.Puzzle.MaxLevel = 0 }},
		{"max above limit", func(c *HanoiConfig) { c.Puzzle.MaxLevel = MaxLevelLimit + 1 }},
		{"default above max", func(c *HanoiConfig) { c.Puzzle.DefaultLevel = 11 }},
		{"target is source", func(c *HanoiConfig) { c.Puzzle.TargetPile = 0 }},
		{"zero leg", func(c *HanoiConfig) { c.Animation.LegDurationMs = 0 }},
		{"zero min speed", func(c *HanoiConfig) { c.Animation.MinSpeed = 0 }},
		{"default speed too high", func(c *HanoiConfig) { c.Animation.DefaultSpeed = 9 }},
		{"zero step", func(c *HanoiConfig) { c.Animation.SpeedStep = 0 }},
		{"long rune", func(c *HanoiConfig) { c.Display.DiskRune = "##" }},
		{"unknown color", func(c *HanoiConfig) { c.Display.Palette = []string{"plaid"} }},
		{"empty palette", func(c *HanoiConfig) { c.Display.Palette = nil }},
	}

	if err := DefaultHanoiConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHanoiConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestTheme(t *testing.T) {
	theme := DefaultHanoiConfig().Theme()

	if theme.Disk != '█' || theme.Pole != '│' || theme.Base != '▀' {
		t.Errorf("unexpected runes: %q %q %q", theme.Disk, theme.Pole, theme.Base)
	}
	if theme.PoleColor != core.ColorGray {
		t.Errorf("PoleColor = %v, expected gray", theme.PoleColor)
	}
	if theme.DiskColor(1) != core.ColorBrightRed {
		t.Errorf("DiskColor(1) = %v, expected bright red", theme.DiskColor(1))
	}
	// Palette wraps around after seven sizes
	if theme.DiskColor(8) != theme.DiskColor(1) {
		t.Error("DiskColor should cycle through the palette")
	}
	if theme.DiskColor(0) != core.ColorDefault {
		t.Error("DiskColor(0) should be the default color")
	}
}
