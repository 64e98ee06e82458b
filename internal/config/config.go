// Package config provides YAML-based configuration for the Tower of Hanoi
// puzzle: level bounds, animation pacing and display glyphs.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// HanoiConfig contains all configuration for the Tower of Hanoi games.
type HanoiConfig struct {
	Puzzle    PuzzleConfig    `yaml:"puzzle"`
	Animation AnimationConfig `yaml:"animation"`
	Display   DisplayConfig   `yaml:"display"`
}

// PuzzleConfig bounds the disk count and picks the destination pile.
type PuzzleConfig struct {
	DefaultLevel int `yaml:"default_level"`
	MinLevel     int `yaml:"min_level"`
	MaxLevel     int `yaml:"max_level"`
	TargetPile   int `yaml:"target_pile"`
}

// AnimationConfig defines how fast an automatic solve plays.
type AnimationConfig struct {
	LegDurationMs int     `yaml:"leg_duration_ms"` // Duration of each of lift, slide, drop at speed 1.0
	DefaultSpeed  float64 `yaml:"default_speed"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	SpeedStep     float64 `yaml:"speed_step"`
}

// DisplayConfig defines the glyphs and colors used to draw the towers.
type DisplayConfig struct {
	DiskRune  string   `yaml:"disk_rune"`
	PoleRune  string   `yaml:"pole_rune"`
	BaseRune  string   `yaml:"base_rune"`
	PoleColor string   `yaml:"pole_color"`
	BaseColor string   `yaml:"base_color"`
	Palette   []string `yaml:"palette"` // Disk colors, cycled by size
}

// MaxLevelLimit is the largest max_level accepted. An automatic solve keeps
// its 2^n - 1 moves in memory.
const MaxLevelLimit = 20

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks the configuration for values the games cannot work with.
func (c HanoiConfig) Validate() error {
	p := c.Puzzle
	switch {
	case p.MinLevel < 1:
		return fmt.Errorf("%w: min_level %d must be at least 1", ErrInvalidConfig, p.MinLevel)
	case p.MaxLevel < p.MinLevel:
		return fmt.Errorf("%w: max_level %d is below min_level %d", ErrInvalidConfig, p.MaxLevel, p.MinLevel)
	case p.MaxLevel > MaxLevelLimit:
		return fmt.Errorf("%w: max_level %d exceeds %d", ErrInvalidConfig, p.MaxLevel, MaxLevelLimit)
	case p.DefaultLevel < p.MinLevel || p.DefaultLevel > p.MaxLevel:
		return fmt.Errorf("%w: default_level %d outside [%d, %d]", ErrInvalidConfig, p.DefaultLevel, p.MinLevel, p.MaxLevel)
	case p.TargetPile < 1 || p.TargetPile > 2:
		return fmt.Errorf("%w: target_pile %d must be 1 or 2", ErrInvalidConfig, p.TargetPile)
	}

	a := c.Animation
	switch {
	case a.LegDurationMs <= 0:
		return fmt.Errorf("%w: leg_duration_ms must be positive", ErrInvalidConfig)
	case a.MinSpeed <= 0:
		return fmt.Errorf("%w: min_speed must be positive", ErrInvalidConfig)
	case a.MaxSpeed < a.MinSpeed:
		return fmt.Errorf("%w: max_speed %.2f is below min_speed %.2f", ErrInvalidConfig, a.MaxSpeed, a.MinSpeed)
	case a.DefaultSpeed < a.MinSpeed || a.DefaultSpeed > a.MaxSpeed:
		return fmt.Errorf("%w: default_speed %.2f outside [%.2f, %.2f]", ErrInvalidConfig, a.DefaultSpeed, a.MinSpeed, a.MaxSpeed)
	case a.SpeedStep <= 0:
		return fmt.Errorf("%w: speed_step must be positive", ErrInvalidConfig)
	}

	d := c.Display
	for name, r := range map[string]string{"disk_rune": d.DiskRune, "pole_rune": d.PoleRune, "base_rune": d.BaseRune} {
		if utf8.RuneCountInString(r) != 1 {
			return fmt.Errorf("%w: %s %q must be a single character", ErrInvalidConfig, name, r)
		}
	}
	for _, name := range append([]string{d.PoleColor, d.BaseColor}, d.Palette...) {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%w: unknown color %q", ErrInvalidConfig, name)
		}
	}
	if len(d.Palette) == 0 {
		return fmt.Errorf("%w: palette must list at least one color", ErrInvalidConfig)
	}
	return nil
}

// Theme holds the parsed display settings. Call only on a validated config.
type Theme struct {
	Disk, Pole, Base     rune
	PoleColor, BaseColor core.Color
	Palette              []core.Color
}

// Theme resolves the display glyphs and color names.
func (c HanoiConfig) Theme() Theme {
	d := c.Display
	t := Theme{
		Disk: firstRune(d.DiskRune, '█'),
		Pole: firstRune(d.PoleRune, '│'),
		Base: firstRune(d.BaseRune, '▀'),
	}
	t.PoleColor, _ = core.ParseColor(d.PoleColor)
	t.BaseColor, _ = core.ParseColor(d.BaseColor)
	for _, name := range d.Palette {
		if col, ok := core.ParseColor(name); ok {
			t.Palette = append(t.Palette, col)
		}
	}
	if len(t.Palette) == 0 {
		t.Palette = []core.Color{core.ColorWhite}
	}
	return t
}

// DiskColor returns the palette color for a disk of the given size.
func (t Theme) DiskColor(size int) core.Color {
	if size < 1 || len(t.Palette) == 0 {
		return core.ColorDefault
	}
	return t.Palette[(size-1)%len(t.Palette)]
}

func firstRune(s string, fallback rune) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return fallback
	}
	return r
}
