package config

import (
	_ "embed"
)

//go:embed defaults/hanoi.yaml
var defaultHanoiYAML []byte

// DefaultHanoiConfig returns the built-in configuration. It matches the
// embedded defaults/hanoi.yaml and is used if that file cannot be parsed.
func DefaultHanoiConfig() HanoiConfig {
	return HanoiConfig{
		Puzzle: PuzzleConfig{
			DefaultLevel: 3,
			MinLevel:     1,
			MaxLevel:     10,
			TargetPile:   2,
		},
		Animation: AnimationConfig{
			LegDurationMs: 500,
			DefaultSpeed:  1.0,
			MinSpeed:      0.5,
			MaxSpeed:      5.0,
			SpeedStep:     0.5,
		},
		Display: DisplayConfig{
			DiskRune:  "█",
			PoleRune:  "│",
			BaseRune:  "▀",
			PoleColor: "gray",
			BaseColor: "white",
			Palette: []string{
				"bright_red", "orange", "bright_yellow", "bright_green",
				"bright_cyan", "bright_blue", "bright_magenta",
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHanoiYAML
}
