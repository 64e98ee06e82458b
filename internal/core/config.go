package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Player   string // Name recorded with finished puzzles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Player:   "local",
	}
}

// TickDuration returns the wall-clock length of one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the puzzle is finished
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// SolveSummary describes a puzzle the player finished by hand.
type SolveSummary struct {
	Level    int           // Number of disks
	Moves    int           // Moves the player made
	Optimal  int           // Minimum number of moves for the level
	Duration time.Duration // Time from first tick to solved
}

// Efficiency returns optimal/moves as a percentage, 100 being a perfect solve.
func (s SolveSummary) Efficiency() int {
	if s.Moves <= 0 {
		return 0
	}
	return s.Optimal * 100 / s.Moves
}
