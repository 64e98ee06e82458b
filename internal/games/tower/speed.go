package tower

import (
	"math"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// Speed is the playback rate of an automatic solve, 1.0 being the configured pace.
type Speed struct {
	rate float64
	min  float64
	max  float64
	step float64
}

func newSpeed(cfg config.AnimationConfig) Speed {
	return Speed{
		rate: cfg.DefaultSpeed,
		min:  cfg.MinSpeed,
		max:  cfg.MaxSpeed,
		step: cfg.SpeedStep,
	}
}

// Rate returns the current multiplier.
func (s Speed) Rate() float64 {
	return s.rate
}

// Set changes the rate, clamped to the configured range and rounded to a step.
func (s *Speed) Set(rate float64) {
	if s.step > 0 {
		rate = math.Round(rate/s.step) * s.step
	}
	s.rate = core.ClampF(rate, s.min, s.max)
}

// Faster raises the rate by one step.
func (s *Speed) Faster() {
	s.Set(s.rate + s.step)
}

// Slower lowers the rate by one step.
func (s *Speed) Slower() {
	s.Set(s.rate - s.step)
}
