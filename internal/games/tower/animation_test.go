package tower

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
)

func TestFlightLegs(t *testing.T) {
	f := newFlight(1, hanoi.Move{From: 0, To: 2}, 2, 0)

	f.Advance(0.5)
	if f.Leg() != LegLift {
		t.Errorf("leg = %d, want lift", f.Leg())
	}

	f.Advance(0.6)
	if f.Leg() != LegSlide {
		t.Errorf("leg = %d, want slide", f.Leg())
	}

	f.Advance(2)
	if !f.Done() {
		t.Error("flight should have landed")
	}

	f.Advance(1)
	if !f.Done() {
		t.Error("advancing a landed flight should be a no-op")
	}
}

func TestFlightPosition(t *testing.T) {
	l := newLayout(3, 80)
	f := newFlight(1, hanoi.Move{From: 0, To: 2}, 2, 0)

	tests := []struct {
		name    string
		advance float64
		wantX   int
		wantY   int
	}{
		{"on source", 0, l.center(0), l.slotRow(2)},
		{"top of lift", 1, l.center(0), l.liftRow},
		{"end of slide", 1, l.center(2), l.liftRow},
		{"landed", 1, l.center(2), l.slotRow(0)},
	}

	for _, tt := range tests {
		f.Advance(tt.advance)
		x, y := f.Position(l)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("%s: position = (%d, %d), want (%d, %d)", tt.name, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestFlightLand(t *testing.T) {
	l := newLayout(2, 80)
	f := newFlight(2, hanoi.Move{From: 1, To: 0}, 0, 1)
	f.Land()

	x, y := f.Position(l)
	if !f.Done() || x != l.center(0) || y != l.slotRow(1) {
		t.Errorf("landed at (%d, %d), want (%d, %d)", x, y, l.center(0), l.slotRow(1))
	}
}

func TestLegDelta(t *testing.T) {
	tests := []struct {
		name  string
		legMs int
		fps   int
		speed float64
		ticks float64 // Ticks per leg
	}{
		{"default pace", 500, 60, 1, 30},
		{"double speed", 500, 60, 2, 15},
		{"half speed", 500, 60, 0.5, 60},
		{"low fps", 500, 30, 1, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := legDelta(tt.legMs, tt.fps, tt.speed)
			if math.Abs(got-1/tt.ticks) > 1e-9 {
				t.Errorf("legDelta = %v, want %v", got, 1/tt.ticks)
			}
		})
	}

	if legDelta(0, 60, 1) != 1 {
		t.Error("zero duration should complete a leg per tick")
	}
}

func TestSpeedRounding(t *testing.T) {
	s := Speed{rate: 1, min: 0.5, max: 5, step: 0.5}

	s.Set(2.2)
	if s.Rate() != 2.0 {
		t.Errorf("rate = %v, want 2.0", s.Rate())
	}
	s.Set(0)
	if s.Rate() != 0.5 {
		t.Errorf("rate = %v, want min 0.5", s.Rate())
	}
	s.Set(9)
	if s.Rate() != 5 {
		t.Errorf("rate = %v, want max 5", s.Rate())
	}
}
