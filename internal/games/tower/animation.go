package tower

import (
	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
)

// Leg identifies one segment of a disk's flight.
type Leg int

const (
	LegLift Leg = iota
	LegSlide
	LegDrop
	legCount
)

// Flight animates one move: the disk lifts off its pile, slides over to the
// destination and drops onto it. The move has already been applied to the
// puzzle when the flight starts.
type Flight struct {
	Disk     hanoi.Disk
	Move     hanoi.Move
	FromSlot int // Height the disk left from (0 = bottom)
	ToSlot   int // Height the disk lands at
	leg      Leg
	progress float64 // 0.0 -> 1.0 within the current leg
}

func newFlight(disk hanoi.Disk, m hanoi.Move, fromSlot, toSlot int) *Flight {
	return &Flight{
		Disk:     disk,
		Move:     m,
		FromSlot: fromSlot,
		ToSlot:   toSlot,
	}
}

// Advance moves the flight forward by delta legs. Overflow carries into the
// next leg, so a large delta can skip legs entirely.
func (f *Flight) Advance(delta float64) {
	if f.Done() || delta <= 0 {
		return
	}
	f.progress += delta
	for f.progress >= 1 && f.leg < legCount {
		f.progress--
		f.leg++
	}
	if f.leg >= legCount {
		f.progress = 0
	}
}

// Land finishes the flight immediately.
func (f *Flight) Land() {
	f.leg = legCount
	f.progress = 0
}

// Done reports whether the disk has landed.
func (f *Flight) Done() bool {
	return f.leg >= legCount
}

// Leg returns the current leg.
func (f *Flight) Leg() Leg {
	return f.leg
}

// Position returns the screen cell of the disk's center.
func (f *Flight) Position(l layout) (x, y int) {
	t := easeInOut(f.progress)
	fromX, toX := l.center(f.Move.From), l.center(f.Move.To)

	switch f.leg {
	case LegLift:
		return fromX, core.Lerp(l.slotRow(f.FromSlot), l.liftRow, t)
	case LegSlide:
		return core.Lerp(fromX, toX, t), l.liftRow
	case LegDrop:
		return toX, core.Lerp(l.liftRow, l.slotRow(f.ToSlot), t)
	default:
		return toX, l.slotRow(f.ToSlot)
	}
}

// legDelta returns how much of a leg elapses per tick.
func legDelta(legDurationMs, tickRate int, speed float64) float64 {
	if legDurationMs <= 0 || tickRate <= 0 {
		return 1
	}
	return speed * 1000 / (float64(legDurationMs) * float64(tickRate))
}

// easeInOut accelerates out of each corner and slows into the next.
func easeInOut(t float64) float64 {
	t = core.ClampF(t, 0, 1)
	return t * t * (3 - 2*t)
}
