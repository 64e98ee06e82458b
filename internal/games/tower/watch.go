package tower

import (
	"fmt"

	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
)

// stepWatch runs one tick of the automatic solve.
func (g *Game) stepWatch(in core.InputFrame) {
	if in.Has(core.ActionFaster) {
		g.speed.Faster()
	}
	if in.Has(core.ActionSlower) {
		g.speed.Slower()
	}

	switch {
	case in.Has(core.ActionConfirm):
		g.confirmWatch()
	case in.Has(core.ActionPause):
		g.togglePause()
	case in.Has(core.ActionStep):
		g.stepOnce()
	}

	if g.status != StatusRunning {
		return
	}

	if g.flight != nil {
		g.flight.Advance(legDelta(g.cfg.Animation.LegDurationMs, g.tickRate, g.speed.Rate()))
		if !g.flight.Done() {
			return
		}
		g.flight = nil
		if g.finishIfSolved() {
			return
		}
	}
	g.launchNext()
}

// confirmWatch is the Solve / Play-Pause button.
func (g *Game) confirmWatch() {
	switch g.status {
	case StatusStopped:
		if g.prepareSolution() {
			g.status = StatusRunning
		}
	case StatusRunning, StatusPaused:
		g.togglePause()
	case StatusSolved:
		g.resetPuzzle()
	}
}

func (g *Game) togglePause() {
	switch g.status {
	case StatusRunning:
		g.status = StatusPaused
	case StatusPaused:
		g.status = StatusRunning
	}
}

// prepareSolution computes the move list for the current level once per
// attempt. It reports false if the solver rejected the setup.
func (g *Game) prepareSolution() bool {
	if g.solution != nil {
		return true
	}
	moves, err := hanoi.Solution(g.level, sourcePile, g.target, hanoi.SparePile(sourcePile, g.target))
	if err != nil {
		g.showMessage(err.Error())
		return false
	}
	g.solution = moves
	g.next = 0
	return true
}

// stepOnce applies exactly one move without animation. From stopped it
// leaves the solve paused so the next Confirm resumes playback.
func (g *Game) stepOnce() {
	switch g.status {
	case StatusStopped:
		if !g.prepareSolution() {
			return
		}
		g.status = StatusPaused
	case StatusPaused:
	default:
		return
	}

	if g.flight != nil {
		g.flight.Land()
		g.flight = nil
		g.finishIfSolved()
		return
	}
	if g.next >= len(g.solution) {
		g.finishIfSolved()
		return
	}
	if g.applyNext() {
		g.finishIfSolved()
	}
}

// launchNext applies the next move and starts its flight.
func (g *Game) launchNext() {
	if g.next >= len(g.solution) {
		g.finishIfSolved()
		return
	}
	m := g.solution[g.next]
	disk, _ := g.puzzle.Top(m.From)
	fromSlot := g.puzzle.Height(m.From) - 1
	if !g.applyNext() {
		return
	}
	g.flight = newFlight(disk, m, fromSlot, g.puzzle.Height(m.To)-1)
}

// applyNext applies the next move to the puzzle. A rejected move stops the
// solve and shows the error.
func (g *Game) applyNext() bool {
	m := g.solution[g.next]
	if err := g.puzzle.Apply(m); err != nil {
		g.status = StatusStopped
		g.solution = nil
		g.showMessage(err.Error())
		return false
	}
	g.next++
	return true
}

// finishIfSolved marks the puzzle solved once the target pile is full.
func (g *Game) finishIfSolved() bool {
	if !g.puzzle.IsSolved(g.target) {
		return false
	}
	g.status = StatusSolved
	g.flight = nil
	g.showMessage(fmt.Sprintf("Solved in %d moves", g.next))
	return true
}

// Progress returns moves issued so far and the total for the level.
func (g *Game) Progress() (done int, total uint64) {
	if g.mode == ModePlay {
		return g.moves, hanoi.MoveCount(g.level)
	}
	return g.next, hanoi.MoveCount(g.level)
}
