package tower

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
)

// stepPlay runs one tick of manual play.
func (g *Game) stepPlay(in core.InputFrame) {
	if in.Has(core.ActionPause) && g.status != StatusSolved {
		g.togglePlayPause()
		return
	}
	if g.status == StatusPaused || g.status == StatusSolved {
		return
	}

	switch {
	case in.Has(core.ActionLeft):
		g.cursor = (g.cursor + hanoi.PileCount - 1) % hanoi.PileCount
	case in.Has(core.ActionRight):
		g.cursor = (g.cursor + 1) % hanoi.PileCount
	}

	// A pile key selects the pile and acts on it, so "1" then "3" moves a disk.
	for _, a := range []core.Action{core.ActionPile1, core.ActionPile2, core.ActionPile3} {
		if in.Has(a) {
			g.cursor, _ = a.PileIndex()
			g.confirmPlay()
			return
		}
	}

	if in.Has(core.ActionConfirm) {
		g.confirmPlay()
	}
}

func (g *Game) togglePlayPause() {
	switch g.status {
	case StatusPaused:
		// Shift the start so paused time is not counted.
		if g.startTick > 0 {
			g.startTick += g.tick - g.pausedAt
		}
		g.status = g.resumeStatus()
	default:
		g.pausedAt = g.tick
		g.status = StatusPaused
	}
}

// resumeStatus is the status play returns to after a pause.
func (g *Game) resumeStatus() Status {
	if g.startTick > 0 {
		return StatusRunning
	}
	return StatusStopped
}

// confirmPlay picks up or drops a disk at the cursor.
func (g *Game) confirmPlay() {
	if !g.holding {
		if g.puzzle.Height(g.cursor) == 0 {
			g.showMessage(fmt.Sprintf("Pile %d is empty", g.cursor+1))
			return
		}
		g.holding = true
		g.heldFrom = g.cursor
		if g.startTick == 0 {
			g.startTick = g.tick
			g.status = StatusRunning
		}
		return
	}

	if g.cursor == g.heldFrom {
		g.holding = false
		return
	}

	if err := g.puzzle.Move(g.heldFrom, g.cursor); err != nil {
		g.showMessage(describeMoveError(err))
		return
	}
	g.holding = false
	g.moves++
	g.clearMessage()

	if g.puzzle.IsSolved(g.target) {
		g.status = StatusSolved
		g.lastSolve = &core.SolveSummary{
			Level:    g.level,
			Moves:    g.moves,
			Optimal:  int(hanoi.MoveCount(g.level)),
			Duration: time.Duration(g.tick-g.startTick) * time.Second / time.Duration(g.tickRate),
		}
	}
}

// describeMoveError turns an engine error into a short status line.
func describeMoveError(err error) string {
	if errors.Is(err, hanoi.ErrIllegalMove) {
		detail := strings.TrimPrefix(err.Error(), hanoi.ErrIllegalMove.Error())
		detail = strings.TrimPrefix(detail, ": ")
		if detail == "" {
			return "Illegal move"
		}
		return "Illegal move: " + detail
	}
	return err.Error()
}

// Elapsed returns the time spent on the current attempt in Play mode.
func (g *Game) Elapsed() time.Duration {
	if g.lastSolve != nil {
		return g.lastSolve.Duration
	}
	if g.startTick == 0 || g.tickRate <= 0 {
		return 0
	}
	end := g.tick
	if g.status == StatusPaused {
		end = g.pausedAt
	}
	return time.Duration(end-g.startTick) * time.Second / time.Duration(g.tickRate)
}
