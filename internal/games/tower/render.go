package tower

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := newLayout(g.level, g.screenW)
	g.renderHUD(dst)
	g.renderPoles(dst, l)
	g.renderDisks(dst, l)
	g.renderFooter(dst, l)
	g.renderOverlays(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	l := newLayout(g.level, g.screenW)
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Level %d needs %dx%d", g.level, l.width, l.height))
	dst.DrawTextCentered(y+1, "Resize the terminal or press ↓ for fewer disks")
}

// renderHUD draws the title and status line.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title())

	total := hanoi.MoveCount(g.level)
	var info string
	if g.mode == ModePlay {
		info = fmt.Sprintf("Level %d | Moves %d (optimal %d) | Time %s | %s",
			g.level, g.moves, total, formatElapsed(g.Elapsed()), g.statusLabel())
	} else {
		info = fmt.Sprintf("Level %d | Move %d/%d | Speed %.1fx | %s",
			g.level, g.next, total, g.speed.Rate(), g.statusLabel())
	}
	dst.DrawTextCentered(1, info)
}

func (g *Game) statusLabel() string {
	switch g.status {
	case StatusRunning:
		if g.mode == ModePlay {
			return "Playing"
		}
		return "Solving"
	case StatusPaused:
		return "Paused"
	case StatusSolved:
		return "Solved"
	default:
		if g.mode == ModePlay {
			return "Ready"
		}
		return "Stopped"
	}
}

// renderPoles draws the three poles and their bases.
func (g *Game) renderPoles(dst *core.Screen, l layout) {
	for p := range hanoi.PileCount {
		cx := l.center(p)
		dst.DrawVLine(cx, l.poleTop(), l.baseRow-l.poleTop(), g.theme.Pole, g.theme.PoleColor)
		dst.DrawHLine(cx-g.level, l.baseRow, 2*g.level+1, g.theme.Base, g.theme.BaseColor)
	}
}

// renderDisks draws the resting disks, then the disk in flight or in hand.
func (g *Game) renderDisks(dst *core.Screen, l layout) {
	for p := range hanoi.PileCount {
		pile := g.puzzle.Pile(p)
		for slot, d := range pile {
			if slot == len(pile)-1 && g.liftedFrom(p) {
				continue
			}
			g.drawDisk(dst, l.center(p), l.slotRow(slot), d)
		}
	}

	switch {
	case g.flight != nil:
		x, y := g.flight.Position(l)
		g.drawDisk(dst, x, y, g.flight.Disk)
	case g.holding:
		if d, ok := g.puzzle.Top(g.heldFrom); ok {
			g.drawDisk(dst, l.center(g.cursor), l.liftRow, d)
		}
	}
}

// liftedFrom reports whether the top disk of pile p is drawn elsewhere.
// A flying disk is already on its destination pile in the puzzle.
func (g *Game) liftedFrom(p int) bool {
	if g.flight != nil {
		return p == g.flight.Move.To
	}
	return g.holding && p == g.heldFrom
}

// drawDisk draws a disk centered at (cx, y).
func (g *Game) drawDisk(dst *core.Screen, cx, y int, d hanoi.Disk) {
	size := int(d)
	dst.DrawHLine(cx-size, y, 2*size+1, g.theme.Disk, g.theme.DiskColor(size))
}

// renderFooter draws pile labels, controls and the current message.
func (g *Game) renderFooter(dst *core.Screen, l layout) {
	for p := range hanoi.PileCount {
		label := strconv.Itoa(p + 1)
		if p == g.target {
			label += "*"
		}
		col := core.ColorDefault
		if g.mode == ModePlay && p == g.cursor {
			label = "[" + label + "]"
			col = core.ColorBrightYellow
		}
		dst.DrawTextColored(l.center(p)-utf8.RuneCountInString(label)/2, l.labelRow(), label, col)
	}

	dst.DrawTextCentered(l.controlsRow(), g.Controls())
	if g.message != "" {
		dst.DrawTextCentered(l.messageRow(), g.message)
	}
}

// renderOverlays draws the end-of-game box in Play mode.
func (g *Game) renderOverlays(dst *core.Screen, l layout) {
	if g.mode != ModePlay || g.lastSolve == nil {
		return
	}
	s := g.lastSolve
	centerX := l.originX + l.width/2
	centerY := (l.liftRow + l.baseRow) / 2
	g.drawOverlay(dst, centerX, centerY,
		"SOLVED!",
		fmt.Sprintf("%d moves (optimal %d) in %s", s.Moves, s.Optimal, formatElapsed(s.Duration)),
		"Press R to play again",
	)
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(centerX-utf8.RuneCountInString(line)/2, box.Y+1+i, line)
	}
}

// formatElapsed renders a duration as mm:ss.
func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
