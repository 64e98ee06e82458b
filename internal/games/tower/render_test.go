package tower

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

func TestRenderHUD(t *testing.T) {
	g := newTestGame(ModeWatch, 3)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if !strings.Contains(scr.Row(0), "Tower of Hanoi") {
		t.Errorf("title row = %q", scr.Row(0))
	}
	for _, want := range []string{"Level 3", "Move 0/7", "Speed 1.0x", "Stopped"} {
		if !strings.Contains(scr.Row(1), want) {
			t.Errorf("status row %q missing %q", scr.Row(1), want)
		}
	}

	l := newLayout(3, 80)
	if !strings.Contains(scr.Row(l.controlsRow()), "Space") {
		t.Errorf("controls row = %q", scr.Row(l.controlsRow()))
	}
	if !strings.Contains(scr.Row(l.labelRow()), "3*") {
		t.Errorf("target pile should be marked: %q", scr.Row(l.labelRow()))
	}
}

func TestRenderDisks(t *testing.T) {
	g := newTestGame(ModeWatch, 3)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	l := newLayout(3, 80)
	for slot, size := range []int{3, 2, 1} {
		row := scr.Row(l.slotRow(slot))
		want := strings.Repeat("█", 2*size+1)
		if !strings.Contains(row, want) {
			t.Errorf("slot %d row %q missing disk of width %d", slot, row, 2*size+1)
		}
		cell := scr.GetCell(l.center(0), l.slotRow(slot))
		if cell.Color != g.theme.DiskColor(size) {
			t.Errorf("disk %d color = %v, want %v", size, cell.Color, g.theme.DiskColor(size))
		}
	}

	// Empty piles show their poles.
	if got := scr.Get(l.center(1), l.slotRow(0)); got != '│' {
		t.Errorf("pole cell = %q, want │", got)
	}
}

func TestRenderHeldDisk(t *testing.T) {
	g := newTestGame(ModePlay, 2)
	press(g, core.ActionConfirm)
	press(g, core.ActionRight)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	l := newLayout(2, 80)

	if got := scr.Get(l.center(1)-1, l.liftRow); got != '█' {
		t.Errorf("held disk should hover over the cursor pile, got %q", got)
	}
	if got := scr.Get(l.center(0)-1, l.slotRow(1)); got != ' ' {
		t.Errorf("held disk should leave its pile, got %q", got)
	}
	if !strings.Contains(scr.Row(l.labelRow()), "[2]") {
		t.Errorf("cursor label missing: %q", scr.Row(l.labelRow()))
	}
}

func TestRenderSolvedOverlay(t *testing.T) {
	g := newTestGame(ModePlay, 1)
	press(g, core.ActionPile1)
	press(g, core.ActionPile3)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "SOLVED!") {
		t.Errorf("expected solved overlay:\n%s", scr.String())
	}
	if !strings.Contains(scr.String(), "1 moves (optimal 1)") {
		t.Errorf("overlay should label the optimal count:\n%s", scr.String())
	}
	if !strings.Contains(scr.Row(1), "(optimal 1)") || strings.Contains(scr.Row(1), "best") {
		t.Errorf("status row = %q", scr.Row(1))
	}
}

func TestFormatElapsed(t *testing.T) {
	if got := formatElapsed(0); got != "00:00" {
		t.Errorf("formatElapsed(0) = %q", got)
	}
	if got := formatElapsed(125e9); got != "02:05" {
		t.Errorf("formatElapsed(125s) = %q", got)
	}
}
