package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

func TestRenderScreen(t *testing.T) {
	scr := core.NewScreen(10, 3)
	scr.DrawText(0, 0, "hello")
	scr.DrawTextColored(0, 1, "red", core.ColorRed)
	scr.SetColored(9, 2, '█', core.ColorOrange)

	out := RenderScreen(scr)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "hello") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "red") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "█") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestScreenRendererUnknownColor(t *testing.T) {
	sr := NewScreenRenderer(nil)
	scr := core.NewScreen(3, 1)
	scr.SetColored(0, 0, 'x', core.Color(250))

	if !strings.Contains(sr.Render(scr), "x") {
		t.Error("unknown colors should render plain")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("centerText should not trim, got %q", got)
	}
}
