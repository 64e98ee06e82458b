package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"space confirms", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"vim right", runeKey("l"), core.ActionRight, false},
		{"up raises level", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"j lowers level", runeKey("j"), core.ActionDown, false},
		{"pause", runeKey("p"), core.ActionPause, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"plus", runeKey("+"), core.ActionFaster, false},
		{"equals", runeKey("="), core.ActionFaster, false},
		{"minus", runeKey("-"), core.ActionSlower, false},
		{"step", runeKey("n"), core.ActionStep, false},
		{"pile 1", runeKey("1"), core.ActionPile1, false},
		{"pile 3", runeKey("3"), core.ActionPile3, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("n"), &frame) {
		t.Error("n should not quit")
	}
	if !frame.Has(core.ActionStep) {
		t.Error("frame should contain Step")
	}

	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit is not a game action")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestScreenshotBinding(t *testing.T) {
	km := NewKeyMapper()
	if !km.IsScreenshot(tea.KeyMsg{Type: tea.KeyCtrlS}) {
		t.Error("ctrl+s should take a screenshot")
	}
	if km.IsScreenshot(runeKey("s")) {
		t.Error("s alone is not a screenshot")
	}
}

func TestHelpListsBindings(t *testing.T) {
	k := DefaultGameKeyMap()
	if len(k.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
	total := 0
	for _, group := range k.FullHelp() {
		total += len(group)
	}
	if total < len(k.ShortHelp()) {
		t.Errorf("full help has %d bindings", total)
	}
}
