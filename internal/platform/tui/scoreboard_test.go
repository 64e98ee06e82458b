package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

func TestScoreboardShowsLevel(t *testing.T) {
	store := openTestStore(t)
	for _, rec := range []storage.SolveRecord{
		{GameID: "hanoi_play", Player: "alice", Level: 3, Moves: 9, Optimal: 7, DurationMs: 20000},
		{GameID: "hanoi_play", Player: "bob", Level: 3, Moves: 7, Optimal: 7, DurationMs: 15000},
		{GameID: "hanoi_play", Player: "carol", Level: 4, Moves: 15, Optimal: 15, DurationMs: 40000},
	} {
		if _, err := store.SaveSolve(rec); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, LevelRange{Min: 1, Max: 10, Default: 3}, 100, 30)
	if m.Level() != 3 || len(m.solves) != 2 {
		t.Fatalf("level %d with %d solves", m.Level(), len(m.solves))
	}
	if m.solves[0].Player != "bob" {
		t.Errorf("best solve by %s, want bob", m.solves[0].Player)
	}
	if !strings.Contains(m.View(), "3 disks") {
		t.Error("view should name the level")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Level() != 4 || len(m.solves) != 1 {
		t.Errorf("after tab: level %d with %d solves", m.Level(), len(m.solves))
	}
}

func TestScoreboardWrapsLevels(t *testing.T) {
	m := NewScoreboardModel(nil, LevelRange{Min: 1, Max: 3, Default: 1}, 60, 20)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(ScoreboardModel)
	if m.Level() != 3 {
		t.Errorf("level = %d, want wrap to 3", m.Level())
	}
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("missing store should be reported")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{1500 * time.Millisecond, "0:02"},
		{75 * time.Second, "1:15"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
