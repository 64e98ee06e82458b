package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/core"
	_ "github.com/vovakirdan/tui-hanoi/internal/games/tower"
	"github.com/vovakirdan/tui-hanoi/internal/registry"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, gameID string, level int, store *storage.Store) Model {
	t.Helper()
	game, err := registry.Create(gameID)
	if err != nil {
		t.Fatalf("create %s: %v", gameID, err)
	}
	game.(levelStarter).SetStartLevel(level)

	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Player: "alice"})
	m.Init()
	return m
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// tick returns a tick from the model's own loop.
func tick(m Model) TickMsg {
	return TickMsg{gen: m.tickGen}
}

func TestModelSavesSolveOnce(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, "hanoi_play", 1, store)

	m, _ = send(m, runeKey("1"))
	m, _ = send(m, tick(m))
	m, _ = send(m, runeKey("3"))
	m, _ = send(m, tick(m))

	if m.LastSavedID() == "" {
		t.Fatal("solve should be saved when the puzzle is finished")
	}
	for range 5 {
		m, _ = send(m, tick(m))
	}

	solves, err := store.TopSolves(1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(solves) != 1 {
		t.Fatalf("got %d solves, want 1", len(solves))
	}
	s := solves[0]
	if s.Player != "alice" || s.GameID != "hanoi_play" || s.Moves != 1 || s.Optimal != 1 {
		t.Errorf("saved %+v", s)
	}
}

func TestModelWatchDoesNotSave(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, "hanoi", 1, store)

	m, _ = send(m, runeKey("n"))
	m, _ = send(m, tick(m))

	if !m.gameState.GameOver {
		t.Fatal("stepping a 1-disk puzzle should solve it")
	}
	if m.LastSavedID() != "" {
		t.Error("watch mode solves should not be recorded")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := newTestModel(t, "hanoi", 3, nil)

	back, cmd := send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || cmd == nil {
		t.Error("esc should leave the game")
	}

	quit, cmd := send(m, runeKey("q"))
	if !quit.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsPuzzle(t *testing.T) {
	m := newTestModel(t, "hanoi", 2, nil)
	m, _ = send(m, runeKey("n"))
	m, _ = send(m, tick(m))

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}

	snap := m.game.(interface{ Level() int })
	if snap.Level() != 2 {
		t.Errorf("level = %d after resize", snap.Level())
	}
	if m.View() == "" {
		t.Error("view should not be empty")
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := newTestModel(t, "hanoi_play", 1, nil)
	m, _ = send(m, runeKey("1"))
	m, _ = send(m, tick(m))
	m, _ = send(m, runeKey("3"))
	m, _ = send(m, tick(m))

	if !m.gameState.GameOver {
		t.Fatal("puzzle should be solved")
	}
	if m.LastSavedID() != "" {
		t.Error("nothing can be saved without a store")
	}
}

func TestModelFlagsNewRecord(t *testing.T) {
	store := openTestStore(t)

	solve := func(moves ...string) Model {
		m := newTestModel(t, "hanoi_play", 1, store)
		for _, k := range moves {
			m, _ = send(m, runeKey(k))
			m, _ = send(m, tick(m))
		}
		if !m.gameState.GameOver {
			t.Fatal("puzzle should be solved")
		}
		return m
	}

	// 1 -> 2 -> 3 takes two moves.
	first := solve("1", "2", "2", "3")
	if !first.newRecord {
		t.Error("first solve of a level is a record")
	}
	first.View()
	if !strings.Contains(first.screen.Row(first.screen.Height()-1), "New best") {
		t.Errorf("record banner missing: %q", first.screen.Row(first.screen.Height()-1))
	}

	if !solve("1", "3").newRecord {
		t.Error("fewer moves should set a new record")
	}
	if solve("1", "2", "2", "3").newRecord {
		t.Error("a slower solve is not a record")
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	old := newTestModel(t, "hanoi", 1, nil)
	m := newTestModel(t, "hanoi", 1, nil)
	if old.tickGen == m.tickGen {
		t.Fatal("each model should run its own tick loop")
	}

	m, _ = send(m, runeKey("n"))
	m, cmd := send(m, tick(old))
	if cmd != nil {
		t.Error("a foreign tick must not schedule another tick")
	}
	if m.gameState.GameOver {
		t.Error("a foreign tick must not step the game")
	}

	m, cmd = send(m, tick(m))
	if cmd == nil || !m.gameState.GameOver {
		t.Error("the model's own tick should step the game and keep ticking")
	}
}
