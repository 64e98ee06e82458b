package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/registry"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// Model is the Bubble Tea model for running one puzzle.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	solveSaved bool // Whether the current solve has been recorded
	lastSaved  string
	newRecord  bool
	tickGen    uint64
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Player == "" {
		cfg.Player = core.DefaultConfig().Player
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   defaultScreenRenderer,
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		tickGen:    nextTickGen(),
	}
}

// WithLogger sets the logger used for storage errors. Without one the model
// stays silent, since it owns the terminal.
func (m Model) WithLogger(l *log.Logger) Model {
	m.logger = l
	return m
}

// WithRenderer sets the screen renderer, used by SSH sessions.
func (m Model) WithRenderer(r *ScreenRenderer) Model {
	if r != nil {
		m.renderer = r
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the puzzle and only adjusts the screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.solveSaved:
		m.saveSolve()
		m.solveSaved = true
	case !m.gameState.GameOver:
		m.solveSaved = false
		m.newRecord = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// saveSolve records a puzzle finished by hand. Watch mode has nothing to record.
func (m *Model) saveSolve() {
	reporter, ok := m.game.(registry.SolveReporter)
	if !ok || m.store == nil {
		return
	}
	sum, ok := reporter.LastSolve()
	if !ok {
		return
	}

	id, err := m.store.SaveSolve(storage.SolveRecord{
		GameID:     m.game.ID(),
		Player:     m.config.Player,
		Level:      sum.Level,
		Moves:      sum.Moves,
		Optimal:    sum.Optimal,
		DurationMs: sum.Duration.Milliseconds(),
	})
	if err != nil {
		if m.logger != nil {
			m.logger.Error("cannot save solve", "player", m.config.Player, "level", sum.Level, "err", err)
		}
		return
	}
	m.lastSaved = id

	best, err := m.store.BestSolve(sum.Level)
	if err != nil && m.logger != nil {
		m.logger.Warn("cannot read best solve", "level", sum.Level, "err", err)
	}
	m.newRecord = best != nil && best.ID == id

	if m.logger != nil {
		m.logger.Info("solve saved", "id", id, "player", m.config.Player, "level", sum.Level,
			"moves", sum.Moves, "record", m.newRecord)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".hanoi", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil && m.logger != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.newRecord && m.screen.Height() > 0 {
		m.screen.DrawTextCentered(m.screen.Height()-1, "New best for this level!")
	}
	return m.renderer.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastSavedID returns the ID of the most recent solve record, if any.
func (m Model) LastSavedID() string {
	return m.lastSaved
}

// Run starts the Bubble Tea program for one game.
// Returns true if the user asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
