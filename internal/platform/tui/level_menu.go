package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// LevelRange bounds the disk counts offered by the level picker.
type LevelRange struct {
	Min     int
	Max     int
	Default int
}

// LevelRangeFrom reads the level bounds from a puzzle configuration.
func LevelRangeFrom(cfg config.HanoiConfig) LevelRange {
	return LevelRange{
		Min:     cfg.Puzzle.MinLevel,
		Max:     cfg.Puzzle.MaxLevel,
		Default: cfg.Puzzle.DefaultLevel,
	}
}

// Contains reports whether level is within the range.
func (r LevelRange) Contains(level int) bool {
	return level >= r.Min && level <= r.Max
}

// LevelModel lets users choose the number of disks before a puzzle starts.
type LevelModel struct {
	levels    LevelRange
	cursor    int // Selected level
	title     string
	best      map[int]*storage.LevelStats
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    bool
	quitting  bool
	back      bool
}

// NewLevelModel creates a level picker. The store is optional and only used
// to show each level's best result.
func NewLevelModel(title string, levels LevelRange, store *storage.Store, width, height int) LevelModel {
	m := LevelModel{
		levels:    levels,
		cursor:    core.Clamp(levels.Default, levels.Min, levels.Max),
		title:     title,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if stats, err := store.LevelStats(); err == nil {
			m.best = stats
		}
	}
	return m
}

// Init initializes the model.
func (m LevelModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LevelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > m.levels.Min {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < m.levels.Max {
			m.cursor++
		}
	case MenuActionSelect:
		m.chosen = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	// Digits jump straight to a level.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if level := int(s[0] - '0'); m.levels.Contains(level) {
			m.cursor = level
		}
	}
	return m, nil
}

// View renders the level list.
func (m LevelModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("How many disks?", m.width))
	b.WriteString("\n\n")

	for level := m.levels.Min; level <= m.levels.Max; level++ {
		line := fmt.Sprintf("%2d disks  %5d moves", level, hanoi.MoveCount(level))
		best := ""
		if st, ok := m.best[level]; ok && st.Solves > 0 {
			best = dimStyle.Render(fmt.Sprintf("  best %d", st.BestMoves))
		}
		if level == m.cursor {
			line = activeStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line+best, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Start  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Level returns the chosen level and whether one was chosen.
func (m LevelModel) Level() (int, bool) {
	return m.cursor, m.chosen
}

// IsQuitting returns true if user wants to quit.
func (m LevelModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level picker. It returns level 0 if the user
// backed out, and quit set if the user asked to leave entirely.
func RunLevelSelector(title string, levels LevelRange, store *storage.Store, cfg core.RuntimeConfig) (level int, quit bool, err error) {
	p := tea.NewProgram(
		NewLevelModel(title, levels, store, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, ok := finalModel.(LevelModel)
	if !ok {
		return 0, true, nil
	}
	if m.IsQuitting() {
		return 0, true, nil
	}
	if level, chosen := m.Level(); chosen {
		return level, false, nil
	}
	return 0, false, nil
}
