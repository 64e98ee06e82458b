// Package tower implements the Tower of Hanoi as two registered game modes:
// Watch, which animates the optimal solution, and Play, in which the player
// moves the disks by hand.
package tower

import (
	"sync"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeWatch Mode = "watch"
	ModePlay  Mode = "play"
)

// Registered game IDs.
const (
	WatchID = "hanoi"
	PlayID  = "hanoi_play"
)

// Status is the state of the puzzle as seen by the player.
type Status string

const (
	StatusStopped Status = "stopped" // Not started, or reset
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
	StatusSolved  Status = "solved"
)

// sourcePile is where every puzzle starts.
const sourcePile = 0

// messageSeconds is how long a transient message stays on screen.
const messageSeconds = 2

// Game implements both Tower of Hanoi modes.
type Game struct {
	mode  Mode
	cfg   config.HanoiConfig
	theme config.Theme
	tick  uint64

	puzzle *hanoi.Puzzle
	level  int
	target int
	status Status

	// Start options, applied on the first Reset
	startLevel int
	startSpeed float64

	// Watch mode
	solution []hanoi.Move
	next     int // Index of the next move to issue
	flight   *Flight
	speed    Speed

	// Play mode
	cursor    int
	holding   bool
	heldFrom  int
	moves     int
	startTick uint64 // Tick of the first pick-up, 0 before it
	pausedAt  uint64
	lastSolve *core.SolveSummary

	message      string
	messageTicks int

	// Runtime settings
	tickRate int
	screenW  int
	screenH  int
	tooSmall bool
}

var (
	defaultsMu sync.RWMutex
	defaults   = config.DefaultHanoiConfig()
)

// SetConfig replaces the configuration used by games created from the registry.
func SetConfig(cfg config.HanoiConfig) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = cfg
}

// Config returns the configuration used by games created from the registry.
func Config() config.HanoiConfig {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

// New creates a Watch mode game using the registry configuration.
func New() *Game {
	return NewWithConfig(ModeWatch, Config())
}

// NewPlay creates a Play mode game using the registry configuration.
func NewPlay() *Game {
	return NewWithConfig(ModePlay, Config())
}

// NewWithConfig creates a game in the given mode with an explicit configuration.
// An invalid configuration falls back to the built-in defaults.
func NewWithConfig(mode Mode, cfg config.HanoiConfig) *Game {
	if cfg.Validate() != nil {
		cfg = config.DefaultHanoiConfig()
	}
	return &Game{
		mode:  mode,
		cfg:   cfg,
		theme: cfg.Theme(),
		speed: newSpeed(cfg.Animation),
	}
}

func init() {
	registry.Register(WatchID, func() registry.Game {
		return New()
	})
	registry.Register(PlayID, func() registry.Game {
		return NewPlay()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModePlay {
		return PlayID
	}
	return WatchID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePlay {
		return "Tower of Hanoi (Play)"
	}
	return "Tower of Hanoi"
}

// SetStartLevel picks the disk count used by the next Reset. Values outside
// the configured range are clamped.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
	g.level = 0
}

// SetStartSpeed picks the playback rate used by the next Reset.
func (g *Game) SetStartSpeed(rate float64) {
	g.startSpeed = rate
}

// Reset initializes or restarts the game. The level survives a restart.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.target = g.cfg.Puzzle.TargetPile

	if g.level == 0 {
		level := g.cfg.Puzzle.DefaultLevel
		if g.startLevel > 0 {
			level = g.startLevel
		}
		g.level = core.Clamp(level, g.cfg.Puzzle.MinLevel, g.cfg.Puzzle.MaxLevel)
	}
	if g.startSpeed > 0 {
		g.speed.Set(g.startSpeed)
		g.startSpeed = 0
	}

	g.resetPuzzle()
}

// resetPuzzle puts every disk back on the source pile at the current level.
func (g *Game) resetPuzzle() {
	p, err := hanoi.New(g.level)
	if err != nil {
		// The level is clamped to a validated range, so this is unreachable
		// unless the configuration was bypassed.
		p, _ = hanoi.New(1)
		g.level = 1
	}
	g.puzzle = p
	g.status = StatusStopped
	g.solution = nil
	g.next = 0
	g.flight = nil
	g.cursor = sourcePile
	g.holding = false
	g.moves = 0
	g.startTick = 0
	g.pausedAt = 0
	g.lastSolve = nil
	g.clearMessage()
	g.checkScreenSize()
}

// changeLevel moves the level by delta within the configured bounds and resets.
func (g *Game) changeLevel(delta int) {
	level := core.Clamp(g.level+delta, g.cfg.Puzzle.MinLevel, g.cfg.Puzzle.MaxLevel)
	if level == g.level {
		return
	}
	g.level = level
	g.resetPuzzle()
}

// Resize updates the screen dimensions without touching the puzzle.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = !newLayout(g.level, g.screenW).fits(g.screenW, g.screenH)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	// Reset and level changes work even when the window is too small,
	// since a lower level may fit.
	switch {
	case in.Has(core.ActionRestart):
		g.resetPuzzle()
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionUp):
		g.changeLevel(1)
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionDown):
		g.changeLevel(-1)
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.mode == ModePlay {
		g.stepPlay(in)
	} else {
		g.stepWatch(in)
	}
	return core.StepResult{State: g.State()}
}

// State returns the current game state. Play mode scores a finished puzzle
// by efficiency, 100 being an optimal solve.
func (g *Game) State() core.GameState {
	score := 0
	if g.lastSolve != nil {
		score = g.lastSolve.Efficiency()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.status == StatusSolved,
		Paused:   g.status == StatusPaused || g.tooSmall,
	}
}

// LastSolve reports the puzzle the player just finished in Play mode.
func (g *Game) LastSolve() (core.SolveSummary, bool) {
	if g.lastSolve == nil {
		return core.SolveSummary{}, false
	}
	return *g.lastSolve, true
}

// Level returns the current disk count.
func (g *Game) Level() int {
	return g.level
}

// Speed returns the current playback rate.
func (g *Game) Speed() float64 {
	return g.speed.Rate()
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	if g.mode == ModePlay {
		return "←/→ 1-3: Select | Space: Pick/Drop | ↑/↓: Level | R: Reset | Q: Quit"
	}
	return "Space: Solve/Pause | N: Step | +/-: Speed | ↑/↓: Level | R: Reset | Q: Quit"
}

func (g *Game) showMessage(msg string) {
	g.message = msg
	g.messageTicks = messageSeconds * g.tickRate
}

func (g *Game) clearMessage() {
	g.message = ""
	g.messageTicks = 0
}
