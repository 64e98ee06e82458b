package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/registry"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.hanoi/host_key.
	HostKeyPath string

	// DBPath is the path to the solves database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of each session.
	TickRate int

	// Levels bounds the level picker.
	Levels LevelRange

	// Logger receives server and session events. Defaults to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.hanoi/solves.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Levels:      LevelRange{Min: 1, Max: 10, Default: 3},
	}
}

// SSHServer wraps a Wish SSH server hosting one puzzle session per connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "hanoi-ssh",
		})
	}

	// Continue without storage if the database can't be opened.
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open solves database", "path", cfg.DBPath, "err", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			srv.closeStore()
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".hanoi", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Middleware runs last to first: logging wraps the PTY check, which wraps the program.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Player:   sess.User(),
	}

	model := NewSessionModel(s.store, cfg, s.config.Levels).
		WithRenderer(NewScreenRenderer(bubbletea.MakeRenderer(sess))).
		WithLogger(s.logger)

	s.logger.Debug("session model created", "session", model.SessionID(), "user", sess.User())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until interrupted.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve runs the server until ctx is canceled, then shuts it down.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.closeStore()
		if err != nil {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("could not close solves database", "err", err)
	}
	s.store = nil
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionState is the screen a session is on.
type sessionState int

const (
	stateMenu sessionState = iota
	stateLevel
	stateGame
	stateScoreboard
)

// levelStarter is implemented by games that accept a starting level.
type levelStarter interface {
	SetStartLevel(level int)
}

// SessionModel manages the full session flow: menu -> level -> game -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	levels     LevelRange
	sessionID  string
	renderer   *ScreenRenderer
	logger     *log.Logger
	state      sessionState
	gameID     string
	menu       MenuModel
	level      LevelModel
	scoreboard ScoreboardModel
	gameModel  *Model
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, levels LevelRange) SessionModel {
	return SessionModel{
		store:     store,
		config:    cfg,
		levels:    levels,
		sessionID: uuid.NewString(),
		renderer:  defaultScreenRenderer,
		menu:      NewMenuModel(cfg),
	}
}

// WithRenderer sets the renderer used for game screens.
func (m SessionModel) WithRenderer(r *ScreenRenderer) SessionModel {
	m.renderer = r
	return m
}

// WithLogger sets the logger used for session events.
func (m SessionModel) WithLogger(l *log.Logger) SessionModel {
	m.logger = l
	return m
}

// SessionID returns the unique ID of this session.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateLevel:
		return m.updateLevel(msg)
	case stateGame:
		return m.updateGame(msg)
	case stateScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// Sub-models quit their own program when done. The session replaces those
// tea.Quit commands with a transition to the next screen.

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.WantsScoreboard():
		m.state = stateScoreboard
		m.scoreboard = NewScoreboardModel(m.store, m.levels, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()
	case m.menu.Selected() != nil:
		m.gameID = m.menu.Selected().GameID
		m.state = stateLevel
		m.level = NewLevelModel(m.menu.Selected().Title, m.levels, m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.level.Init()
	}

	return m, cmd
}

func (m SessionModel) updateLevel(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLevel, cmd := m.level.Update(msg)
	if levelModel, ok := newLevel.(LevelModel); ok {
		m.level = levelModel
	}

	switch {
	case m.level.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.level.WantsBack():
		return m.backToMenu()
	}

	level, chosen := m.level.Level()
	if !chosen {
		return m, cmd
	}

	game, err := registry.Create(m.gameID)
	if err != nil {
		// Menu only lists registered games.
		m.warn("cannot create game", "game", m.gameID, "err", err)
		return m.backToMenu()
	}
	if ls, ok := game.(levelStarter); ok {
		ls.SetStartLevel(level)
	}

	gm := NewModel(game, m.store, m.config).WithRenderer(m.renderer).WithLogger(m.logger)
	m.gameModel = &gm
	m.state = stateGame
	if m.logger != nil {
		m.logger.Info("game started", "session", m.sessionID, "player", m.config.Player, "game", m.gameID, "level", level)
	}
	return m, m.gameModel.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	switch {
	case m.gameModel.BackToMenu():
		return m.backToMenu()
	case m.gameModel.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu resets the menu. Pending ticks from a finished game are
// dropped by the menu, and by any later game since each runs its own tick loop.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.gameModel = nil
	m.gameID = ""
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

func (m SessionModel) warn(msg string, keyvals ...any) {
	if m.logger != nil {
		m.logger.Warn(msg, append([]any{"session", m.sessionID}, keyvals...)...)
	}
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateLevel:
		return m.level.View()
	case stateGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case stateScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
