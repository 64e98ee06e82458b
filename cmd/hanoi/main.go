// hanoi is a terminal Tower of Hanoi: watch the optimal solution animate or
// solve the puzzle yourself, locally or over SSH.
//
// Usage:
//
//	hanoi list               - List available modes
//	hanoi play [mode]        - Play a mode directly (default: hanoi)
//	hanoi menu               - Start menu to pick modes interactively
//	hanoi solve <disks>      - Print the optimal move sequence
//	hanoi scores [level]     - Show best solves
//	hanoi serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--db <path>         - Set database path (default: ~/.hanoi/solves.db)
//	--config <path>     - Load puzzle settings from a YAML file
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/games/tower"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger   *log.Logger
	hanoiCfg = config.DefaultHanoiConfig()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Tower of Hanoi in your terminal",
	Long: `Tower of Hanoi is a terminal puzzle. Watch the optimal solution
animate move by move, or move the disks yourself and compete for the
fewest moves on the scoreboard.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  solve    - Print the optimal move sequence
  scores   - View best solves
  serve    - Start SSH server for remote play

Examples:
  hanoi play
  hanoi play hanoi_play --level 5
  hanoi solve 4
  hanoi serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hanoi/solves.db", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup creates the logger and loads the puzzle configuration before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "hanoi",
	})

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	cfg, err := config.LoadHanoi(flagConfig)
	if err != nil {
		return err
	}
	hanoiCfg = cfg
	tower.SetConfig(cfg)
	logger.Debug("config loaded",
		"levels", fmt.Sprintf("%d-%d", cfg.Puzzle.MinLevel, cfg.Puzzle.MaxLevel),
		"target", cfg.Puzzle.TargetPile,
		"leg_ms", cfg.Animation.LegDurationMs,
	)
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	if user := os.Getenv("USER"); user != "" {
		cfg.Player = user
	}
	return cfg
}

// levelRange returns the level bounds from the loaded configuration.
func levelRange() tui.LevelRange {
	return tui.LevelRangeFrom(hanoiCfg)
}
