package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/games/tower"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
	"github.com/vovakirdan/tui-hanoi/internal/registry"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var (
	flagLevel int
	flagSpeed float64
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start the given mode directly. Without a mode, watch the solver.

Watch mode (hanoi):
  Space/Enter  - Solve, then play/pause
  P            - Pause
  N            - Apply one move
  +/-          - Change speed
  Up/Down      - Change the number of disks
  R            - Reset

Play mode (hanoi_play):
  Left/Right   - Select a pile
  1/2/3        - Select a pile and pick up or drop
  Space/Enter  - Pick up or drop a disk
  R            - Reset

Both:
  Esc/B        - Leave
  Ctrl+S       - Save a screenshot to ~/.hanoi/screenshots
  Q/Ctrl+C     - Quit

Examples:
  hanoi play
  hanoi play --level 6 --speed 2
  hanoi play hanoi_play --level 4`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Number of disks (0 = config default)")
	playCmd.Flags().Float64Var(&flagSpeed, "speed", 0, "Animation speed multiplier (0 = config default)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := tower.WatchID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hanoi list' to see available modes.")
		os.Exit(1)
	}
	if flagLevel != 0 && !levelRange().Contains(flagLevel) {
		fmt.Fprintf(os.Stderr, "Error: level must be between %d and %d\n", levelRange().Min, levelRange().Max)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if g, ok := game.(*tower.Game); ok {
		if flagLevel > 0 {
			g.SetStartLevel(flagLevel)
		}
		if flagSpeed > 0 {
			g.SetStartSpeed(flagSpeed)
		}
	}

	store := openStore()

	_, runErr := tui.Run(game, store, runtimeConfig())

	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openStore opens the solves database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open solves database, solves won't be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close solves database", "err", err)
	}
}
