package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/games/tower"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
	"github.com/vovakirdan/tui-hanoi/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Pick a mode, then the number of disks. Leaving a puzzle with Esc
returns to the menu. Tab opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  hanoi menu
  hanoi menu --fps 30
  hanoi menu --db ./solves.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, levelRange(), cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		level, quit, err := tui.RunLevelSelector(game.Title(), levelRange(), store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if quit {
			return
		}
		if level == 0 {
			continue
		}
		if g, ok := game.(*tower.Game); ok {
			g.SetStartLevel(level)
		}

		backToMenu, err := tui.Run(game, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !backToMenu {
			return
		}
	}
}
