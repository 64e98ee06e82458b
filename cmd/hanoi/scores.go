package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best solves",
	Long: `Without a level, summarize the solves recorded for every level.
With a level, list the best solves for it: fewest moves, then fastest.

Examples:
  hanoi scores
  hanoi scores 4
  hanoi scores 4 --limit 20
  hanoi scores 4 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of solves to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded solves for the level")
}

func runScores(_ *cobra.Command, args []string) {
	store := openStore()
	if store == nil {
		fmt.Fprintln(os.Stderr, "Error: solves database is unavailable")
		os.Exit(1)
	}
	defer closeStore(store)

	if len(args) == 0 {
		if flagScoresClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a level")
			os.Exit(1)
		}
		printLevelSummary(store)
		return
	}

	level, err := strconv.Atoi(args[0])
	if err != nil || level < 1 {
		fmt.Fprintf(os.Stderr, "Error: invalid level %q\n", args[0])
		os.Exit(1)
	}

	if flagScoresClear {
		if err := clearLevel(os.Stdout, store, level); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	solves, err := store.TopSolves(level, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Solves - %d disks (optimal %d moves)\n", level, hanoi.MoveCount(level))
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hanoi play hanoi_play --level %d' to set the first one!\n", level)
		return
	}

	fmt.Printf("  %-4s  %-16s  %-5s  %-7s  %s\n", "Rank", "Player", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-16s  %-5s  %-7s  %s\n", "----", "------", "-----", "----", "----")
	for i, s := range solves {
		fmt.Printf("  %-4d  %-16s  %-5d  %-7s  %s\n",
			i+1, s.Player, s.Moves, s.Duration().Round(100*time.Millisecond), s.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}

// printLevelSummary prints one line per level with recorded solves.
func printLevelSummary(store *storage.Store) {
	stats, err := store.LevelStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Solves by Level")
	fmt.Println()
	if len(stats) == 0 {
		fmt.Println("No solves recorded yet.")
		return
	}

	levels := make([]int, 0, len(stats))
	for level := range stats {
		levels = append(levels, level)
	}
	slices.Sort(levels)

	fmt.Printf("  %-5s  %-6s  %-10s  %-9s  %s\n", "Disks", "Solves", "Best/Opt", "Avg moves", "Last played")
	fmt.Printf("  %-5s  %-6s  %-10s  %-9s  %s\n", "-----", "------", "--------", "---------", "-----------")
	for _, level := range levels {
		st := stats[level]
		fmt.Printf("  %-5d  %-6d  %-10s  %-9.1f  %s\n",
			level, st.Solves,
			fmt.Sprintf("%d/%d", st.BestMoves, hanoi.MoveCount(level)),
			st.AvgMoves,
			st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}

// clearLevel deletes the solves recorded for one level.
func clearLevel(w io.Writer, store *storage.Store, level int) error {
	if err := store.ClearSolves(level); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared solves for %d disks.\n", level)
	return nil
}
