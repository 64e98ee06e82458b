package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
)

var (
	flagFrom  int
	flagTo    int
	flagVia   int
	flagLimit int
	flagShow  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <disks>",
	Short: "Print the optimal move sequence",
	Long: `Print the moves that solve a puzzle with the given number of disks.
Piles are numbered 0, 1 and 2. The spare pile defaults to the one
not used as source or destination.

Examples:
  hanoi solve 3
  hanoi solve 4 --to 1
  hanoi solve 20 --limit 10
  hanoi solve 3 --show`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagFrom, "from", 0, "Source pile")
	solveCmd.Flags().IntVar(&flagTo, "to", 2, "Destination pile")
	solveCmd.Flags().IntVar(&flagVia, "via", -1, "Spare pile (-1 = the remaining one)")
	solveCmd.Flags().IntVar(&flagLimit, "limit", 0, "Print at most this many moves (0 = all)")
	solveCmd.Flags().BoolVar(&flagShow, "show", false, "Print the piles after every move")
}

func runSolve(_ *cobra.Command, args []string) {
	n, err := parseDisks(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	via := flagVia
	if via < 0 {
		via = hanoi.SparePile(flagFrom, flagTo)
	}

	moves, err := hanoi.Solve(n, flagFrom, flagTo, via)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Showing the piles needs a puzzle that starts on the source pile.
	var puzzle *hanoi.Puzzle
	if flagShow {
		if flagFrom != 0 {
			fmt.Fprintln(os.Stderr, "Error: --show requires --from 0")
			os.Exit(1)
		}
		puzzle, err = hanoi.New(n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	total := hanoi.MoveCount(n)
	fmt.Printf("Solving %d disks from pile %d to pile %d via %d: %d moves\n", n, flagFrom, flagTo, via, total)
	if puzzle != nil {
		fmt.Printf("  start  %s\n", puzzle)
	}

	width := len(strconv.FormatUint(total, 10))
	printed := 0
	for m := range moves {
		if flagLimit > 0 && printed >= flagLimit {
			break
		}
		printed++

		if puzzle == nil {
			fmt.Printf("  %*d. %s\n", width, printed, m)
			continue
		}
		if err := puzzle.Apply(m); err != nil {
			fmt.Fprintf(os.Stderr, "Error: move %d: %v\n", printed, err)
			os.Exit(1)
		}
		fmt.Printf("  %*d. %s  %s\n", width, printed, m, puzzle)
	}

	if rest := total - uint64(printed); rest > 0 {
		fmt.Printf("  ... %d more\n", rest)
	}
}

// parseDisks reads the disk count argument. Counts above hanoi.MaxCountedLevel
// are rejected because their move total does not fit the printed counters.
func parseDisks(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid disk count %q", arg)
	}
	if n > hanoi.MaxCountedLevel {
		return 0, fmt.Errorf("%d disks is more than the %d supported", n, hanoi.MaxCountedLevel)
	}
	return n, nil
}
