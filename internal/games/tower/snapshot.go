package tower

import "github.com/vovakirdan/tui-hanoi/internal/hanoi"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Mode       string // "watch" or "play"
	Level      int
	Piles      [hanoi.PileCount][]int // Disk sizes, bottom to top
	Status     Status
	MovesMade  int    // Moves applied to the puzzle
	TotalMoves uint64 // Optimal move count for the level
	Speed      float64
	Cursor     int
	Holding    bool
	InFlight   bool
	TooSmall   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Level:      g.level,
		Status:     g.status,
		TotalMoves: hanoi.MoveCount(g.level),
		Speed:      g.speed.Rate(),
		Cursor:     g.cursor,
		Holding:    g.holding,
		InFlight:   g.flight != nil,
		TooSmall:   g.tooSmall,
	}
	s.MovesMade, _ = g.Progress()
	for p := range hanoi.PileCount {
		pile := g.puzzle.Pile(p)
		s.Piles[p] = make([]int, len(pile))
		for i, d := range pile {
			s.Piles[p][i] = int(d)
		}
	}
	return s
}
