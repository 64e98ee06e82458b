// Package hanoi implements the Tower of Hanoi puzzle engine: three piles of
// disks with legal-move validation, and the recursive solver that produces the
// canonical move sequence. It has no UI dependencies; rendering and pacing are
// left to the caller.
package hanoi

import (
	"errors"
	"fmt"
	"strings"
)

// PileCount is the number of piles in the puzzle.
const PileCount = 3

var (
	// ErrInvalidLevel is returned when a puzzle or solution is requested
	// for fewer than one disk.
	ErrInvalidLevel = errors.New("hanoi: invalid level")

	// ErrIllegalMove is returned when a move would take from an empty pile,
	// place a larger disk on a smaller one, or address a pile that doesn't exist.
	ErrIllegalMove = errors.New("hanoi: illegal move")
)

// Disk is identified by its size rank; 1 is the smallest.
type Disk int

// Move relocates the top disk of pile From onto pile To.
type Move struct {
	From int
	To   int
}

// String formats the move as "from->to".
func (m Move) String() string {
	return fmt.Sprintf("%d->%d", m.From, m.To)
}

// Puzzle holds three piles of disks. Each pile is stored bottom to top, so the
// last element is the top disk.
type Puzzle struct {
	piles [PileCount][]Disk
	level int
}

// New creates a puzzle with n disks stacked on pile 0.
func New(n int) (*Puzzle, error) {
	p := &Puzzle{}
	if err := p.Initialize(n); err != nil {
		return nil, err
	}
	return p, nil
}

// Initialize resets the puzzle to n disks on pile 0, largest at the bottom.
// The previous state is kept if n is not a valid level.
func (p *Puzzle) Initialize(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d disks", ErrInvalidLevel, n)
	}

	p.level = n
	for i := range p.piles {
		p.piles[i] = p.piles[i][:0]
	}
	for size := n; size > 0; size-- {
		p.piles[0] = append(p.piles[0], Disk(size))
	}
	return nil
}

// Level returns the number of disks in the puzzle.
func (p *Puzzle) Level() int {
	return p.level
}

// Check reports whether moving the top disk of from onto to is legal,
// without changing the puzzle.
func (p *Puzzle) Check(from, to int) error {
	if !validPile(from) || !validPile(to) {
		return fmt.Errorf("%w: pile %d to %d out of range", ErrIllegalMove, from, to)
	}

	src := p.piles[from]
	if len(src) == 0 {
		return fmt.Errorf("%w: pile %d is empty", ErrIllegalMove, from)
	}

	dst := p.piles[to]
	if len(dst) > 0 {
		disk, under := src[len(src)-1], dst[len(dst)-1]
		if under <= disk {
			return fmt.Errorf("%w: disk %d cannot rest on disk %d", ErrIllegalMove, disk, under)
		}
	}
	return nil
}

// Move relocates the top disk of from onto to. On error the puzzle is unchanged.
func (p *Puzzle) Move(from, to int) error {
	if err := p.Check(from, to); err != nil {
		return err
	}

	src := p.piles[from]
	disk := src[len(src)-1]
	p.piles[from] = src[:len(src)-1]
	p.piles[to] = append(p.piles[to], disk)
	return nil
}

// Apply performs m.
func (p *Puzzle) Apply(m Move) error {
	return p.Move(m.From, m.To)
}

// IsSolved reports whether pile target holds all disks.
func (p *Puzzle) IsSolved(target int) bool {
	if !validPile(target) {
		return false
	}
	return len(p.piles[target]) == p.level
}

// Pile returns a copy of pile i, bottom to top. Returns nil for an invalid index.
func (p *Puzzle) Pile(i int) []Disk {
	if !validPile(i) {
		return nil
	}
	out := make([]Disk, len(p.piles[i]))
	copy(out, p.piles[i])
	return out
}

// Top returns the top disk of pile i.
func (p *Puzzle) Top(i int) (Disk, bool) {
	if !validPile(i) || len(p.piles[i]) == 0 {
		return 0, false
	}
	pile := p.piles[i]
	return pile[len(pile)-1], true
}

// Height returns the number of disks on pile i.
func (p *Puzzle) Height(i int) int {
	if !validPile(i) {
		return 0
	}
	return len(p.piles[i])
}

// Clone returns an independent copy of the puzzle.
func (p *Puzzle) Clone() *Puzzle {
	c := &Puzzle{level: p.level}
	for i := range p.piles {
		c.piles[i] = append([]Disk(nil), p.piles[i]...)
	}
	return c
}

// String renders the piles as "[3 2 1] [] []", bottom to top.
func (p *Puzzle) String() string {
	var sb strings.Builder
	for i, pile := range p.piles {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for j, d := range pile {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", d)
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

func validPile(i int) bool {
	return i >= 0 && i < PileCount
}
