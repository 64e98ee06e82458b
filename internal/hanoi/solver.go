package hanoi

import (
	"fmt"
	"iter"
	"slices"
)

// Solve returns the canonical sequence of moves that carries n disks from
// source to destination using auxiliary as the spare pile. The sequence is
// lazy and deterministic; every range over it starts from the first move.
// Consumers may stop early.
//
// The piles must be a permutation of 0, 1 and 2.
func Solve(n, source, destination, auxiliary int) (iter.Seq[Move], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d disks", ErrInvalidLevel, n)
	}
	if !distinctPiles(source, destination, auxiliary) {
		return nil, fmt.Errorf("%w: piles %d, %d, %d are not distinct",
			ErrIllegalMove, source, destination, auxiliary)
	}

	return func(yield func(Move) bool) {
		solve(n, source, destination, auxiliary, yield)
	}, nil
}

// solve yields the moves for n disks and reports whether the consumer wants more.
func solve(n, from, to, via int, yield func(Move) bool) bool {
	if n == 1 {
		return yield(Move{From: from, To: to})
	}
	return solve(n-1, from, via, to, yield) &&
		yield(Move{From: from, To: to}) &&
		solve(n-1, via, to, from, yield)
}

// Solution collects Solve into a slice.
func Solution(n, source, destination, auxiliary int) ([]Move, error) {
	seq, err := Solve(n, source, destination, auxiliary)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// MaxCountedLevel is the largest disk count whose move count fits in a uint64.
const MaxCountedLevel = 64

// MoveCount returns the length of the optimal solution for n disks, 2^n - 1.
// Returns 0 for n < 1. Above MaxCountedLevel the result saturates at the
// largest uint64 and is no longer exact.
func MoveCount(n int) uint64 {
	if n < 1 {
		return 0
	}
	if n >= MaxCountedLevel {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}

// SparePile returns the pile that is neither a nor b.
func SparePile(a, b int) int {
	return PileCount*(PileCount-1)/2 - a - b
}

func distinctPiles(a, b, c int) bool {
	if !validPile(a) || !validPile(b) || !validPile(c) {
		return false
	}
	return a != b && b != c && a != c
}
