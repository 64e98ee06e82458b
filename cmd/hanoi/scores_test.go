package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

func TestClearLevel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	for _, level := range []int{3, 3, 4} {
		if _, err := store.SaveSolve(storage.SolveRecord{
			GameID: "hanoi_play", Player: "carol", Level: level, Moves: 1<<level - 1, Optimal: 1<<level - 1,
		}); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	if err := clearLevel(&out, store, 3); err != nil {
		t.Fatalf("clearLevel: %v", err)
	}
	if !strings.Contains(out.String(), "3 disks") {
		t.Errorf("output = %q", out.String())
	}

	if best, err := store.BestSolve(3); err != nil || best != nil {
		t.Errorf("level 3 best = %+v, %v; want none", best, err)
	}
	if best, err := store.BestSolve(4); err != nil || best == nil {
		t.Errorf("level 4 should keep its solve: %+v, %v", best, err)
	}
}
