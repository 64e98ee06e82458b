// Package tui provides the Bubble Tea integration for the Tower of Hanoi.
// It handles the terminal UI loop, input mapping, menus, and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Each game model owns a
// tick loop identified by gen and ignores ticks from any other loop.
type TickMsg struct {
	Time time.Time
	gen  uint64
}

var tickGenerations atomic.Uint64

// nextTickGen returns a fresh tick loop identifier.
func nextTickGen() uint64 {
	return tickGenerations.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, gen: gen}
	})
}
