// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, menus and the SSH host.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. run identifies the
// model whose tick chain produced it.
type TickMsg struct {
	At  time.Time
	run int64
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, run int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, run: run}
	})
}
