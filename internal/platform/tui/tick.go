// Package tui provides the Bubble Tea integration for the brick-game
// platform. It handles the terminal UI loop, input mapping, and the
// menu/game/scoreboard flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. It carries the wall
// clock time, which the input layer uses to expire held keys.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
