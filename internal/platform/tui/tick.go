// Package tui provides the Bubble Tea integration for dashrun. It owns
// the frame loop, input-to-intent mapping, score persistence, and the
// SSH serving mode.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation frame. It carries the time the tick
// fired so the model can compute real elapsed time between frames.
type TickMsg time.Time

// tickCmd returns a command that sends the next tick at the given rate.
// The model schedules a tick only while the game is running; idle and
// game-over screens are static until an input event arrives.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
