// Package tui runs the arcade inside a Bubble Tea program, locally or per
// SSH session. The program only feeds keys and ticks into an
// engine.Scheduler and prints the frames it returns.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// minTick keeps a zero timeout from spinning the program.
const minTick = time.Millisecond

// tickMsg wakes the scheduler. gen identifies the timer that sent it; a
// key press starts a new timer and makes older ones stale.
type tickMsg struct {
	gen int
}

func tickCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(max(d, minTick), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}
