// Package tui runs the game in a terminal with Bubble Tea. It owns the
// render loop, maps keys to actions and forwards game events to audio.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per render frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a frame message at the given rate.
// The simulation has its own cadence; see core.TickScheduler.
func tickCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
