// Package tui provides the Bubble Tea front-end for Astro Bounce.
// It handles the terminal UI loop, input mapping and level reloading.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// FPSMeter counts frames and publishes a rate once per second.
type FPSMeter struct {
	start  time.Time
	frames int
	fps    int
}

// Frame records one frame at now.
func (f *FPSMeter) Frame(now time.Time) {
	if f.start.IsZero() {
		f.start = now
	}
	f.frames++
	if elapsed := now.Sub(f.start); elapsed >= time.Second {
		f.fps = int(float64(f.frames)/elapsed.Seconds() + 0.5)
		f.frames = 0
		f.start = now
	}
}

// FPS returns the rate measured over the last full second.
func (f *FPSMeter) FPS() int {
	return f.fps
}
