package tui

import (
	"time"

	"github.com/vovakirdan/astro-bounce/internal/core"
)

// DefaultHoldWindow covers the usual terminal auto-repeat delay.
const DefaultHoldWindow = 550 * time.Millisecond

// HeldKeys turns key presses into a held/released snapshot.
// Terminals report no key releases, so a movement key counts as held for
// a window after each press or auto-repeat. Pressing one direction
// releases the other, since only the last key auto-repeats.
type HeldKeys struct {
	window time.Duration
	until  map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{window: window, until: make(map[core.Action]time.Time)}
}

// Press records a press or repeat of a movement action.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	default:
		return
	}
	h.until[a] = now.Add(h.window)
}

// Held reports whether the action is still held at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// Apply sets every held action on the frame and forgets expired ones.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a := range h.until {
		if h.Held(a, now) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Reset releases all keys.
func (h *HeldKeys) Reset() {
	clear(h.until)
}
