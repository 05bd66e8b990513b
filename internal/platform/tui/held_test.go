package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/astro-bounce/internal/core"
)

func TestHeldKeysExpire(t *testing.T) {
	base := time.Unix(1000, 0)
	h := NewHeldKeys(100 * time.Millisecond)

	h.Press(core.ActionLeft, base)
	if !h.Held(core.ActionLeft, base.Add(50*time.Millisecond)) {
		t.Error("left should be held inside the window")
	}
	if h.Held(core.ActionLeft, base.Add(100*time.Millisecond)) {
		t.Error("left should be released at the end of the window")
	}

	// Auto-repeat extends the hold
	h.Press(core.ActionLeft, base.Add(80*time.Millisecond))
	if !h.Held(core.ActionLeft, base.Add(150*time.Millisecond)) {
		t.Error("repeat should extend the window")
	}
}

func TestHeldKeysOppositeRelease(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHeldKeys(time.Second)

	h.Press(core.ActionLeft, now)
	h.Press(core.ActionRight, now)

	if h.Held(core.ActionLeft, now) {
		t.Error("pressing right should release left")
	}
	if !h.Held(core.ActionRight, now) {
		t.Error("right should be held")
	}
}

func TestHeldKeysIgnoresDiscreteActions(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHeldKeys(time.Second)

	h.Press(core.ActionBounce, now)
	if h.Held(core.ActionBounce, now) {
		t.Error("bounce must not be tracked as held")
	}
}

func TestHeldKeysApply(t *testing.T) {
	base := time.Unix(1000, 0)
	h := NewHeldKeys(100 * time.Millisecond)
	h.Press(core.ActionRight, base)

	frame := core.NewInputFrame(0)
	h.Apply(&frame, base.Add(10*time.Millisecond))
	if frame.Horizontal() != 1 {
		t.Errorf("Horizontal() = %d, expected 1", frame.Horizontal())
	}

	frame = core.NewInputFrame(0)
	h.Apply(&frame, base.Add(time.Second))
	if frame.Has(core.ActionRight) {
		t.Error("expired key applied to frame")
	}
	if len(h.until) != 0 {
		t.Errorf("expired keys should be forgotten, have %d", len(h.until))
	}
}

func TestHeldKeysReset(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHeldKeys(0)
	if h.window != DefaultHoldWindow {
		t.Errorf("window = %v, expected default %v", h.window, DefaultHoldWindow)
	}

	h.Press(core.ActionLeft, now)
	h.Reset()
	if h.Held(core.ActionLeft, now) {
		t.Error("Reset should release all keys")
	}
}
