package core

import (
	"testing"
	"time"
)

func TestInputFrameHorizontal(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected int
	}{
		{"nothing held", nil, 0},
		{"left only", []Action{ActionLeft}, -1},
		{"right only", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
		{"bounce does not move", []Action{ActionBounce}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame(0)
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Horizontal(); got != tc.expected {
				t.Errorf("Horizontal() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame(42 * time.Millisecond)
	f.Set(ActionBounce)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionBounce) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionBounce) {
		t.Error("Clone should be independent of the original")
	}
	if clone.Now != 42*time.Millisecond {
		t.Errorf("Clone should keep the timestamp, got %v", clone.Now)
	}

	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionLeft)
	if !zero.Has(ActionLeft) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestParseAction(t *testing.T) {
	for _, name := range []string{"left", "right", "bounce", "restart", "quit"} {
		a, ok := ParseAction(name)
		if !ok {
			t.Errorf("ParseAction(%q) failed", name)
			continue
		}
		if a == ActionNone {
			t.Errorf("ParseAction(%q) returned ActionNone", name)
		}
	}
	if _, ok := ParseAction("jump"); ok {
		t.Error("ParseAction should reject unknown names")
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventLevelLoaded, EventGameOver}}
	if !r.Has(EventGameOver) {
		t.Error("Has(EventGameOver) should be true")
	}
	if r.Has(EventGoalReached) {
		t.Error("Has(EventGoalReached) should be false")
	}
}
