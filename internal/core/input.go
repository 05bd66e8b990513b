package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Held: move left
	ActionRight          // Held: move right
	ActionBounce         // Discrete: bounce off the supporting platform
	ActionRestart        // Discrete: start, restart or advance depending on state
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionBounce:
		return "Bounce"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction converts a lowercase action name into an Action.
func ParseAction(name string) (Action, bool) {
	switch name {
	case "left":
		return ActionLeft, true
	case "right":
		return ActionRight, true
	case "bounce":
		return ActionBounce, true
	case "restart":
		return ActionRestart, true
	case "quit":
		return ActionQuit, true
	}
	return ActionNone, false
}

// InputFrame is the input for one simulation tick: the wall-clock timestamp
// of the tick plus the actions active during it. Left and Right describe
// held keys; Bounce and Restart are one-shot events.
type InputFrame struct {
	// Now is the tick timestamp measured from an arbitrary fixed epoch.
	Now time.Duration

	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame at the given timestamp.
func NewInputFrame(now time.Duration) InputFrame {
	return InputFrame{
		Now:     now,
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame(f.Now)
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Horizontal resolves the held movement keys into -1, 0 or +1.
// Holding both directions cancels out.
func (f InputFrame) Horizontal() int {
	left, right := f.Has(ActionLeft), f.Has(ActionRight)
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	default:
		return 0
	}
}
