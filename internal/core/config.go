package core

// RuntimeConfig contains the platform settings the game is started with.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Event is something notable that happened during a tick.
type Event int

const (
	EventNone              Event = iota
	EventLevelLoaded             // A level was (re)loaded; held input must be dropped
	EventGoalReached             // The player touched the goal
	EventLevelComplete           // Goal-entry animation finished
	EventGameOver                // The player fell out of the world
	EventGameComplete            // The last level was finished
	EventUnresolvedContact       // An overlap matched no collision case
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventLevelLoaded:
		return "level-loaded"
	case EventGoalReached:
		return "goal-reached"
	case EventLevelComplete:
		return "level-complete"
	case EventGameOver:
		return "game-over"
	case EventGameComplete:
		return "game-complete"
	case EventUnresolvedContact:
		return "unresolved-contact"
	default:
		return "none"
	}
}

// GameState summarizes the lifecycle position of the game.
type GameState struct {
	Phase    string // Lifecycle state tag
	Level    int    // Zero-based level index
	Levels   int    // Number of levels in the loaded pack
	Finished bool   // Whether the game sits in a terminal state
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick raised the given event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
