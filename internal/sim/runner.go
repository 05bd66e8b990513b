package sim

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astro-bounce/internal/core"
)

// Stepper is the part of a game the runner drives.
type Stepper interface {
	Step(in core.InputFrame) core.StepResult
}

// Transition records a lifecycle change.
type Transition struct {
	Tick  int
	From  string
	To    string
	Level int
}

// Report summarizes a run.
type Report struct {
	Ticks       int
	Final       core.GameState
	Transitions []Transition
	Events      map[core.Event]int
}

// Runner steps a game at a fixed synthetic frame rate.
type Runner struct {
	Frame  time.Duration
	Logger *log.Logger
}

// NewRunner creates a runner; a nil logger discards output.
func NewRunner(frame time.Duration, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Frame: frame, Logger: logger}
}

// Run plays the script, then idles until ticks have elapsed.
// With ticks <= 0 the run stops at the end of the script.
func (r *Runner) Run(g Stepper, script Script, ticks int) Report {
	frames := script.frames()
	if ticks <= 0 {
		ticks = len(frames)
	}

	rep := Report{Events: make(map[core.Event]int)}
	var now time.Duration
	phase := ""
	if s, ok := g.(interface{ State() core.GameState }); ok {
		phase = s.State().Phase
	}

	for i := 0; i < ticks; i++ {
		now += r.Frame
		in := core.NewInputFrame(now)
		if i < len(frames) {
			for _, a := range frames[i] {
				in.Set(a)
			}
		}

		res := g.Step(in)
		rep.Ticks++
		rep.Final = res.State
		for _, e := range res.Events {
			rep.Events[e]++
			r.Logger.Debug("event", "tick", i+1, "event", e)
		}

		if res.State.Phase != phase {
			if phase != "" {
				rep.Transitions = append(rep.Transitions, Transition{Tick: i + 1, From: phase, To: res.State.Phase, Level: res.State.Level})
				r.Logger.Info("transition", "tick", i+1, "from", phase, "to", res.State.Phase, "level", res.State.Level+1)
			}
			phase = res.State.Phase
		}
	}
	return rep
}
