package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/astro-bounce/internal/config"
	"github.com/vovakirdan/astro-bounce/internal/core"
	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce"
	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"
)

// recorder is a Stepper that remembers its input.
type recorder struct {
	frames []core.InputFrame
	phases []string
}

func (r *recorder) Step(in core.InputFrame) core.StepResult {
	r.frames = append(r.frames, in.Clone())
	phase := "a"
	if i := len(r.frames) - 1; i < len(r.phases) {
		phase = r.phases[i]
	}
	return core.StepResult{State: core.GameState{Phase: phase}}
}

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(`
steps:
  - ticks: 3
    hold: [right]
    press: [bounce]
  - ticks: 2
`))
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}
	if s.Ticks() != 5 {
		t.Errorf("Ticks() = %d, expected 5", s.Ticks())
	}

	bad := []string{
		"steps:\n  - ticks: 0\n",
		"steps:\n  - ticks: 2\n    hold: [jump]\n",
		"steps:\n  - ticks: 2\n    speed: 3\n",
	}
	for _, b := range bad {
		if _, err := ParseScript([]byte(b)); err == nil {
			t.Errorf("ParseScript(%q) should fail", b)
		}
	}
}

func TestRunnerFrames(t *testing.T) {
	script := Script{Steps: []Step{
		{Ticks: 3, Hold: []string{"right"}, Press: []string{"bounce"}},
		{Ticks: 1, Hold: []string{"left"}},
	}}
	rec := &recorder{}
	frame := 10 * time.Millisecond
	rep := NewRunner(frame, nil).Run(rec, script, 6)

	if rep.Ticks != 6 || len(rec.frames) != 6 {
		t.Fatalf("ran %d ticks, expected 6", len(rec.frames))
	}
	for i, f := range rec.frames {
		if f.Now != time.Duration(i+1)*frame {
			t.Errorf("tick %d: Now = %v", i, f.Now)
		}
	}
	if !rec.frames[0].Has(core.ActionBounce) || rec.frames[1].Has(core.ActionBounce) {
		t.Error("press should fire on the first tick of a step only")
	}
	if !rec.frames[2].Has(core.ActionRight) || rec.frames[3].Has(core.ActionRight) {
		t.Error("hold should last for the step")
	}
	if !rec.frames[3].Has(core.ActionLeft) {
		t.Error("second step not applied")
	}
	if len(rec.frames[5].Actions) != 0 {
		t.Error("ticks past the script should be idle")
	}
}

func TestRunnerTransitions(t *testing.T) {
	rec := &recorder{phases: []string{"a", "a", "b", "b", "c"}}
	rep := NewRunner(time.Millisecond, nil).Run(rec, Script{}, 5)

	if len(rep.Transitions) != 2 {
		t.Fatalf("got %d transitions, expected 2", len(rep.Transitions))
	}
	if tr := rep.Transitions[0]; tr.Tick != 3 || tr.From != "a" || tr.To != "b" {
		t.Errorf("first transition = %+v", tr)
	}
}

func TestRunClassicPack(t *testing.T) {
	cfg := config.DefaultAstroConfig()
	g, err := astrobounce.New(cfg, levels.Default())
	if err != nil {
		t.Fatal(err)
	}

	rep := NewRunner(cfg.Timing.Frame(), nil).Run(g, DefaultScript(), 300)
	if rep.Events[core.EventLevelLoaded] != 1 {
		t.Errorf("level loaded %d times, expected 1", rep.Events[core.EventLevelLoaded])
	}
	if len(rep.Transitions) == 0 || rep.Transitions[0].To != astrobounce.StatePlaying {
		t.Errorf("expected a transition into playing, got %+v", rep.Transitions)
	}
	if rep.Final.Phase != astrobounce.StatePlaying {
		t.Errorf("idle player should still be playing, got %s", rep.Final.Phase)
	}
}
