package astrobounce

import (
	"testing"
	"time"

	"github.com/vovakirdan/astro-bounce/internal/config"
	"github.com/vovakirdan/astro-bounce/internal/core"
	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"
)

// farGoal sits in the top right corner, out of reach of the test layouts.
var farGoal = levels.Goal{X: 1100, Y: 30, Width: 60, Height: 60, SpinSpeed: 0.05, Color: levels.ColorGoal}

func staticPlatform(x, y, w, h float64) levels.Platform {
	return levels.Platform{X: x, Y: y, Width: w, Height: h, Kind: levels.KindStatic, Direction: 1, Color: levels.ColorStatic}
}

func moverPlatform(kind levels.Kind, x, y, speed, travel float64, dir int) levels.Platform {
	return levels.Platform{
		X: x, Y: y, Width: 200, Height: 20,
		Kind: kind, Direction: dir, Speed: speed, Travel: travel,
		Color: levels.ColorMoving,
	}
}

func crumblingPlatform(x, y float64, decay int) levels.Platform {
	return levels.Platform{X: x, Y: y, Width: 200, Height: 20, Kind: levels.KindCrumbling, Direction: 1, DecayTicks: decay, Color: levels.ColorCrumbling}
}

func testLevel(start levels.Point, goal levels.Goal, platforms ...levels.Platform) levels.Level {
	return levels.Level{Name: "test", Start: start, Platforms: platforms, Goal: goal}
}

func testPack(ls ...levels.Level) levels.Pack {
	return levels.Pack{Name: "test", Levels: ls}
}

// driver steps a game with a synthetic clock advancing one frame per tick.
type driver struct {
	t     *testing.T
	g     *Game
	now   time.Duration
	frame time.Duration
}

func newDriver(t *testing.T, pack levels.Pack, opts ...Option) *driver {
	t.Helper()
	cfg := config.DefaultAstroConfig()
	g, err := New(cfg, pack, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return &driver{t: t, g: g, frame: cfg.Timing.Frame()}
}

func (d *driver) step(actions ...core.Action) core.StepResult {
	d.now += d.frame
	in := core.NewInputFrame(d.now)
	for _, a := range actions {
		in.Set(a)
	}
	return d.g.Step(in)
}

// start leaves the start screen into level 0.
func (d *driver) start() {
	d.t.Helper()
	res := d.step(core.ActionBounce)
	if res.State.Phase != StatePlaying {
		d.t.Fatalf("expected playing after start, got %s", res.State.Phase)
	}
}

// stepUntil steps with no input until the phase is reached or limit ticks pass.
func (d *driver) stepUntil(phase string, limit int) int {
	d.t.Helper()
	for i := 1; i <= limit; i++ {
		if d.step().State.Phase == phase {
			return i
		}
	}
	d.t.Fatalf("phase %s not reached within %d ticks (now %s)", phase, limit, d.g.Phase())
	return 0
}
