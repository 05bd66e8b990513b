package astrobounce

import (
	"math"
	"testing"

	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"
)

func TestMoverExactFlipPoints(t *testing.T) {
	p := NewPlatform(moverPlatform(levels.KindHorizontal, 100, 500, 1, 3, 1))

	expected := []struct {
		x   float64
		dir int
	}{
		{101, 1}, {102, 1}, {103, -1}, {102, -1}, {101, -1}, {100, 1}, {101, 1},
	}
	for i, e := range expected {
		p.Advance(1)
		if p.X != e.x || p.Direction != e.dir {
			t.Fatalf("tick %d: x=%v dir=%d, expected x=%v dir=%d", i+1, p.X, p.Direction, e.x, e.dir)
		}
		if p.Y != 500 {
			t.Fatalf("horizontal mover changed Y to %v", p.Y)
		}
	}
}

func TestMoverStaysInBoundsWithVariableDelta(t *testing.T) {
	tests := []struct {
		name string
		kind levels.Kind
		dir  int
	}{
		{"horizontal forward", levels.KindHorizontal, 1},
		{"horizontal backward", levels.KindHorizontal, -1},
		{"vertical forward", levels.KindVertical, 1},
		{"vertical backward", levels.KindVertical, -1},
	}
	deltas := []float64{1, 0.5, 2.7, 7, 0.1, 13, 1.3, 0}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlatform(moverPlatform(tc.kind, 100, 400, 3, 50, tc.dir))
			for i := 0; i < 1000; i++ {
				prevDir := p.Direction
				p.Advance(deltas[i%len(deltas)])

				pos, origin := p.X, 100.0
				if tc.kind == levels.KindVertical {
					pos, origin = p.Y, 400.0
				}
				if pos < origin || pos > origin+50 {
					t.Fatalf("tick %d: position %v outside [%v, %v]", i, pos, origin, origin+50)
				}
				if p.Direction != prevDir && pos != origin && pos != origin+50 {
					t.Fatalf("tick %d: flipped at %v, not at an endpoint", i, pos)
				}
			}
		})
	}
}

func TestBackwardMoverAtOriginFlipsImmediately(t *testing.T) {
	p := NewPlatform(moverPlatform(levels.KindVertical, 300, 600, 0.4, 200, -1))
	p.Advance(1)
	if p.Y != 600 || p.Direction != 1 {
		t.Errorf("y=%v dir=%d, expected clamp to origin and flip", p.Y, p.Direction)
	}
}

func TestBackwardMoverLagsOneTick(t *testing.T) {
	back := NewPlatform(moverPlatform(levels.KindVertical, 300, 600, 0.4, 200, -1))
	fwd := NewPlatform(moverPlatform(levels.KindVertical, 300, 600, 0.4, 200, 1))

	for i := 0; i < 10; i++ {
		back.Advance(1)
		if i < 9 {
			fwd.Advance(1)
		}
	}
	// The first tick is spent clamping and flipping.
	if math.Abs(back.Y-fwd.Y) > 1e-9 {
		t.Errorf("backward mover y=%v, expected %v (one tick behind)", back.Y, fwd.Y)
	}
}

func TestCrumblingDecay(t *testing.T) {
	p := NewPlatform(crumblingPlatform(0, 500, 5))

	for i := 0; i < 10; i++ {
		p.Advance(1)
	}
	if p.Decay != 5 || !p.Active {
		t.Fatalf("untouched platform decayed: decay=%d active=%v", p.Decay, p.Active)
	}

	p.PlayerOn = true
	for i := 0; i < 4; i++ {
		p.Advance(3) // dt must not speed up decay
	}
	if p.Decay != 1 || !p.Active {
		t.Fatalf("after 4 ticks: decay=%d active=%v, expected 1 and active", p.Decay, p.Active)
	}
	if p.Opacity != 0.2 {
		t.Errorf("Opacity = %v, expected 0.2", p.Opacity)
	}

	p.Advance(1)
	if p.Active {
		t.Error("platform should be inactive once decay reaches 0")
	}
	if p.Opacity != 0 {
		t.Errorf("Opacity = %v, expected 0", p.Opacity)
	}

	p.Advance(1)
	if p.Decay != 0 || p.Active {
		t.Error("inactive platform must not change")
	}
}

func TestInactivePlatformTracksPrevious(t *testing.T) {
	p := NewPlatform(crumblingPlatform(10, 500, 1))
	p.PlayerOn = true
	p.Advance(1)
	p.Advance(1)
	if dx, dy := p.Displacement(); dx != 0 || dy != 0 {
		t.Errorf("Displacement = (%v, %v), expected zero", dx, dy)
	}
}

func TestResetRoundTrip(t *testing.T) {
	descs := []levels.Platform{
		staticPlatform(0, 880, 1200, 20),
		moverPlatform(levels.KindHorizontal, 300, 600, 0.4, 200, -1),
		moverPlatform(levels.KindVertical, 500, 350, 0.5, 150, 1),
		crumblingPlatform(200, 800, 20),
	}

	for _, d := range descs {
		t.Run(d.Kind.String(), func(t *testing.T) {
			p := NewPlatform(d)
			p.PlayerOn = d.Kind == levels.KindCrumbling
			for i := 0; i < 137; i++ {
				p.Advance(1.7)
			}
			p.Reset()

			if fresh := NewPlatform(d); *p != *fresh {
				t.Errorf("Reset state %+v differs from fresh %+v", *p, *fresh)
			}
		})
	}
}
