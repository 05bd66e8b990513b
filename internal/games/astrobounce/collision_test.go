package astrobounce

import (
	"testing"

	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"
)

func TestResolveCases(t *testing.T) {
	// Platform spans x 100..300, y 500..520.
	tests := []struct {
		name         string
		prevX, prevY float64
		player       Player
		contact      Contact
		x, y, dy     float64
		supported    bool
	}{
		{
			name:  "no overlap",
			prevX: 0, prevY: 0,
			player:  Player{X: 0, Y: 10, W: 45, H: 45, DY: 2},
			contact: ContactNone,
			x:       0, y: 10, dy: 2,
		},
		{
			name:  "touching edge is not overlap",
			prevX: 150, prevY: 450,
			player:  Player{X: 150, Y: 455, W: 45, H: 45, DY: 5},
			contact: ContactNone,
			x:       150, y: 455, dy: 5,
		},
		{
			name:  "land from above",
			prevX: 150, prevY: 452,
			player:    Player{X: 150, Y: 458, W: 45, H: 45, DY: 6},
			contact:   ContactLand,
			x:         150, y: 455, dy: 0,
			supported: true,
		},
		{
			name:  "land within tolerance",
			prevX: 150, prevY: 455.8,
			player:    Player{X: 150, Y: 460, W: 45, H: 45, DY: 4.2},
			contact:   ContactLand,
			x:         150, y: 455, dy: 0,
			supported: true,
		},
		{
			name:  "bump ceiling",
			prevX: 150, prevY: 520,
			player:  Player{X: 150, Y: 515, W: 45, H: 45, DY: -5},
			contact: ContactCeiling,
			x:       150, y: 520, dy: 0,
		},
		{
			name:  "push left",
			prevX: 50, prevY: 490,
			player:  Player{X: 60, Y: 490, W: 45, H: 45},
			contact: ContactPushLeft,
			x:       55, y: 490, dy: 0,
		},
		{
			name:  "push right",
			prevX: 305, prevY: 490,
			player:  Player{X: 295, Y: 490, W: 45, H: 45},
			contact: ContactPushRight,
			x:       300, y: 490, dy: 0,
		},
		{
			name:  "already inside",
			prevX: 150, prevY: 490,
			player:  Player{X: 150, Y: 490, W: 45, H: 45},
			contact: ContactUnresolved,
			x:       150, y: 490, dy: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlatform(staticPlatform(100, 500, 200, 20))
			pl := tc.player

			got := Resolve(&pl, tc.prevX, tc.prevY, p, 1)
			if got != tc.contact {
				t.Fatalf("Resolve() = %s, expected %s", got, tc.contact)
			}
			if pl.X != tc.x || pl.Y != tc.y || pl.DY != tc.dy {
				t.Errorf("player at (%v, %v) dy=%v, expected (%v, %v) dy=%v", pl.X, pl.Y, pl.DY, tc.x, tc.y, tc.dy)
			}
			if pl.Supported() != tc.supported {
				t.Errorf("Supported() = %v, expected %v", pl.Supported(), tc.supported)
			}
		})
	}
}

func TestResolveIgnoresInactive(t *testing.T) {
	p := NewPlatform(crumblingPlatform(100, 500, 1))
	p.PlayerOn = true
	p.Advance(1)

	pl := Player{X: 150, Y: 458, W: 45, H: 45, DY: 6}
	if got := Resolve(&pl, 150, 452, p, 1); got != ContactNone {
		t.Errorf("Resolve() = %s on inactive platform", got)
	}
}

func TestLandingLatchesCrumbling(t *testing.T) {
	p := NewPlatform(crumblingPlatform(100, 500, 10))
	pl := Player{X: 150, Y: 458, W: 45, H: 45, DY: 6}
	Resolve(&pl, 150, 452, p, 1)
	if !p.PlayerOn {
		t.Error("landing should set PlayerOn")
	}
}

func TestFirstLandingWins(t *testing.T) {
	first := NewPlatform(staticPlatform(100, 500, 200, 20))
	second := NewPlatform(staticPlatform(100, 498, 200, 20))

	pl := Player{X: 150, Y: 458, W: 45, H: 45, DY: 6}
	if got := Resolve(&pl, 150, 452, first, 1); got != ContactLand {
		t.Fatalf("first platform: %s, expected land", got)
	}
	if got := Resolve(&pl, 150, 452, second, 1); got != ContactLand {
		t.Fatalf("second platform: %s, expected land", got)
	}
	if pl.Support != first {
		t.Error("support should stay on the first platform in authoring order")
	}
	if pl.Y != 455 {
		t.Errorf("Y = %v, later landing must not move the player", pl.Y)
	}
}

func TestContactString(t *testing.T) {
	if ContactPushLeft.String() != "push-left" || ContactUnresolved.String() != "unresolved" {
		t.Error("unexpected contact names")
	}
	if levels.KindCrumbling.String() != "crumbling" {
		t.Error("unexpected kind name")
	}
}
