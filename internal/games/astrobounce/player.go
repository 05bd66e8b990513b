package astrobounce

import (
	"github.com/vovakirdan/astro-bounce/internal/core"
	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"
)

// Player is the controllable body.
// While Support is set, DY is 0 and the bottom edge rests on Support.Y.
type Player struct {
	X, Y    float64
	W, H    float64
	DX, DY  float64
	Support *Platform
}

// Rect returns the current bounding box.
func (pl *Player) Rect() core.RectF {
	return core.NewRectF(pl.X, pl.Y, pl.W, pl.H)
}

// Supported reports whether the player stands on a platform.
func (pl *Player) Supported() bool {
	return pl.Support != nil
}

// Bounce launches the player off its support.
// Returns false when airborne.
func (pl *Player) Bounce(force float64) bool {
	if pl.Support == nil {
		return false
	}
	pl.DY = force
	pl.Support = nil
	return true
}

// place puts the player at a level start at full size and at rest.
func (pl *Player) place(start levels.Point, w, h float64) {
	*pl = Player{X: start.X, Y: start.Y, W: w, H: h}
}

// integrate runs the movement half of a playing tick: gravity, ride-along,
// horizontal input and vertical velocity. Support is cleared afterwards so
// collision resolution can re-establish it.
func (pl *Player) integrate(horizontal int, speed, gravity float64) {
	pl.DY += gravity
	if pl.Support != nil {
		dx, dy := pl.Support.Displacement()
		pl.X += dx
		pl.Y += dy
	}
	pl.X += float64(horizontal) * speed
	pl.Y += pl.DY
	pl.Support = nil
}
