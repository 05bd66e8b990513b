package astrobounce

import (
	"math"

	"github.com/vovakirdan/astro-bounce/internal/core"
	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"
)

// Platform is the runtime state of one platform descriptor.
// Fields are exported read-only views; mutate only through Advance and Reset.
type Platform struct {
	desc levels.Platform

	X, Y         float64
	PrevX, PrevY float64 // Position before the last Advance
	Direction    int
	Decay        int     // Remaining decay ticks (crumbling only)
	Active       bool    // Goes false once, stays false until Reset
	PlayerOn     bool    // Latched by a landing (crumbling only)
	Opacity      float64 // Decay / authored decay, in [0, 1]
}

// NewPlatform builds a platform in its post-load state.
func NewPlatform(d levels.Platform) *Platform {
	p := &Platform{desc: d}
	p.Reset()
	return p
}

// Reset restores the exact state the platform had after construction.
func (p *Platform) Reset() {
	p.X, p.Y = p.desc.X, p.desc.Y
	p.PrevX, p.PrevY = p.X, p.Y
	p.Direction = p.desc.Direction
	if p.Direction == 0 {
		p.Direction = 1
	}
	p.Decay = p.desc.DecayTicks
	p.Active = true
	p.PlayerOn = false
	p.Opacity = 1
}

// Kind returns the platform behavior.
func (p *Platform) Kind() levels.Kind { return p.desc.Kind }

// Color returns the authored hex color.
func (p *Platform) Color() string { return p.desc.Color }

// Width returns the platform width.
func (p *Platform) Width() float64 { return p.desc.Width }

// Height returns the platform height.
func (p *Platform) Height() float64 { return p.desc.Height }

// Rect returns the current bounding box.
func (p *Platform) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.desc.Width, p.desc.Height)
}

// Displacement returns how far the platform moved during the last Advance.
func (p *Platform) Displacement() (float64, float64) {
	return p.X - p.PrevX, p.Y - p.PrevY
}

// Advance moves or decays the platform by one tick.
// dt scales motion only; decay always counts one per tick.
func (p *Platform) Advance(dt float64) {
	p.PrevX, p.PrevY = p.X, p.Y
	if !p.Active {
		return
	}

	switch p.desc.Kind {
	case levels.KindStatic:
	case levels.KindHorizontal:
		p.X = p.oscillate(p.X, p.desc.X, dt)
	case levels.KindVertical:
		p.Y = p.oscillate(p.Y, p.desc.Y, dt)
	case levels.KindCrumbling:
		if !p.PlayerOn {
			return
		}
		p.Decay--
		if p.Decay <= 0 {
			p.Active = false
		}
		p.Opacity = math.Max(0, float64(p.Decay)/float64(p.desc.DecayTicks))
	}
}

// oscillate moves pos along one axis and flips direction at either end
// of [origin, origin+travel].
func (p *Platform) oscillate(pos, origin, dt float64) float64 {
	far := origin + p.desc.Travel
	pos += p.desc.Speed * float64(p.Direction) * dt
	switch {
	case p.Direction == 1 && pos >= far:
		pos = far
		p.Direction = -1
	case p.Direction == -1 && pos <= origin:
		pos = origin
		p.Direction = 1
	}
	return pos
}
