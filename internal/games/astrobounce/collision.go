package astrobounce

import "github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"

// Contact is the outcome of resolving the player against one platform.
type Contact int

const (
	ContactNone       Contact = iota // Inactive or not overlapping
	ContactLand                      // Came from above, now supported
	ContactCeiling                   // Hit the underside while rising
	ContactPushLeft                  // Pushed out to the platform's left edge
	ContactPushRight                 // Pushed out to the platform's right edge
	ContactUnresolved                // Overlap matched no case, left as is
)

// String returns a human-readable name for the contact.
func (c Contact) String() string {
	switch c {
	case ContactNone:
		return "none"
	case ContactLand:
		return "land"
	case ContactCeiling:
		return "ceiling"
	case ContactPushLeft:
		return "push-left"
	case ContactPushRight:
		return "push-right"
	case ContactUnresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

// Resolve corrects the player against a single platform, using the player's
// position before this tick (prevX, prevY) and the platform's previous
// position to tell which edge was crossed.
//
// Platforms must be resolved in authoring order with the player's support
// cleared beforehand. The first landing becomes the support; later landings
// in the same pass return ContactLand without moving the player.
func Resolve(pl *Player, prevX, prevY float64, p *Platform, tolerance float64) Contact {
	if !p.Active || !pl.Rect().Intersects(p.Rect()) {
		return ContactNone
	}

	switch {
	case pl.DY >= 0 && prevY+pl.H <= p.PrevY+tolerance:
		if pl.Support != nil {
			return ContactLand
		}
		pl.DY = 0
		pl.Y = p.Y - pl.H
		pl.Support = p
		if p.Kind() == levels.KindCrumbling {
			p.PlayerOn = true
		}
		return ContactLand

	case pl.DY < 0 && prevY >= p.PrevY+p.Height():
		pl.DY = 0
		pl.Y = p.Y + p.Height()
		return ContactCeiling

	case pl.X+pl.W > p.X && prevX+pl.W <= p.PrevX:
		pl.X = p.X - pl.W
		return ContactPushLeft

	case pl.X < p.X+p.Width() && prevX >= p.PrevX+p.Width():
		pl.X = p.X + p.Width()
		return ContactPushRight
	}

	return ContactUnresolved
}
