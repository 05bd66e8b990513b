// Package levels defines Astro Bounce level packs: immutable level
// descriptors, the YAML file format and descriptor validation.
// The engine depends on levels, levels does not depend on the engine.
package levels

// Kind is the behavior of a platform.
type Kind int

const (
	KindStatic     Kind = iota // Never moves
	KindHorizontal             // Oscillates along X between origin and origin+travel
	KindVertical               // Oscillates along Y between origin and origin+travel
	KindCrumbling              // Decays while the player stands on it
)

// String returns the name used in level files.
func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindHorizontal:
		return "horizontal"
	case KindVertical:
		return "vertical"
	case KindCrumbling:
		return "crumbling"
	default:
		return "unknown"
	}
}

// Moving reports whether the kind oscillates.
func (k Kind) Moving() bool {
	return k == KindHorizontal || k == KindVertical
}

// ParseKind converts a level file name into a Kind.
// The long "-moving" spellings are accepted as aliases.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "static":
		return KindStatic, true
	case "horizontal", "horizontal-moving":
		return KindHorizontal, true
	case "vertical", "vertical-moving":
		return KindVertical, true
	case "crumbling":
		return KindCrumbling, true
	}
	return KindStatic, false
}

// Default colors per kind, used when a descriptor has none.
const (
	ColorStatic    = "#4CAF50"
	ColorMoving    = "#FF5722"
	ColorCrumbling = "#FFC107"
	ColorGoal      = "#FF9800"
)

// DefaultColor returns the color drawn for a kind without an explicit color.
func (k Kind) DefaultColor() string {
	switch k {
	case KindHorizontal, KindVertical:
		return ColorMoving
	case KindCrumbling:
		return ColorCrumbling
	default:
		return ColorStatic
	}
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Platform describes one platform of a level.
type Platform struct {
	X, Y          float64
	Width, Height float64
	Kind          Kind
	Color         string

	// Movers
	Speed     float64 // World units per normalized frame
	Direction int     // Initial direction, +1 or -1
	Travel    float64 // Distance from origin to the far end

	// Crumbling
	DecayTicks int // Ticks of standing before the platform vanishes
}

// Goal describes the level exit.
type Goal struct {
	X, Y          float64
	Width, Height float64
	SpinSpeed     float64 // Radians per playing tick
	Color         string
}

// Level is an immutable level descriptor.
type Level struct {
	Name      string
	Start     Point
	Platforms []Platform
	Goal      Goal
}

// Pack is an ordered sequence of levels.
type Pack struct {
	Name   string
	Levels []Level
	Source string // File the pack was read from, empty for the built-in pack
}

// Len returns the number of levels.
func (p Pack) Len() int {
	return len(p.Levels)
}

// Level returns the level at index i.
func (p Pack) Level(i int) (Level, bool) {
	if i < 0 || i >= len(p.Levels) {
		return Level{}, false
	}
	return p.Levels[i], true
}
