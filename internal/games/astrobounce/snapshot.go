package astrobounce

import (
	"math"

	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"
)

// PlatformSnapshot is the renderable state of one platform.
type PlatformSnapshot struct {
	X, Y      float64
	W, H      float64
	Kind      levels.Kind
	Color     string
	Direction int
	Decay     int
	Active    bool
	PlayerOn  bool
	Opacity   float64
}

// PlayerSnapshot is the renderable state of the player.
type PlayerSnapshot struct {
	X, Y    float64
	W, H    float64
	DX, DY  float64
	Support int // Platform index, -1 when airborne
}

// Snapshot is a plain-data copy of the game state for rendering and tests.
type Snapshot struct {
	Tick       uint64
	State      string
	Level      int // Zero-based index
	Levels     int
	LevelName  string
	Player     PlayerSnapshot
	Platforms  []PlatformSnapshot
	Goal       Goal
	Vortex     *Vortex // nil outside spawning
	Unresolved int     // Unresolved contacts since New
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	w := &g.world
	pl := w.player

	platforms := make([]PlatformSnapshot, len(w.platforms))
	for i, p := range w.platforms {
		platforms[i] = PlatformSnapshot{
			X:         p.X,
			Y:         p.Y,
			W:         p.Width(),
			H:         p.Height(),
			Kind:      p.Kind(),
			Color:     p.Color(),
			Direction: p.Direction,
			Decay:     p.Decay,
			Active:    p.Active,
			PlayerOn:  p.PlayerOn,
			Opacity:   p.Opacity,
		}
	}

	var vortex *Vortex
	if w.vortex != nil {
		v := *w.vortex
		vortex = &v
	}

	return Snapshot{
		Tick:      g.tick,
		State:     g.state,
		Level:     w.levelIndex,
		Levels:    g.pack.Len(),
		LevelName: w.levelName,
		Player: PlayerSnapshot{
			X: pl.X, Y: pl.Y,
			W: pl.W, H: pl.H,
			DX: pl.DX, DY: pl.DY,
			Support: w.supportIndex(),
		},
		Platforms:  platforms,
		Goal:       w.goal,
		Vortex:     vortex,
		Unresolved: g.unresolved,
	}
}

// Hash returns a hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(v float64) { mix(math.Float64bits(v)) }
	mixB := func(v bool) {
		if v {
			mix(1)
		} else {
			mix(0)
		}
	}

	for _, r := range snap.State {
		mix(uint64(r))
	}
	mix(uint64(snap.Level))      //#nosec G115 -- hash computation
	mix(uint64(snap.Unresolved)) //#nosec G115 -- hash computation

	p := snap.Player
	for _, v := range []float64{p.X, p.Y, p.W, p.H, p.DX, p.DY} {
		mixF(v)
	}
	mix(uint64(p.Support + 1)) //#nosec G115 -- hash computation

	for _, pl := range snap.Platforms {
		mixF(pl.X)
		mixF(pl.Y)
		mix(uint64(pl.Direction + 1)) //#nosec G115 -- hash computation
		mix(uint64(pl.Decay))         //#nosec G115 -- hash computation
		mixB(pl.Active)
		mixB(pl.PlayerOn)
		mixF(pl.Opacity)
	}

	g := snap.Goal
	mixF(g.Angle)

	if v := snap.Vortex; v != nil {
		for _, f := range []float64{v.X, v.Y, v.W, v.H, v.Angle, v.Progress} {
			mixF(f)
		}
	}

	return h
}
