package astrobounce

import (
	"github.com/vovakirdan/astro-bounce/internal/config"
	"github.com/vovakirdan/astro-bounce/internal/core"
	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"
)

// world holds every piece of mutable simulation state.
type world struct {
	levelIndex int
	levelName  string
	start      levels.Point
	platforms  []*Platform
	goal       Goal
	player     Player
	vortex     *Vortex
}

// reset rebuilds the world from a level descriptor.
func (w *world) reset(index int, level levels.Level, cfg config.PlayerConfig) {
	w.levelIndex = index
	w.levelName = level.Name
	w.start = level.Start

	w.platforms = make([]*Platform, 0, len(level.Platforms))
	for _, d := range level.Platforms {
		w.platforms = append(w.platforms, NewPlatform(d))
	}
	for _, p := range w.platforms {
		p.Reset()
	}

	w.goal = newGoal(level.Goal)
	w.player.place(level.Start, cfg.Width, cfg.Height)
	w.vortex = nil
}

// tickResult collects what happened during one playing tick.
type tickResult struct {
	goal       bool
	fell       bool
	unresolved []int // Platform indices
}

// play advances one playing tick: platforms and goal first, then the
// player, then collisions in authoring order.
func (w *world) play(cfg config.AstroConfig, horizontal int, dt float64) tickResult {
	var res tickResult

	for _, p := range w.platforms {
		p.Advance(dt)
	}
	w.goal.Spin(1)

	pl := &w.player
	prevX, prevY := pl.X, pl.Y
	pl.integrate(horizontal, cfg.Player.Speed, cfg.Player.Gravity)

	for i, p := range w.platforms {
		if Resolve(pl, prevX, prevY, p, cfg.Collision.LandingTolerance) == ContactUnresolved {
			res.unresolved = append(res.unresolved, i)
		}
	}

	pl.X = core.ClampF(pl.X, 0, cfg.World.Width-pl.W)

	res.goal = pl.Rect().Intersects(w.goal.Rect())
	res.fell = pl.Y > cfg.World.Height
	return res
}

// supportIndex returns the index of the supporting platform, or -1.
func (w *world) supportIndex() int {
	for i, p := range w.platforms {
		if p == w.player.Support {
			return i
		}
	}
	return -1
}
