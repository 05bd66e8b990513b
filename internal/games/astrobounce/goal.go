package astrobounce

import (
	"math"

	"github.com/vovakirdan/astro-bounce/internal/config"
	"github.com/vovakirdan/astro-bounce/internal/core"
	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"
)

// Goal is the spinning level exit.
type Goal struct {
	X, Y      float64
	W, H      float64
	Angle     float64
	SpinSpeed float64
	Color     string
}

func newGoal(d levels.Goal) Goal {
	return Goal{X: d.X, Y: d.Y, W: d.Width, H: d.Height, SpinSpeed: d.SpinSpeed, Color: d.Color}
}

// Rect returns the goal bounding box.
func (g *Goal) Rect() core.RectF {
	return core.NewRectF(g.X, g.Y, g.W, g.H)
}

// Spin rotates the goal by mult times its spin speed.
func (g *Goal) Spin(mult float64) {
	g.Angle += g.SpinSpeed * mult
}

// enterGoal runs one tick of the goal-entry animation and reports
// whether the player has shrunk away.
func (w *world) enterGoal(cfg config.GoalConfig) bool {
	w.goal.Spin(cfg.SpinMultiplier)

	pl := &w.player
	pl.W = math.Max(0, pl.W-cfg.ShrinkStep)
	pl.H = math.Max(0, pl.H-cfg.ShrinkStep)

	cx, cy := w.goal.Rect().Center()
	pl.X += (cx - (pl.X + pl.W/2)) * cfg.EaseFactor
	pl.Y += (cy - (pl.Y + pl.H/2)) * cfg.EaseFactor

	return pl.W <= cfg.CompleteWidth
}
