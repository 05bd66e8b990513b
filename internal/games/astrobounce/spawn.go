package astrobounce

import (
	"math"

	"github.com/vovakirdan/astro-bounce/internal/config"
	"github.com/vovakirdan/astro-bounce/internal/core"
)

// Vortex is the spawn animation. It only exists while spawning.
type Vortex struct {
	X, Y             float64
	W, H             float64
	TargetW, TargetH float64 // Player size to grow back to
	Angle            float64
	SpinSpeed        float64
	Progress         float64
}

// Rect returns the vortex bounding box.
func (v *Vortex) Rect() core.RectF {
	return core.NewRectF(v.X, v.Y, v.W, v.H)
}

// spawn runs one tick of the spawn animation and reports whether it ended.
// The vortex is created on the first tick and discarded on the last.
func (w *world) spawn(cfg config.SpawnConfig) bool {
	pl := &w.player
	if w.vortex == nil {
		w.vortex = &Vortex{
			X: pl.X, Y: pl.Y,
			TargetW: pl.W, TargetH: pl.H,
			SpinSpeed: cfg.VortexSpinSpeed,
		}
		pl.W, pl.H = 0, 0
		pl.DX, pl.DY = 0, 0
	}
	v := w.vortex

	v.W = math.Min(v.TargetW*cfg.VortexScale, v.W+cfg.VortexGrowStep)
	v.H = math.Min(v.TargetH*cfg.VortexScale, v.H+cfg.VortexGrowStep)
	v.X = w.start.X + v.TargetW/2 - v.W/2
	v.Y = w.start.Y + v.TargetH/2 - v.H/2
	v.Angle += v.SpinSpeed

	if v.Progress > cfg.GrowThreshold {
		pl.W = math.Min(v.TargetW, pl.W+cfg.PlayerGrowStep)
		pl.H = math.Min(v.TargetH, pl.H+cfg.PlayerGrowStep)
	}
	v.Progress += cfg.ProgressStep

	if pl.W >= v.TargetW && v.Progress >= 1 {
		w.vortex = nil
		return true
	}
	return false
}
