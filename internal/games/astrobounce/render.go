package astrobounce

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/astro-bounce/internal/core"
	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"
)

// Visual characters for rendering
const (
	StaticChar = '█'
	MovingChar = '▆'
	PlayerChar = '■'
	GoalChar   = '◌'
	VortexChar = '░'
)

// Crumbling glyphs from full to almost gone
var crumbleGlyphs = []rune{'▓', '▒', '░'}

// Spinner frames for the goal and vortex centers
var spinGlyphs = []rune{'|', '/', '-', '\\'}

// HUDRows is the number of screen rows above the playfield.
const HUDRows = 1

const playerColor = "#FFD700"

// Render draws the current state into dst. The screen is pre-cleared.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	RenderSnapshot(dst, &snap, g.cfg.World.Width, g.cfg.World.Height)
}

// RenderSnapshot draws a snapshot of a world of the given size into dst.
func RenderSnapshot(dst *core.Screen, snap *Snapshot, worldW, worldH float64) {
	if dst.Width() == 0 || dst.Height() <= HUDRows {
		return
	}

	if snap.State == StateStartScreen {
		drawOverlay(dst, core.ColorBrightYellow, "ASTRO-BOUNCE", "Press space to start")
		return
	}

	v := newViewport(dst, worldW, worldH)

	for _, p := range snap.Platforms {
		if !p.Active {
			continue
		}
		v.fill(dst, core.NewRectF(p.X, p.Y, p.W, p.H), platformGlyph(p), nearestColor(p.Color))
	}

	goal := snap.Goal
	v.fill(dst, goal.Rect(), GoalChar, nearestColor(goal.Color))
	v.center(dst, goal.Rect(), spinGlyph(goal.Angle), core.ColorBrightYellow)

	if vx := snap.Vortex; vx != nil && vx.W > 0 {
		v.fill(dst, vx.Rect(), VortexChar, core.ColorBrightWhite)
		v.center(dst, vx.Rect(), spinGlyph(vx.Angle), core.ColorBrightWhite)
	}

	switch snap.State {
	case StatePlaying, StateEnteringGoal, StateSpawning:
		p := snap.Player
		if p.W > 0 && p.H > 0 {
			v.fill(dst, core.NewRectF(p.X, p.Y, p.W, p.H), PlayerChar, nearestColor(playerColor))
		}
	}

	switch snap.State {
	case StateGameOver, StateGameComplete:
	default:
		hud := fmt.Sprintf("LEVEL: %d", snap.Level+1)
		if snap.LevelName != "" {
			hud += "  " + snap.LevelName
		}
		dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)
	}

	switch snap.State {
	case StateLevelComplete:
		drawOverlay(dst, core.ColorBrightWhite, fmt.Sprintf("LEVEL %d COMPLETE!", snap.Level+1), "Loading next level...")
	case StateGameComplete:
		drawOverlay(dst, core.ColorBrightWhite, "GAME COMPLETE!", "Thanks for playing!", "Press space to play again")
	case StateGameOver:
		drawOverlay(dst, core.ColorBrightRed, "GAME OVER!", "You fell into the abyss...", "PRESS SPACE TO RESTART")
	}
}

// viewport maps world units to playfield cells below the HUD.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	h := dst.Height() - HUDRows
	return viewport{
		sx: float64(dst.Width()) / worldW,
		sy: float64(h) / worldH,
		w:  dst.Width(),
		h:  h,
	}
}

func (v viewport) cells(r core.RectF) core.Rect {
	c := r.Cells(v.sx, v.sy)
	c.Y += HUDRows
	return c
}

func (v viewport) fill(dst *core.Screen, r core.RectF, ch rune, c core.Color) {
	dst.DrawRect(v.cells(r), ch, c)
}

func (v viewport) center(dst *core.Screen, r core.RectF, ch rune, c core.Color) {
	cx, cy := r.Center()
	x := int(math.Floor(cx * v.sx))
	y := int(math.Floor(cy*v.sy)) + HUDRows
	dst.SetColored(x, y, ch, c)
}

func platformGlyph(p PlatformSnapshot) rune {
	switch {
	case p.Kind.Moving():
		return MovingChar
	case p.Kind == levels.KindCrumbling:
		i := int((1 - p.Opacity) * float64(len(crumbleGlyphs)))
		return crumbleGlyphs[core.Clamp(i, 0, len(crumbleGlyphs)-1)]
	default:
		return StaticChar
	}
}

func spinGlyph(angle float64) rune {
	step := int(math.Floor(angle / (math.Pi / 4)))
	n := len(spinGlyphs)
	return spinGlyphs[((step%n)+n)%n]
}

// drawOverlay draws centered lines in a framed panel over the playfield.
func drawOverlay(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, line := range lines {
		width = core.Max(width, len([]rune(line)))
	}
	top := dst.Height()/2 - len(lines)/2

	// One cell of padding inside the frame on every side.
	box := core.NewRect((dst.Width()-width)/2-2, top-2, width+4, len(lines)+4)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	for i, line := range lines {
		dst.DrawTextCentered(top+i, line, c)
	}
}

// nearestColor maps an authored hex color to the closest palette color
// in CIE Lab space. Unparseable colors fall back to white.
func nearestColor(hex string) core.Color {
	src, err := colorful.Hex(hex)
	if err != nil {
		return core.ColorWhite
	}

	best, bestDist := core.ColorWhite, math.MaxFloat64
	for _, pc := range core.Palette() {
		ref, err := colorful.Hex(pc.Hex())
		if err != nil {
			continue
		}
		if d := src.DistanceLab(ref); d < bestDist {
			best, bestDist = pc, d
		}
	}
	return best
}
