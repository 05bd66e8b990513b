// Package astrobounce implements the Astro Bounce platformer engine:
// platforms, collision resolution, player kinematics and the level
// lifecycle. It has no terminal dependencies; the platform layer feeds it
// one InputFrame per tick and draws its Snapshot.
package astrobounce

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astro-bounce/internal/config"
	"github.com/vovakirdan/astro-bounce/internal/core"
	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"
)

// Lifecycle states
const (
	StateStartScreen   = "startScreen"   // Waiting for the first start
	StateSpawning      = "spawning"      // Vortex animation, player regrowing
	StatePlaying       = "playing"       // Physics running
	StateEnteringGoal  = "enteringGoal"  // Player shrinking into the goal
	StateLevelComplete = "levelComplete" // Waiting for the advance timer
	StateGameOver      = "gameOver"      // Fell out of the world
	StateGameComplete  = "gameComplete"  // Past the last level
)

// Game is the Astro Bounce engine. It is not safe for concurrent use.
type Game struct {
	cfg     config.AstroConfig
	pack    levels.Pack
	pending *levels.Pack // Swapped in on the next load

	logger     *log.Logger
	startLevel int // -1 when starting from the start screen

	state      string
	world      world
	clock      *Clock
	advance    Timer
	tick       uint64
	unresolved int
	events     []core.Event
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for lifecycle and anomaly messages.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithStartLevel skips the start screen and spawns into level index i.
func WithStartLevel(i int) Option {
	return func(g *Game) {
		g.startLevel = i
	}
}

// New creates a game over a validated config and level pack.
func New(cfg config.AstroConfig, pack levels.Pack, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := pack.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level pack %q: %w", pack.Name, err)
	}

	g := &Game{
		cfg:        cfg,
		pack:       pack,
		logger:     log.New(io.Discard),
		startLevel: -1,
		state:      StateStartScreen,
		clock:      NewClock(cfg.Timing.Frame()),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.startLevel >= 0 {
		if g.startLevel >= pack.Len() {
			return nil, fmt.Errorf("start level %d out of range: pack %q has %d levels", g.startLevel+1, pack.Name, pack.Len())
		}
		g.load(g.startLevel)
	}
	return g, nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	g.tick++

	start := in.Has(core.ActionRestart) || in.Has(core.ActionBounce)

	switch g.state {
	case StateStartScreen, StateGameComplete:
		if start {
			g.load(0)
		}

	case StateGameOver:
		if start {
			g.load(g.world.levelIndex)
		}

	case StateSpawning:
		if g.world.spawn(g.cfg.Spawn) {
			g.setState(StatePlaying)
		}

	case StatePlaying:
		g.stepPlaying(in)

	case StateEnteringGoal:
		if g.world.enterGoal(g.cfg.Goal) {
			g.setState(StateLevelComplete)
			g.advance.Arm(in.Now, g.cfg.Timing.LevelAdvanceDelay)
			g.emit(core.EventLevelComplete)
		}

	case StateLevelComplete:
		if g.advance.Fire(in.Now) {
			g.load(g.world.levelIndex + 1)
		}
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionBounce) {
		g.world.player.Bounce(g.cfg.Player.BounceForce)
	}

	dt := g.clock.Delta(in.Now)
	res := g.world.play(g.cfg, in.Horizontal(), dt)

	for _, i := range res.unresolved {
		g.unresolved++
		g.logger.Debug("unresolved contact", "level", g.world.levelIndex+1, "platform", i, "tick", g.tick)
		g.emit(core.EventUnresolvedContact)
	}
	// Falling out is checked after the goal and overrides it.
	switch {
	case res.fell:
		g.setState(StateGameOver)
		g.emit(core.EventGameOver)
	case res.goal:
		g.setState(StateEnteringGoal)
		g.emit(core.EventGoalReached)
	}
}

// State returns the lifecycle summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.state,
		Level:    g.world.levelIndex,
		Levels:   g.pack.Len(),
		Finished: g.state == StateGameOver || g.state == StateGameComplete,
	}
}

// Phase returns the current lifecycle state.
func (g *Game) Phase() string {
	return g.state
}

// ReplacePack swaps the level pack. The current level keeps running; the
// new pack is used from the next load on.
func (g *Game) ReplacePack(pack levels.Pack) error {
	if err := pack.Validate(); err != nil {
		return fmt.Errorf("invalid level pack %q: %w", pack.Name, err)
	}
	g.pending = &pack
	g.logger.Info("level pack replaced", "pack", pack.Name, "levels", pack.Len())
	return nil
}

func (g *Game) setState(s string) {
	if s == g.state {
		return
	}
	g.logger.Debug("state change", "from", g.state, "to", s, "level", g.world.levelIndex+1, "tick", g.tick)
	g.state = s
}

// emit records an event once per tick.
func (g *Game) emit(e core.Event) {
	for _, got := range g.events {
		if got == e {
			return
		}
	}
	g.events = append(g.events, e)
}
