package astrobounce

import "github.com/vovakirdan/astro-bounce/internal/core"

// load makes level index current. An index past the last level is the
// signal for the end of the game and changes nothing else.
func (g *Game) load(index int) {
	g.emit(core.EventLevelLoaded)
	if g.advance.Armed() {
		g.logger.Debug("level advance cancelled", "level", g.world.levelIndex+1)
		g.advance.Cancel()
	}
	if g.pending != nil {
		g.pack = *g.pending
		g.pending = nil
	}

	level, ok := g.pack.Level(index)
	if !ok {
		g.world.levelIndex = index
		g.setState(StateGameComplete)
		g.emit(core.EventGameComplete)
		return
	}

	g.world.reset(index, level, g.cfg.Player)
	g.logger.Debug("level loaded", "level", index+1, "name", level.Name, "platforms", len(level.Platforms))

	if g.state == StateStartScreen && index == 0 && g.startLevel < 0 {
		g.setState(StatePlaying)
	} else {
		g.setState(StateSpawning)
	}
}
