package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astro-bounce/internal/core"
	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"
)

// Game is what the platform needs from a game engine.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and rendering.
type Game interface {
	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current lifecycle summary.
	State() core.GameState
}

// PackReplacer is implemented by games that accept a new level pack.
type PackReplacer interface {
	ReplacePack(pack levels.Pack) error
}

// statusDuration is how long a status message stays on the help row.
const statusDuration = 3 * time.Second

// Options configures the terminal front-end.
type Options struct {
	Runtime    core.RuntimeConfig
	HoldWindow time.Duration
	Watcher    *Watcher    // Optional level file watcher
	Logger     *log.Logger // Optional, discards when nil
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      *KeyMapper
	help      help.Model
	held      *HeldKeys
	fps       *FPSMeter
	watcher   *Watcher
	logger    *log.Logger
	epoch     time.Time
	pending   core.InputFrame // Discrete actions waiting for the next tick
	gameState core.GameState
	status    string
	statusErr bool
	statusEnd time.Time
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:    cfg,
		keys:      NewKeyMapper(),
		help:      help.New(),
		held:      NewHeldKeys(opts.HoldWindow),
		fps:       &FPSMeter{},
		watcher:   opts.Watcher,
		logger:    logger,
		epoch:     time.Now(),
		pending:   core.NewInputFrame(0),
		gameState: game.State(),
	}
}

// playfieldHeight leaves the last terminal row for the help line.
func playfieldHeight(h int) int {
	return core.Max(0, h-1)
}

// Init starts the tick loop and the level watcher.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case LevelFileChangedMsg:
		return m.handleLevelFile(msg.Path)

	case WatchErrorMsg:
		m.setStatus(fmt.Sprintf("watch error: %v", msg.Err), true)
		m.logger.Error("level watcher failed", "error", msg.Err)
		return m, waitForChange(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionLeft || action == core.ActionRight:
		m.held.Press(action, time.Now())
	case action != core.ActionNone:
		m.pending.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state;
// only the screen mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	in := m.pending.Clone()
	in.Now = now.Sub(m.epoch)
	m.held.Apply(&in, now)
	m.pending.Clear()

	result := m.game.Step(in)
	m.gameState = result.State
	if result.Has(core.EventLevelLoaded) {
		m.held.Reset()
	}

	m.fps.Frame(now)
	return m, tickCmd(m.config.TickRate)
}

// handleLevelFile reloads the watched level pack.
func (m Model) handleLevelFile(path string) (tea.Model, tea.Cmd) {
	next := waitForChange(m.watcher)

	replacer, ok := m.game.(PackReplacer)
	if !ok {
		return m, next
	}

	pack, err := levels.LoadFile(path)
	if err == nil {
		err = replacer.ReplacePack(pack)
	}
	if err != nil {
		m.setStatus(fmt.Sprintf("reload failed: %v", err), true)
		m.logger.Warn("level reload failed", "path", path, "error", err)
		return m, next
	}

	m.setStatus(fmt.Sprintf("reloaded %s (%d levels), applies on next load", filepath.Base(path), pack.Len()), false)
	m.logger.Info("level pack reloaded", "path", path, "levels", pack.Len())
	return m, next
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
	m.statusEnd = time.Now().Add(statusDuration)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.setStatus("screenshot failed: no home directory", true)
		return
	}
	dir := filepath.Join(home, ".astrobounce", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatus(fmt.Sprintf("screenshot failed: %v", err), true)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("astrobounce_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus(fmt.Sprintf("screenshot failed: %v", err), true)
		return
	}
	m.setStatus("saved "+path, false)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if !m.gameState.Finished && m.fps.FPS() > 0 {
		text := fmt.Sprintf("FPS: %d", m.fps.FPS())
		m.screen.DrawTextColored(m.screen.Width()-len(text)-1, 0, text, core.ColorGray)
	}

	return RenderScreen(m.screen) + "\n" + m.footer()
}

// footer returns the status message while it is fresh, otherwise the help.
func (m Model) footer() string {
	if m.status != "" && time.Now().Before(m.statusEnd) {
		if m.statusErr {
			return errorStyle.Render(m.status)
		}
		return statusStyle.Render(m.status)
	}
	return m.help.View(m.keys.Keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
