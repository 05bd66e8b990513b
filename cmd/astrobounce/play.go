package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/astro-bounce/internal/core"
	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce"
	"github.com/vovakirdan/astro-bounce/internal/platform/tui"
)

var (
	flagLevel int
	flagFPS   int
	flagWatch bool
	flagHold  time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the level pack",
	Long: `Start the game in the terminal.

Controls:
  Left/A, Right/D  - Move
  Space/Up/W       - Bounce off the platform you stand on, start the game
  R/Enter          - Restart after game over
  Ctrl+S           - Save a text screenshot to ~/.astrobounce/screenshots
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Terminals report key presses but not releases, so a movement key counts
as held for --hold after each press or auto-repeat.

Examples:
  astrobounce play
  astrobounce play --level 5
  astrobounce play --levels ./my-pack.yaml --watch --log-file play.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly at level N (1-based, 0 = start screen)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --levels when the file changes")
	playCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a movement key stays held after a press")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagWatch && flagLevels == "" {
		return fmt.Errorf("--watch needs a --levels file")
	}

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, pack, err := loadInputs()
	if err != nil {
		return err
	}

	opts := []astrobounce.Option{astrobounce.WithLogger(logger)}
	if flagLevel > 0 {
		opts = append(opts, astrobounce.WithStartLevel(flagLevel-1))
	}
	game, err := astrobounce.New(cfg, pack, opts...)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tuiOpts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		HoldWindow: flagHold,
		Logger:     logger,
	}

	if flagWatch {
		watcher, err := tui.NewWatcher(flagLevels)
		if err != nil {
			return err
		}
		defer watcher.Close()
		tuiOpts.Watcher = watcher
		logger.Info("watching level pack", "path", watcher.Path())
	}

	logger.Info("starting", "pack", pack.Name, "levels", pack.Len(), "fps", flagFPS)
	if err := tui.Run(game, tuiOpts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
