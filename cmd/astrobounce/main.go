// astrobounce is a terminal platformer: bounce between static, moving and
// crumbling platforms to reach the spinning goal of each level.
//
// Usage:
//
//	astrobounce play              - Play the level pack
//	astrobounce levels            - List the levels of a pack
//	astrobounce validate FILE...  - Check level pack files
//	astrobounce sim               - Run a scripted game without a terminal
//
// Global flags:
//
//	--config <path>    - Tuning YAML (default: search ~/.astrobounce and ./configs)
//	--levels <path>    - Level pack YAML (default: built-in classic pack)
//	--log-file <path>  - Write logs to a file
//	--verbose          - Log debug messages
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/astro-bounce/internal/config"
	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"
)

var (
	// Global flags
	flagConfig  string
	flagLevels  string
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "astrobounce",
	Short: "Astro Bounce - a platformer in your terminal",
	Long: `Astro Bounce is a terminal platformer. Move left and right, bounce off
platforms and reach the spinning goal to clear each level.

Available commands:
  play      - Play the level pack
  levels    - List the levels of a pack
  validate  - Check level pack files
  sim       - Run a scripted game without a terminal

Examples:
  astrobounce play
  astrobounce play --level 4
  astrobounce play --levels ./my-pack.yaml --watch
  astrobounce validate ./my-pack.yaml
  astrobounce sim --ticks 600 --verbose`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to level pack YAML (default: built-in pack)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the CLI logger. Logs go to --log-file when set,
// otherwise to fallback. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	out := fallback
	closeFn := func() error { return nil }

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file %s: %w", flagLogFile, err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "astrobounce",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadInputs resolves the tuning config and level pack from the global flags.
func loadInputs() (config.AstroConfig, levels.Pack, error) {
	cfg, err := config.LoadAstro(flagConfig)
	if err != nil {
		return config.AstroConfig{}, levels.Pack{}, err
	}
	pack, err := levels.Load(flagLevels)
	if err != nil {
		return config.AstroConfig{}, levels.Pack{}, err
	}
	return cfg, pack, nil
}
