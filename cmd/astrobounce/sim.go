package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astro-bounce/internal/core"
	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce"
	"github.com/vovakirdan/astro-bounce/internal/sim"
)

var (
	flagScript   string
	flagTicks    int
	flagSimLevel int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game without a terminal",
	Long: `Steps the game at a synthetic clock using a YAML input script and
logs every state transition. Prints the final state and a hash of the
final snapshot, so two runs can be compared.

Script format:
  steps:
    - {ticks: 1, press: [bounce]}
    - {ticks: 120, hold: [right]}
    - {ticks: 1, hold: [right], press: [bounce]}

Examples:
  astrobounce sim --ticks 600
  astrobounce sim --script ./run.yaml --level 3 --verbose`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Path to input script YAML (default: start, then idle)")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Ticks to run (0 = script length)")
	simCmd.Flags().IntVar(&flagSimLevel, "level", 0, "Start directly at level N (1-based, 0 = start screen)")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, pack, err := loadInputs()
	if err != nil {
		return err
	}

	script := sim.DefaultScript()
	if flagScript != "" {
		if script, err = sim.LoadScript(flagScript); err != nil {
			return err
		}
	}

	opts := []astrobounce.Option{astrobounce.WithLogger(logger)}
	if flagSimLevel > 0 {
		opts = append(opts, astrobounce.WithStartLevel(flagSimLevel-1))
	}
	game, err := astrobounce.New(cfg, pack, opts...)
	if err != nil {
		return err
	}

	runner := sim.NewRunner(cfg.Timing.Frame(), logger)
	rep := runner.Run(game, script, flagTicks)
	snap := game.Snapshot()

	fmt.Printf("ticks:       %d\n", rep.Ticks)
	fmt.Printf("state:       %s\n", rep.Final.Phase)
	fmt.Printf("level:       %d/%d %s\n", rep.Final.Level+1, rep.Final.Levels, snap.LevelName)
	fmt.Printf("transitions: %d\n", len(rep.Transitions))
	fmt.Printf("unresolved:  %d\n", snap.Unresolved)

	events := make([]core.Event, 0, len(rep.Events))
	for e := range rep.Events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i] < events[j] })
	for _, e := range events {
		fmt.Printf("event %-18s %d\n", e.String()+":", rep.Events[e])
	}

	fmt.Printf("hash:        %016x\n", snap.Hash())
	return nil
}
