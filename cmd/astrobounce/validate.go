package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astro-bounce/internal/config"
	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check level pack files",
	Long: `Parses and validates each level pack file. Stops with a non-zero exit
status at the first invalid file. The tuning config from --config is
checked as well.

Examples:
  astrobounce validate ./packs/*.yaml
  astrobounce validate --config ./tuning.yaml ./my-pack.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := config.LoadAstro(flagConfig); err != nil {
		return err
	}

	for _, path := range args {
		pack, err := levels.LoadFile(path)
		if err != nil {
			logger.Error("invalid level pack", "path", path, "error", err)
			return fmt.Errorf("validating %s: %w", path, err)
		}
		fmt.Printf("%s: ok (%q, %d levels)\n", path, pack.Name, pack.Len())
	}
	return nil
}
