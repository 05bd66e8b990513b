package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astro-bounce/internal/games/astrobounce/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of a pack",
	Long:  `Shows every level of the built-in pack, or of the pack given with --levels.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	pack, err := levels.Load(flagLevels)
	if err != nil {
		return err
	}

	fmt.Printf("Pack %q: %d levels\n", pack.Name, pack.Len())
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range pack.Levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %3s  %-*s  %9s  %s\n", "#", maxNameLen, "Name", "Platforms", "Kinds")
	fmt.Printf("  %3s  %-*s  %9s  %s\n", "-", maxNameLen, "----", "---------", "-----")

	for i, l := range pack.Levels {
		fmt.Printf("  %3d  %-*s  %9d  %s\n", i+1, maxNameLen, l.Name, len(l.Platforms), kindSummary(l))
	}

	fmt.Println()
	fmt.Println("Run 'astrobounce play --level <#>' to start at a level.")
	return nil
}

// kindSummary counts platforms per kind, e.g. "static:3 crumbling:1".
func kindSummary(l levels.Level) string {
	counts := make(map[levels.Kind]int)
	for _, p := range l.Platforms {
		counts[p.Kind]++
	}

	out := ""
	for _, k := range []levels.Kind{levels.KindStatic, levels.KindHorizontal, levels.KindVertical, levels.KindCrumbling} {
		if counts[k] == 0 {
			continue
		}
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s:%d", k, counts[k])
	}
	return out
}
