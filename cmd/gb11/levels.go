package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gb11/internal/config"
	"github.com/vovakirdan/gb11/internal/core"
	"github.com/vovakirdan/gb11/internal/levels"
)

var (
	flagCheck     bool
	flagMaxStates int
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List or check the level table",
	Long: `Shows the level table. With --check every level is validated and
proven solvable, and the shortest solution is printed.

Examples:
  gb11 levels
  gb11 levels --check
  gb11 levels --check --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate and solve every level")
	levelsCmd.Flags().IntVar(&flagMaxStates, "max-states", levels.DefaultMaxStates, "Solver search limit per level")
}

func runLevels(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	table, err := levels.Load(flagLevels, cfg.Game.ArrowCapacity)
	if err != nil {
		return err
	}

	var solutions [][]core.Dir
	if flagCheck {
		solutions, err = levels.Check(table, cfg.Game.ArrowCapacity, flagMaxStates)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, d := range table.All() {
		maxNameLen = max(maxNameLen, len(d.Name))
	}

	// Print header
	fmt.Fprintf(out, "  %-3s  %-*s  %-5s", "#", maxNameLen, "Name", "Size")
	if flagCheck {
		fmt.Fprintf(out, "  %s", "Solution")
	}
	fmt.Fprintln(out)

	for i, d := range table.All() {
		fmt.Fprintf(out, "  %-3d  %-*s  %-5s", i+1, maxNameLen, d.Name, fmt.Sprintf("%dx%d", d.Width(), d.Height()))
		if flagCheck {
			fmt.Fprintf(out, "  %s (%d moves)", formatMoves(solutions[i]), len(solutions[i]))
		}
		fmt.Fprintln(out)
	}

	if flagCheck {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "All %d levels are valid and solvable.\n", table.Len())
	}
	return nil
}

// formatMoves writes a move list as direction initials, e.g. "RRUL".
func formatMoves(moves []core.Dir) string {
	var sb strings.Builder
	for _, d := range moves {
		sb.WriteByte(d.String()[0])
	}
	return sb.String()
}
