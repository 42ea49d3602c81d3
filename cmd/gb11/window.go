package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gb11/internal/platform/window"
)

var (
	flagScale     float64
	flagWindowLvl int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start playing in a desktop window.

Controls:
  Arrows/WASD  - Walk one tile
  X            - Restart the level
  Enter/Space  - Start
  Esc          - Quit

Examples:
  gb11 window
  gb11 window --scale 3 --level 2`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", window.DefaultScale, "Window scale factor")
	windowCmd.Flags().IntVar(&flagWindowLvl, "level", 1, "Level to start on (1-based)")
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	s, err := openSession(logger)
	if err != nil {
		return err
	}
	if err := s.startLevel(flagWindowLvl); err != nil {
		return err
	}

	d := window.New(s.game, s.screen, s.runtime(), flagScale, logger)
	if err := d.Run(); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
