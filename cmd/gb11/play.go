package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gb11/internal/core"
	"github.com/vovakirdan/gb11/internal/platform/tui"
)

var (
	flagLevel  int
	flagSelect bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. Each character cell shows two pixels,
so the terminal must be at least 160 columns by 73 rows.

Controls:
  Arrows/WASD  - Walk one tile
  X/R          - Restart the level
  Enter/Space  - Start
  Ctrl+S       - Save a screenshot to ~/.gb11/screenshots
  Q/Ctrl+C     - Quit

Examples:
  gb11 play
  gb11 play --level 3
  gb11 play --select
  gb11 play --config ./my-gb11.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on (1-based)")
	playCmd.Flags().BoolVar(&flagSelect, "select", false, "Pick the starting level from a list")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := checkTerminalSize(); err != nil {
		return err
	}

	// Stdout belongs to the renderer, so logs go to a file.
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	s, err := openSession(logger)
	if err != nil {
		return err
	}

	level := flagLevel
	if flagSelect {
		sel, err := tui.RunLevelSelect(s.table)
		if err != nil {
			return fmt.Errorf("level picker: %w", err)
		}
		// User quit the picker
		if !sel.Chosen {
			return nil
		}
		level = sel.Level + 1
	}
	if err := s.startLevel(level); err != nil {
		return err
	}

	if err := tui.Run(s.game, s.screen, s.runtime(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// checkTerminalSize refuses terminals too small for the half-block render.
// When stdout is not a terminal the check is skipped.
func checkTerminalSize() error {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return nil
	}
	cols, rows := tui.CellSize(core.ScreenW, core.ScreenH)
	rows++ // help line
	if width < cols || height < rows {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d; enlarge it or use 'gb11 window'",
			width, height, cols, rows)
	}
	return nil
}
