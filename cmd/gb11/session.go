package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gb11/internal/atlas"
	"github.com/vovakirdan/gb11/internal/config"
	"github.com/vovakirdan/gb11/internal/core"
	"github.com/vovakirdan/gb11/internal/game"
	"github.com/vovakirdan/gb11/internal/levels"
)

// session bundles everything a driver needs to run a game.
type session struct {
	cfg    config.Config
	table  *levels.Table
	atlas  *core.Atlas
	game   *game.Game
	screen *core.Screen
	log    *log.Logger
}

// newLogger creates the structured logger all packages share.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gb11",
	})
	logger.SetLevel(level)
	return logger, nil
}

// openLogFile opens path for appending, creating its directory.
// A leading "~" expands to the home directory.
func openLogFile(path string) (*os.File, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving log path: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// loadContent loads the config and the level table named by the global flags.
func loadContent() (config.Config, *levels.Table, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, nil, err
	}
	table, err := levels.Load(flagLevels, cfg.Game.ArrowCapacity)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, table, nil
}

// openSession loads all content and creates a game logging to logger.
func openSession(logger *log.Logger) (*session, error) {
	cfg, table, err := loadContent()
	if err != nil {
		return nil, err
	}
	a, err := atlas.Load(flagAtlas)
	if err != nil {
		return nil, err
	}

	g, err := game.New(cfg, table, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("content loaded", "levels", table.Len(), "config", flagConfig, "level_file", flagLevels)
	return &session{
		cfg:    cfg,
		table:  table,
		atlas:  a,
		game:   g,
		screen: core.NewScreen(core.ScreenW, core.ScreenH, a),
		log:    logger,
	}, nil
}

// runtime returns the driver settings for this session.
func (s *session) runtime() core.RuntimeConfig {
	return s.cfg.Runtime(flagFPS)
}

// startLevel positions the game on the title card of a 1-based level.
func (s *session) startLevel(level int) error {
	if level < 1 || level > s.table.Len() {
		return fmt.Errorf("level %d out of range 1-%d", level, s.table.Len())
	}
	s.game.StartAt(level - 1)
	return nil
}
