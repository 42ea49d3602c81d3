// Package game implements the GB11 puzzle: a player walks tile by tile
// inside a boundary that shrinks behind every step, arrows grow it back,
// and a key opens the door to the next level.
//
// Game is a self-contained context object. It never touches the terminal
// or a window; frame drivers feed it elapsed time and a button latch and
// let it paint a core.Screen.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/gb11/internal/config"
	"github.com/vovakirdan/gb11/internal/core"
	"github.com/vovakirdan/gb11/internal/levels"
)

// Mode is the single state the game is in.
type Mode string

const (
	ModeIdle            Mode = "idle"
	ModeWalking         Mode = "walking"
	ModeGrowing         Mode = "growing"
	ModeTransitionBegin Mode = "transition_begin"
	ModeTransitionEnd   Mode = "transition_end"
	ModeFinished        Mode = "finished"
)

// Game holds all gameplay state.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	table   *levels.Table
	log     *log.Logger
	palette core.Palette

	mode     Mode
	level    int
	finished bool
	frame    uint64
	moves    int

	player player
	bounds boundary
	door   marker
	key    marker
	arrows arrowSet

	begin transition
	end   transition
	timer float32
}

// New creates a game positioned on the title card of the first level.
// The table must pass levels.Validate. A nil logger discards all output.
func New(cfg config.Config, table *levels.Table, logger *log.Logger) (*Game, error) {
	if err := levels.Validate(table, cfg.Game.ArrowCapacity); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		cfg:     cfg,
		runtime: cfg.Runtime(0),
		table:   table,
		log:     logger,
		palette: cfg.NewPalette(),
		arrows:  newArrowSet(cfg.Game.ArrowCapacity),
	}
	g.resetLevel()
	g.startBegin()
	return g, nil
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Level returns the index of the current level.
func (g *Game) Level() int {
	return g.level
}

// Levels returns the level table.
func (g *Game) Levels() *levels.Table {
	return g.table
}

// StartAt jumps to the title card of level i, clamped to the table.
func (g *Game) StartAt(i int) {
	g.finished = false
	g.level = g.table.Clamp(i)
	g.resetLevel()
	g.startBegin()
}

// LoadLevel loads level i, clamped to the table, and hands control to the
// player immediately without a transition. Loading the same level twice
// yields the same state.
func (g *Game) LoadLevel(i int) {
	g.finished = false
	g.level = g.table.Clamp(i)
	g.palette.Restore()
	g.begin = transition{}
	g.end = transition{}
	g.timer = 0
	g.resetLevel()
	g.mode = ModeIdle
	g.log.Info("level loaded", "level", g.level, "name", g.table.Level(g.level).Name)
}

// resetLevel rebuilds the entities and the boundary of the current level
// in one scan of its map. The mode is left to the caller.
func (g *Game) resetLevel() {
	d := g.table.Level(g.level)

	g.bounds = newBoundary(d.Bounds())
	g.door = marker{}
	g.key = marker{}
	g.arrows.reset()
	g.moves = 0

	d.Each(func(x, y int, s levels.Spawn) {
		switch s.Kind {
		case levels.SpawnPlayer:
			g.player = newPlayer(x, y)
		case levels.SpawnDoor:
			g.door = marker{X: x, Y: y}
		case levels.SpawnKey:
			g.key = marker{X: x, Y: y}
		case levels.SpawnArrow:
			if !g.arrows.add(x, y, s.Dir) {
				g.log.Warn("arrow dropped", "level", g.level, "capacity", g.arrows.capacity)
			}
		}
	})
}

// AddArrow places an extra arrow on the current level. It returns false
// when the level already holds as many arrows as its capacity.
func (g *Game) AddArrow(x, y int, dir core.Dir) bool {
	return g.arrows.add(x, y, dir)
}

// Update advances the game by dt seconds with the given input.
// The latch is read, never rotated.
func (g *Game) Update(dt float32, in *core.Latch) {
	dt = g.runtime.ClampDT(dt)
	g.frame++

	switch g.mode {
	case ModeTransitionBegin:
		g.updateBegin(dt, in)
	case ModeTransitionEnd:
		g.updateEnd(dt)
	case ModeFinished:
		g.updateFinished(in)
	case ModeGrowing:
		g.updateGrowth(dt)
	case ModeWalking:
		g.updateWalk(dt)
	case ModeIdle:
		g.updateIdle(in)
	}
}
