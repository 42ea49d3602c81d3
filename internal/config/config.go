// Package config provides YAML-based game configuration loading.
package config

import (
	"fmt"

	"github.com/vovakirdan/gb11/internal/core"
)

// Config contains all tunable parameters of the game.
type Config struct {
	Game       GameSettings       `yaml:"game"`
	Transition TransitionSettings `yaml:"transition"`
	Palette    PaletteSettings    `yaml:"palette"`
	Text       TextSettings       `yaml:"text"`
	Start      StartSettings      `yaml:"start"`
}

// GameSettings defines movement and content limits.
type GameSettings struct {
	PlayerSpeed   float32 `yaml:"player_speed"`   // pixels per second
	GrowSpeed     float32 `yaml:"grow_speed"`     // pixels per second
	ArrowCapacity int     `yaml:"arrow_capacity"` // max arrows per level
	MaxDT         float32 `yaml:"max_dt"`         // seconds
}

// TransitionSettings defines fade timing.
type TransitionSettings struct {
	FadeStep float32 `yaml:"fade_step"` // seconds per palette step
}

// PaletteSettings lists the four shades, lightest first, as "#rrggbb".
type PaletteSettings struct {
	Colors []string `yaml:"colors"`
}

// TextSettings controls text layout.
type TextSettings struct {
	LineBreaks bool `yaml:"line_breaks"`
}

// StartSettings controls the title cards shown before each level.
type StartSettings struct {
	RequireClick bool `yaml:"require_click"`
}

// Validate rejects configurations the game cannot run with.
func (c Config) Validate() error {
	if c.Game.PlayerSpeed <= 0 {
		return fmt.Errorf("game.player_speed must be positive, got %v", c.Game.PlayerSpeed)
	}
	if c.Game.GrowSpeed <= 0 {
		return fmt.Errorf("game.grow_speed must be positive, got %v", c.Game.GrowSpeed)
	}
	if c.Game.ArrowCapacity < 0 {
		return fmt.Errorf("game.arrow_capacity must not be negative, got %d", c.Game.ArrowCapacity)
	}
	if c.Game.MaxDT <= 0 {
		return fmt.Errorf("game.max_dt must be positive, got %v", c.Game.MaxDT)
	}
	if c.Transition.FadeStep < 0 {
		return fmt.Errorf("transition.fade_step must not be negative, got %v", c.Transition.FadeStep)
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	return nil
}

// Colors parses the palette into reference colors.
func (c Config) Colors() ([core.PaletteSize]core.RGB, error) {
	var out [core.PaletteSize]core.RGB
	if len(c.Palette.Colors) != core.PaletteSize {
		return out, fmt.Errorf("palette.colors: want %d colors, got %d", core.PaletteSize, len(c.Palette.Colors))
	}
	for i, s := range c.Palette.Colors {
		rgb, err := core.ParseHex(s)
		if err != nil {
			return out, fmt.Errorf("palette.colors[%d]: %w", i, err)
		}
		out[i] = rgb
	}
	for i := 0; i < core.PaletteSize; i++ {
		for j := i + 1; j < core.PaletteSize; j++ {
			if out[i] == out[j] {
				return out, fmt.Errorf("palette.colors[%d] duplicates palette.colors[%d]", j, i)
			}
		}
	}
	return out, nil
}

// NewPalette builds the reference palette, falling back to the default
// shades when the configured ones are invalid.
func (c Config) NewPalette() core.Palette {
	colors, err := c.Colors()
	if err != nil {
		return core.NewPalette(core.DefaultColors)
	}
	return core.NewPalette(colors)
}

// Runtime returns the frame driver settings derived from this config.
func (c Config) Runtime(tickRate int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if tickRate > 0 {
		rc.TickRate = tickRate
	}
	rc.MaxDT = c.Game.MaxDT
	return rc
}
