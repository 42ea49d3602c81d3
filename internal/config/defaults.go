package config

import (
	_ "embed"
)

//go:embed defaults/gb11.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration, identical to the embedded
// defaults/gb11.yaml.
func Default() Config {
	return Config{
		Game: GameSettings{
			PlayerSpeed:   50,
			GrowSpeed:     50,
			ArrowCapacity: 8,
			MaxDT:         0.1,
		},
		Transition: TransitionSettings{
			FadeStep: 0.15,
		},
		Palette: PaletteSettings{
			Colors: []string{"#9bbc0f", "#8bac0f", "#306230", "#0f380f"},
		},
		Text: TextSettings{
			LineBreaks: true,
		},
		Start: StartSettings{
			RequireClick: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
