package atlas

import (
	_ "embed"
	"fmt"

	"github.com/vovakirdan/gb11/internal/core"
)

//go:embed defaults/atlas.yaml
var defaultAtlasYAML []byte

// DefaultYAML returns the embedded tile sheet source.
func DefaultYAML() []byte {
	return defaultAtlasYAML
}

// Default builds the embedded tile sheet.
func Default() (*core.Atlas, error) {
	s, err := Parse(defaultAtlasYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded atlas: %w", err)
	}
	a, err := s.Build()
	if err != nil {
		return nil, fmt.Errorf("embedded atlas: %w", err)
	}
	return a, nil
}

// Load builds the sheet at path, or the embedded one when path is empty.
func Load(path string) (*core.Atlas, error) {
	if path == "" {
		return Default()
	}
	s, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	a, err := s.Build()
	if err != nil {
		return nil, fmt.Errorf("atlas %s: %w", path, err)
	}
	return a, nil
}
