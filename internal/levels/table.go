package levels

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// YAMLTable represents the YAML structure of a level table file.
type YAMLTable struct {
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents a single level in YAML format.
type YAMLLevel struct {
	Name   string     `yaml:"name"`
	Origin YAMLOrigin `yaml:"origin"`
	Map    []string   `yaml:"map"`
	Title  []string   `yaml:"title"`
}

// YAMLOrigin is the top-left tile of a level map.
type YAMLOrigin struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Table is the ordered, immutable list of levels.
type Table struct {
	levels []Descriptor
}

// NewTable wraps descriptors without validating them. Run Validate, or
// let game.New do it, before indexing the table.
func NewTable(levels []Descriptor) *Table {
	return &Table{levels: append([]Descriptor(nil), levels...)}
}

// Len returns the number of levels.
func (t *Table) Len() int {
	return len(t.levels)
}

// Level returns the descriptor at i, clamped to the table.
func (t *Table) Level(i int) Descriptor {
	return t.levels[t.Clamp(i)]
}

// Clamp restricts a level index to the table.
func (t *Table) Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(t.levels) {
		return len(t.levels) - 1
	}
	return i
}

// All returns a copy of the descriptors.
func (t *Table) All() []Descriptor {
	return append([]Descriptor(nil), t.levels...)
}

// ParseYAML parses a YAML level table.
func ParseYAML(data []byte) (*Table, error) {
	var yt YAMLTable
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	levels := make([]Descriptor, 0, len(yt.Levels))
	for _, yl := range yt.Levels {
		levels = append(levels, Descriptor{
			Name:    yl.Name,
			OriginX: yl.Origin.X,
			OriginY: yl.Origin.Y,
			Map:     yl.Map,
			Title:   yl.Title,
		})
	}
	return &Table{levels: levels}, nil
}

// Default returns the embedded level table.
func Default(arrowCapacity int) (*Table, error) {
	t, err := ParseYAML(defaultLevelsYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded levels: %w", err)
	}
	if err := Validate(t, arrowCapacity); err != nil {
		return nil, fmt.Errorf("embedded levels: %w", err)
	}
	return t, nil
}

// Load loads and validates the level table at path, or the embedded one
// when path is empty.
func Load(path string, arrowCapacity int) (*Table, error) {
	if path == "" {
		return Default(arrowCapacity)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	t, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if err := Validate(t, arrowCapacity); err != nil {
		return nil, fmt.Errorf("levels %s: %w", path, err)
	}
	return t, nil
}
