// Package atlas builds the indexed tile atlas the rasterizer draws from.
// Tiles are authored as rows of palette-index characters in a YAML sheet.
package atlas

import (
	"errors"
	"fmt"
	"os"

	"github.com/vovakirdan/gb11/internal/core"
	"gopkg.in/yaml.v3"
)

// ErrBadTile is returned for tiles whose pixel rows cannot be decoded or
// whose address falls outside the sheet.
var ErrBadTile = errors.New("bad tile")

// Sheet is the YAML representation of the tile sheet.
type Sheet struct {
	Cols  int        `yaml:"cols"`
	Rows  int        `yaml:"rows"`
	Tiles []YAMLTile `yaml:"tiles"`
}

// YAMLTile is a single 8x8 tile. Each pixel row holds one character per
// pixel: '0'..'3' for palette indices, '.' for transparent.
type YAMLTile struct {
	Name   string   `yaml:"name"`
	Col    int      `yaml:"col"`
	Row    int      `yaml:"row"`
	Pixels []string `yaml:"pixels"`
}

// Required lists the tiles the game draws by address. A sheet missing any
// of them is rejected.
var Required = []string{
	"player_up", "player_left", "player_right", "player_down",
	"door_closed", "door_open", "key",
	"arrow_up", "arrow_left", "arrow_right", "arrow_down",
	"glyph_placeholder",
}

// Parse decodes a YAML tile sheet.
func Parse(data []byte) (Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Sheet{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return s, nil
}

// LoadFile reads and parses a tile sheet from disk.
func LoadFile(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("reading atlas %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Sheet{}, fmt.Errorf("parsing atlas %s: %w", path, err)
	}
	return s, nil
}

// Tile returns the tile with the given name.
func (s Sheet) Tile(name string) (YAMLTile, bool) {
	for _, t := range s.Tiles {
		if t.Name == name {
			return t, true
		}
	}
	return YAMLTile{}, false
}

// Validate checks sheet dimensions, every tile's address and pixel rows,
// duplicate addresses, and the presence of the required tiles.
func (s Sheet) Validate() error {
	if s.Cols <= 0 || s.Rows <= 0 {
		return fmt.Errorf("atlas size %dx%d: must be positive", s.Cols, s.Rows)
	}

	seen := make(map[[2]int]string, len(s.Tiles))
	for _, t := range s.Tiles {
		if t.Col < 0 || t.Row < 0 || t.Col >= s.Cols || t.Row >= s.Rows {
			return fmt.Errorf("tile %q at (%d,%d) outside %dx%d sheet: %w",
				t.Name, t.Col, t.Row, s.Cols, s.Rows, ErrBadTile)
		}
		addr := [2]int{t.Col, t.Row}
		if other, dup := seen[addr]; dup {
			return fmt.Errorf("tile %q at (%d,%d) overlaps %q: %w", t.Name, t.Col, t.Row, other, ErrBadTile)
		}
		seen[addr] = t.Name

		if len(t.Pixels) != core.TileSize {
			return fmt.Errorf("tile %q has %d rows, want %d: %w", t.Name, len(t.Pixels), core.TileSize, ErrBadTile)
		}
		for y, row := range t.Pixels {
			if len(row) != core.TileSize {
				return fmt.Errorf("tile %q row %d has %d pixels, want %d: %w",
					t.Name, y, len(row), core.TileSize, ErrBadTile)
			}
			for x := 0; x < len(row); x++ {
				if _, ok := decodePixel(row[x]); !ok {
					return fmt.Errorf("tile %q pixel (%d,%d) = %q: %w", t.Name, x, y, row[x], ErrBadTile)
				}
			}
		}
	}

	for _, name := range Required {
		if _, ok := s.Tile(name); !ok {
			return fmt.Errorf("missing required tile %q", name)
		}
	}
	return nil
}

// Build validates the sheet and rasterizes it into an indexed atlas.
func (s Sheet) Build() (*core.Atlas, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	w, h := s.Cols*core.TileSize, s.Rows*core.TileSize
	pix := make([]core.ColorIndex, w*h)
	for i := range pix {
		pix[i] = core.Transparent
	}

	for _, t := range s.Tiles {
		ox, oy := t.Col*core.TileSize, t.Row*core.TileSize
		for y, row := range t.Pixels {
			for x := 0; x < len(row); x++ {
				c, _ := decodePixel(row[x])
				pix[(oy+y)*w+ox+x] = c
			}
		}
	}

	return core.NewAtlas(w, h, pix), nil
}

func decodePixel(ch byte) (core.ColorIndex, bool) {
	switch {
	case ch == '.':
		return core.Transparent, true
	case ch >= '0' && ch <= '3':
		return core.ColorIndex(ch - '0'), true
	default:
		return 0, false
	}
}
