// Package levels provides the level table: descriptors, the character to
// spawn-kind lookup, YAML loading, content validation and a solvability
// checker. The game package depends on levels but not the other way around.
package levels

import "github.com/vovakirdan/gb11/internal/core"

// Limits of the title card.
const (
	MaxTitleLines = 6
	MaxTitleWidth = core.TilesW
)

// Descriptor is one immutable level definition. Map rows are read top to
// bottom; each character is one tile.
type Descriptor struct {
	Name    string
	OriginX int // leftmost column, in tiles
	OriginY int // top row, in tiles
	Map     []string
	Title   []string
}

// Width returns the map width in tiles.
func (d Descriptor) Width() int {
	if len(d.Map) == 0 {
		return 0
	}
	return len(d.Map[0])
}

// Height returns the map height in tiles.
func (d Descriptor) Height() int {
	return len(d.Map)
}

// Bounds returns the initial level boundary in pixels.
func (d Descriptor) Bounds() core.Rect {
	return core.NewRect(
		d.OriginX*core.TileSize,
		d.OriginY*core.TileSize,
		d.Width()*core.TileSize,
		d.Height()*core.TileSize,
	)
}

// Each calls fn for every non-empty tile of the map with its top-left
// position in screen pixels.
func (d Descriptor) Each(fn func(x, y int, s Spawn)) {
	for row, line := range d.Map {
		for col := 0; col < len(line); col++ {
			s := Lookup(line[col])
			if s.Kind == SpawnEmpty {
				continue
			}
			fn((d.OriginX+col)*core.TileSize, (d.OriginY+row)*core.TileSize, s)
		}
	}
}
