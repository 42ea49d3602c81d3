package core

// Atlas is a read-only table of indexed-color tiles addressed by column and
// row in tile units. Pixels hold palette indices; Transparent marks holes.
type Atlas struct {
	width  int
	height int
	pix    []ColorIndex
}

// NewAtlas wraps an indexed pixel table of the given size in pixels.
// The table is not copied. Width and height must be multiples of TileSize.
func NewAtlas(width, height int, pix []ColorIndex) *Atlas {
	return &Atlas{width: width, height: height, pix: pix}
}

// Width returns the atlas width in pixels.
func (a *Atlas) Width() int {
	return a.width
}

// Height returns the atlas height in pixels.
func (a *Atlas) Height() int {
	return a.height
}

// Cols returns the number of tile columns.
func (a *Atlas) Cols() int {
	return a.width / TileSize
}

// Rows returns the number of tile rows.
func (a *Atlas) Rows() int {
	return a.height / TileSize
}

// At returns the index at atlas pixel (x, y), or Transparent when outside.
func (a *Atlas) At(x, y int) ColorIndex {
	if a == nil || x < 0 || y < 0 || x >= a.width || y >= a.height {
		return Transparent
	}
	return a.pix[y*a.width+x]
}

// HasTile reports whether (col, row) addresses a tile inside the atlas.
func (a *Atlas) HasTile(col, row int) bool {
	return a != nil && col >= 0 && row >= 0 && col < a.Cols() && row < a.Rows()
}
