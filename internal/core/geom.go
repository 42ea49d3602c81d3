// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Screen geometry of a handheld-style display.
const (
	ScreenW  = 160
	ScreenH  = 144
	TileSize = 8
	TilesW   = ScreenW / TileSize
	TilesH   = ScreenH / TileSize
)

// Rect is an axis-aligned rectangle in pixels.
// The max edges are exclusive.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// NewRect creates a rectangle from a top-left corner and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// TileRect returns the rectangle covered by the tile whose top-left pixel is (x, y).
func TileRect(x, y int) Rect {
	return NewRect(x, y, TileSize, TileSize)
}

// Intersects returns true if this rectangle strictly overlaps another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.MaxX > other.MinX && r.MinX < other.MaxX &&
		r.MaxY > other.MinY && r.MinY < other.MaxY
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// RectF is a rectangle with fractional edges, used while edges animate.
type RectF struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// RectFOf converts an integer rectangle.
func RectFOf(r Rect) RectF {
	return RectF{
		MinX: float32(r.MinX),
		MinY: float32(r.MinY),
		MaxX: float32(r.MaxX),
		MaxY: float32(r.MaxY),
	}
}

// Rect truncates the edges toward zero.
func (r RectF) Rect() Rect {
	return Rect{
		MinX: int(r.MinX),
		MinY: int(r.MinY),
		MaxX: int(r.MaxX),
		MaxY: int(r.MaxY),
	}
}

// Dir is one of the four cardinal directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirLeft
	DirRight
	DirDown
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	default:
		return d
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float32 value to be within [min, max].
func ClampF(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
