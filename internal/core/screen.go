package core

import (
	"fmt"
	"image"
)

// maxTextLen caps the formatted length of a single DrawText call.
const maxTextLen = 128

// Screen is the off-screen framebuffer and the software rasterizer that
// paints it. Draw calls resolve color indices through the palette in use
// and clip against the drawing bounds; the bounds stay in effect until
// ResetDrawingBounds is called.
type Screen struct {
	width  int
	height int
	pix    []RGB

	atlas   *Atlas
	palette *Palette
	bounds  Rect

	// LineBreaks makes DrawText honor '\n' by moving to the next tile row.
	LineBreaks bool
}

// NewScreen creates a framebuffer that draws tiles from the given atlas.
func NewScreen(width, height int, atlas *Atlas) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
		atlas:  atlas,
	}
	defaultPalette := NewPalette(DefaultColors)
	s.palette = &defaultPalette
	s.ResetDrawingBounds()
	return s
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// UsePalette selects the palette subsequent draw calls resolve colors with.
func (s *Screen) UsePalette(p *Palette) {
	if p != nil {
		s.palette = p
	}
}

// SetDrawingBounds restricts drawing to r, clamped to the screen.
func (s *Screen) SetDrawingBounds(r Rect) {
	s.bounds = Rect{
		MinX: Clamp(r.MinX, 0, s.width),
		MinY: Clamp(r.MinY, 0, s.height),
		MaxX: Clamp(r.MaxX, 0, s.width),
		MaxY: Clamp(r.MaxY, 0, s.height),
	}
}

// ResetDrawingBounds makes the whole screen drawable again.
func (s *Screen) ResetDrawingBounds() {
	s.bounds = Rect{MaxX: s.width, MaxY: s.height}
}

// DrawingBounds returns the current clip rectangle.
func (s *Screen) DrawingBounds() Rect {
	return s.bounds
}

// Clear fills the entire screen, ignoring the drawing bounds.
func (s *Screen) Clear(c ColorIndex) {
	rgb := s.palette.Color(c)
	for i := range s.pix {
		s.pix[i] = rgb
	}
}

// DrawRect fills r with a color, skipping pixels outside the drawing bounds.
func (s *Screen) DrawRect(r Rect, c ColorIndex) {
	if !r.Intersects(s.bounds) {
		return
	}
	rgb := s.palette.Color(c)
	x0, x1 := max(r.MinX, s.bounds.MinX), min(r.MaxX, s.bounds.MaxX)
	y0, y1 := max(r.MinY, s.bounds.MinY), min(r.MaxY, s.bounds.MaxY)
	for y := y0; y < y1; y++ {
		row := s.pix[y*s.width:]
		for x := x0; x < x1; x++ {
			row[x] = rgb
		}
	}
}

// DrawTile copies the atlas tile at (col, row) to (x, y).
// Transparent pixels leave the screen untouched.
func (s *Screen) DrawTile(x, y, col, row int) {
	if !s.atlas.HasTile(col, row) {
		return
	}
	dst := TileRect(x, y)
	if !dst.Intersects(s.bounds) {
		return
	}
	ax, ay := col*TileSize, row*TileSize
	x0, x1 := max(dst.MinX, s.bounds.MinX), min(dst.MaxX, s.bounds.MaxX)
	y0, y1 := max(dst.MinY, s.bounds.MinY), min(dst.MaxY, s.bounds.MaxY)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c := s.atlas.At(ax+px-x, ay+py-y)
			if c >= Transparent {
				continue
			}
			s.pix[py*s.width+px] = s.palette.Color(c)
		}
	}
}

// DrawText lays out a formatted string one tile per character.
// The formatted text is truncated to 128 bytes.
func (s *Screen) DrawText(x, y int, format string, args ...any) {
	txt := format
	if len(args) > 0 {
		txt = fmt.Sprintf(format, args...)
	}
	if len(txt) > maxTextLen {
		txt = txt[:maxTextLen]
	}

	originX := x
	for _, r := range txt {
		if r == '\n' && s.LineBreaks {
			x = originX
			y += TileSize
			continue
		}
		if g, ok := GlyphFor(r); ok {
			s.DrawTile(x, y, g.Col, g.Row)
		}
		x += TileSize
	}
}

// TextWidth returns the width in pixels of the longest line of txt.
func (s *Screen) TextWidth(txt string) int {
	longest, cur := 0, 0
	for _, r := range txt {
		if r == '\n' && s.LineBreaks {
			cur = 0
			continue
		}
		cur++
		longest = max(longest, cur)
	}
	return longest * TileSize
}

// At returns the color at (x, y), or 0 for out-of-bounds coordinates.
func (s *Screen) At(x, y int) RGB {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.pix[y*s.width+x]
}

// Pixels exposes the framebuffer, row-major. Callers must not retain it
// across frames.
func (s *Screen) Pixels() []RGB {
	return s.pix
}

// RGBA writes the framebuffer as 8-bit RGBA into dst, growing it if needed.
func (s *Screen) RGBA(dst []byte) []byte {
	n := len(s.pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range s.pix {
		dst[i*4+0] = c.R()
		dst[i*4+1] = c.G()
		dst[i*4+2] = c.B()
		dst[i*4+3] = 0xff
	}
	return dst
}

// Image copies the framebuffer into a new image.
func (s *Screen) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	img.Pix = s.RGBA(img.Pix)
	return img
}
