package core

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a packed 0xRRGGBB color value.
type RGB uint32

// R returns the red channel.
func (c RGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c RGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c RGB) B() uint8 { return uint8(c) }

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB(v), nil
}

// ColorIndex addresses a palette slot. Index 0 is the lightest shade.
type ColorIndex uint8

const (
	White ColorIndex = iota
	LightGrey
	DarkGrey
	Black
	Transparent
)

// PaletteSize is the number of displayable slots.
const PaletteSize = 4

// DefaultColors are the four greens of a classic handheld LCD.
var DefaultColors = [PaletteSize]RGB{0x9bbc0f, 0x8bac0f, 0x306230, 0x0f380f}

// Palette maps color indices to colors. Working is what the rasterizer
// draws with; Reference holds the true colors and never changes.
// Outside of a fade the two are equal.
type Palette struct {
	Working   [PaletteSize]RGB
	Reference [PaletteSize]RGB
}

// NewPalette creates a palette whose working colors equal the reference.
func NewPalette(colors [PaletteSize]RGB) Palette {
	return Palette{Working: colors, Reference: colors}
}

// Color resolves an index with the working colors.
// Out-of-range indices resolve to the darkest shade.
func (p *Palette) Color(i ColorIndex) RGB {
	if int(i) >= PaletteSize {
		return p.Working[PaletteSize-1]
	}
	return p.Working[i]
}

// Restore resets the working colors to the reference.
func (p *Palette) Restore() {
	p.Working = p.Reference
}

// FadeOutStep shifts every slot one step toward black. The first step from
// the reference gives slot[n] = reference[n+1]; a wave runs from the
// lightest slot to the darkest. Returns true once the lightest slot shows
// the reference black.
func (p *Palette) FadeOutStep() bool {
	for n := 0; n < PaletteSize-1; n++ {
		p.Working[n] = p.Working[n+1]
	}
	p.Working[PaletteSize-1] = p.Reference[Black]
	return p.Working[White] == p.Reference[Black]
}

// FadeInStep is the reverse cascade of FadeOutStep: slots shift toward the
// dark end and the lightest slot gains one shade. Returns true once the
// lightest slot shows the reference white, at which point the working
// colors are snapped to the reference.
func (p *Palette) FadeInStep() bool {
	for n := PaletteSize - 1; n > 0; n-- {
		p.Working[n] = p.Working[n-1]
	}
	p.Working[White] = p.lighter(p.Working[White])
	if p.Working[White] == p.Reference[White] {
		p.Restore()
		return true
	}
	return false
}

// lighter returns the reference shade one step lighter than c.
func (p *Palette) lighter(c RGB) RGB {
	for i := PaletteSize - 1; i > 0; i-- {
		if p.Reference[i] == c {
			return p.Reference[i-1]
		}
	}
	return p.Reference[White]
}
