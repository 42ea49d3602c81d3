package atlas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/vovakirdan/gb11/internal/core"
	"golang.org/x/image/draw"
)

// Image renders the atlas with the palette's working colors.
// Transparent pixels get zero alpha.
func Image(a *core.Atlas, pal *core.Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, a.Width(), a.Height()))
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			idx := a.At(x, y)
			if idx >= core.Transparent {
				continue
			}
			c := pal.Color(idx)
			img.SetNRGBA(x, y, color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xff})
		}
	}
	return img
}

// Scale enlarges an image by an integer factor without smoothing.
func Scale(src image.Image, factor int) image.Image {
	if factor <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// WritePNG encodes the atlas as a PNG scaled by factor.
func WritePNG(w io.Writer, a *core.Atlas, pal *core.Palette, factor int) error {
	if err := png.Encode(w, Scale(Image(a, pal), factor)); err != nil {
		return fmt.Errorf("encoding atlas png: %w", err)
	}
	return nil
}
