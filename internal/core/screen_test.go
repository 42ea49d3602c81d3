package core

import "testing"

// testAtlas builds a 16x16-tile atlas where every tile is transparent
// except the ones listed, which are filled solid with the given color.
func testAtlas(solid map[Glyph]ColorIndex) *Atlas {
	w, h := 16*TileSize, 16*TileSize
	pix := make([]ColorIndex, w*h)
	for i := range pix {
		pix[i] = Transparent
	}
	for g, c := range solid {
		for y := 0; y < TileSize; y++ {
			for x := 0; x < TileSize; x++ {
				pix[(g.Row*TileSize+y)*w+g.Col*TileSize+x] = c
			}
		}
	}
	return NewAtlas(w, h, pix)
}

func countColor(s *Screen, c RGB) int {
	n := 0
	for _, p := range s.Pixels() {
		if p == c {
			n++
		}
	}
	return n
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(ScreenW, ScreenH, nil)

	if s.Width() != ScreenW || s.Height() != ScreenH {
		t.Errorf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), ScreenW, ScreenH)
	}
	if len(s.Pixels()) != ScreenW*ScreenH {
		t.Errorf("len(Pixels()) = %d", len(s.Pixels()))
	}
	if s.DrawingBounds() != (Rect{MaxX: ScreenW, MaxY: ScreenH}) {
		t.Errorf("initial bounds = %+v", s.DrawingBounds())
	}
}

func TestDrawRectClipping(t *testing.T) {
	s := NewScreen(ScreenW, ScreenH, nil)
	pal := NewPalette(DefaultColors)
	s.UsePalette(&pal)
	s.Clear(White)

	s.SetDrawingBounds(NewRect(10, 10, 20, 20))
	s.DrawRect(NewRect(0, 0, 100, 100), Black)

	if got := countColor(s, DefaultColors[Black]); got != 400 {
		t.Errorf("filled %d pixels, expected 400", got)
	}
	if s.At(9, 10) != DefaultColors[White] || s.At(30, 10) != DefaultColors[White] {
		t.Error("pixels outside the bounds were written")
	}
	if s.At(10, 10) != DefaultColors[Black] || s.At(29, 29) != DefaultColors[Black] {
		t.Error("pixels inside the bounds were not written")
	}

	// Clear ignores the bounds.
	s.Clear(LightGrey)
	if got := countColor(s, DefaultColors[LightGrey]); got != ScreenW*ScreenH {
		t.Errorf("Clear filled %d pixels", got)
	}
}

func TestDrawingBoundsClamp(t *testing.T) {
	s := NewScreen(ScreenW, ScreenH, nil)
	s.SetDrawingBounds(Rect{MinX: -50, MinY: -8, MaxX: 500, MaxY: 300})

	want := Rect{MaxX: ScreenW, MaxY: ScreenH}
	if s.DrawingBounds() != want {
		t.Errorf("bounds = %+v, expected %+v", s.DrawingBounds(), want)
	}
}

func TestDrawOutOfBoundsIsSafe(t *testing.T) {
	s := NewScreen(ScreenW, ScreenH, testAtlas(map[Glyph]ColorIndex{{0, 0}: Black}))
	s.Clear(White)

	// None of these may panic.
	s.DrawRect(NewRect(-100, -100, 50, 50), Black)
	s.DrawRect(NewRect(ScreenW-4, ScreenH-4, 50, 50), Black)
	s.DrawTile(-4, -4, 0, 0)
	s.DrawTile(ScreenW-4, ScreenH-4, 0, 0)
	s.DrawTile(ScreenW+100, 0, 0, 0)
	s.DrawTile(0, 0, 99, 99)
	s.DrawText(ScreenW-8, ScreenH-8, "ABCDEFGHIJ")

	s.SetDrawingBounds(Rect{MinX: 40, MinY: 40, MaxX: 20, MaxY: 20})
	s.DrawRect(NewRect(0, 0, ScreenW, ScreenH), LightGrey)
	if countColor(s, DefaultColors[LightGrey]) != 0 {
		t.Error("inverted bounds should draw nothing")
	}
}

func TestDrawTileTransparency(t *testing.T) {
	pix := make([]ColorIndex, TileSize*TileSize)
	for i := range pix {
		if i%2 == 0 {
			pix[i] = Black
		} else {
			pix[i] = Transparent
		}
	}
	s := NewScreen(ScreenW, ScreenH, NewAtlas(TileSize, TileSize, pix))
	s.Clear(White)
	s.DrawTile(16, 16, 0, 0)

	if got := countColor(s, DefaultColors[Black]); got != 32 {
		t.Errorf("drew %d opaque pixels, expected 32", got)
	}
	if s.At(17, 16) != DefaultColors[White] {
		t.Error("transparent pixel overwrote the background")
	}
}

func TestDrawTileClipped(t *testing.T) {
	s := NewScreen(ScreenW, ScreenH, testAtlas(map[Glyph]ColorIndex{{1, 0}: DarkGrey}))
	s.Clear(White)
	s.SetDrawingBounds(NewRect(0, 0, 20, 20))
	s.DrawTile(16, 16, 1, 0)

	if got := countColor(s, DefaultColors[DarkGrey]); got != 16 {
		t.Errorf("drew %d pixels, expected 16", got)
	}
}

func TestDrawText(t *testing.T) {
	a, _ := GlyphFor('A')
	b, _ := GlyphFor('B')
	s := NewScreen(ScreenW, ScreenH, testAtlas(map[Glyph]ColorIndex{
		a:                Black,
		b:                DarkGrey,
		PlaceholderGlyph: LightGrey,
	}))

	t.Run("lowercase folds and space advances", func(t *testing.T) {
		s.Clear(White)
		s.DrawText(0, 0, "a b")
		if s.At(0, 0) != DefaultColors[Black] {
			t.Error("'a' should draw the 'A' glyph")
		}
		if s.At(8, 0) != DefaultColors[White] {
			t.Error("space should draw nothing")
		}
		if s.At(16, 0) != DefaultColors[DarkGrey] {
			t.Error("'b' should land two tiles right")
		}
	})

	t.Run("line breaks", func(t *testing.T) {
		s.Clear(White)
		s.LineBreaks = true
		s.DrawText(8, 8, "A\nB")
		if s.At(8, 8) != DefaultColors[Black] || s.At(8, 16) != DefaultColors[DarkGrey] {
			t.Error("newline should wrap to the origin column one tile down")
		}
	})

	t.Run("newline as placeholder", func(t *testing.T) {
		s.Clear(White)
		s.LineBreaks = false
		s.DrawText(0, 0, "A\nB")
		if s.At(8, 0) != DefaultColors[LightGrey] {
			t.Error("newline should render the placeholder glyph")
		}
		if s.At(16, 0) != DefaultColors[DarkGrey] {
			t.Error("text should continue on the same row")
		}
	})

	t.Run("format args", func(t *testing.T) {
		s.Clear(White)
		s.DrawText(0, 0, "%s%s", "B", "A")
		if s.At(0, 0) != DefaultColors[DarkGrey] || s.At(8, 0) != DefaultColors[Black] {
			t.Error("formatted text drawn incorrectly")
		}
	})
}

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		r    rune
		want Glyph
		ok   bool
	}{
		{'A', Glyph{0, 13}, true},
		{'p', Glyph{15, 13}, true},
		{'Q', Glyph{0, 14}, true},
		{'Z', Glyph{9, 14}, true},
		{'0', Glyph{0, 15}, true},
		{'9', Glyph{9, 15}, true},
		{'?', Glyph{14, 14}, true},
		{' ', Glyph{}, false},
		{'#', PlaceholderGlyph, true},
	}

	for _, tc := range tests {
		got, ok := GlyphFor(tc.r)
		if got != tc.want || ok != tc.ok {
			t.Errorf("GlyphFor(%q) = %v, %v; expected %v, %v", tc.r, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRGBA(t *testing.T) {
	s := NewScreen(2, 1, nil)
	s.Clear(White)

	buf := s.RGBA(nil)
	want := []byte{0x9b, 0xbc, 0x0f, 0xff, 0x9b, 0xbc, 0x0f, 0xff}
	if string(buf) != string(want) {
		t.Errorf("RGBA() = %x, expected %x", buf, want)
	}

	img := s.Image()
	if img.Bounds().Dx() != 2 || img.Pix[3] != 0xff {
		t.Errorf("Image() = %v", img.Bounds())
	}
}
