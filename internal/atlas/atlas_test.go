package atlas

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/gb11/internal/core"
)

func TestDefaultAtlas(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	if a.Cols() != 16 || a.Rows() != 16 {
		t.Errorf("atlas is %dx%d tiles, expected 16x16", a.Cols(), a.Rows())
	}

	// Every character the font maps must have at least one opaque pixel.
	chars := "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.,:;?!-()'\"#"
	for _, r := range chars {
		g, ok := glyphOpaque(a, r)
		if !ok {
			t.Errorf("glyph for %q at (%d,%d) is blank", r, g.Col, g.Row)
		}
	}
}

// glyphOpaque reports whether the glyph tile for r has any opaque pixel.
func glyphOpaque(a *core.Atlas, r rune) (core.Glyph, bool) {
	g, _ := core.GlyphFor(r)
	for y := 0; y < core.TileSize; y++ {
		for x := 0; x < core.TileSize; x++ {
			if a.At(g.Col*core.TileSize+x, g.Row*core.TileSize+y) != core.Transparent {
				return g, true
			}
		}
	}
	return g, false
}

func TestDefaultSheetHasRequiredTiles(t *testing.T) {
	s, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	for _, name := range Required {
		if _, ok := s.Tile(name); !ok {
			t.Errorf("missing tile %q", name)
		}
	}
}

const validTile = `
  - name: %s
    col: %d
    row: %d
    pixels:
      - "0123...."
      - "........"
      - "........"
      - "........"
      - "........"
      - "........"
      - "........"
      - "........"
`

func TestValidateErrors(t *testing.T) {
	base, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(s *Sheet)
		badTile bool
	}{
		{
			name:    "tile outside sheet",
			mutate:  func(s *Sheet) { s.Tiles[0].Col = 99 },
			badTile: true,
		},
		{
			name:    "short row",
			mutate:  func(s *Sheet) { s.Tiles[0].Pixels[3] = "000" },
			badTile: true,
		},
		{
			name:    "missing row",
			mutate:  func(s *Sheet) { s.Tiles[0].Pixels = s.Tiles[0].Pixels[:7] },
			badTile: true,
		},
		{
			name:    "bad pixel",
			mutate:  func(s *Sheet) { s.Tiles[0].Pixels[0] = "0000000x" },
			badTile: true,
		},
		{
			name: "duplicate address",
			mutate: func(s *Sheet) {
				s.Tiles[1].Col, s.Tiles[1].Row = s.Tiles[0].Col, s.Tiles[0].Row
			},
			badTile: true,
		},
		{
			name:   "missing required tile",
			mutate: func(s *Sheet) { s.Tiles = s.Tiles[1:] },
		},
		{
			name:   "zero size",
			mutate: func(s *Sheet) { s.Cols = 0 },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := cloneSheet(base)
			tc.mutate(&s)
			err := s.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if tc.badTile && !errors.Is(err, ErrBadTile) {
				t.Errorf("error %v should wrap ErrBadTile", err)
			}
		})
	}
}

func cloneSheet(s Sheet) Sheet {
	out := s
	out.Tiles = make([]YAMLTile, len(s.Tiles))
	for i, t := range s.Tiles {
		t.Pixels = append([]string(nil), t.Pixels...)
		out.Tiles[i] = t
	}
	return out
}

func TestBuildDecodesIndices(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("cols: 16\nrows: 16\ntiles:\n")
	for _, name := range Required {
		sb.WriteString(strings.NewReplacer("%s", name, "%d", "0").Replace(validTile))
	}
	// Give each required tile its own address.
	s, err := Parse([]byte(sb.String()))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	for i := range s.Tiles {
		s.Tiles[i].Col = i
	}

	a, err := s.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want := []core.ColorIndex{core.White, core.LightGrey, core.DarkGrey, core.Black, core.Transparent}
	for x, c := range want {
		if got := a.At(core.TileSize*2+x, 0); got != c {
			t.Errorf("pixel %d = %d, expected %d", x, got, c)
		}
	}
	if got := a.At(0, core.TileSize*5); got != core.Transparent {
		t.Errorf("unlisted tile pixel = %d, expected transparent", got)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atlas.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err != nil {
		t.Errorf("Load(%s) error: %v", path, err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestWritePNG(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	pal := core.NewPalette(core.DefaultColors)

	var buf bytes.Buffer
	if err := WritePNG(&buf, a, &pal, 2); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if img.Bounds().Dx() != a.Width()*2 || img.Bounds().Dy() != a.Height()*2 {
		t.Errorf("png is %v, expected %dx%d", img.Bounds(), a.Width()*2, a.Height()*2)
	}
}
