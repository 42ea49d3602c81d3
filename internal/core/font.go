package core

// Font layout inside the atlas: letters A-P on row 13, Q-Z on row 14
// followed by punctuation, digits on row 15 followed by more punctuation.
const (
	fontRowAtoP   = 13
	fontRowQtoZ   = 14
	fontRowDigits = 15
)

// PlaceholderGlyph is drawn for characters the font does not cover.
var PlaceholderGlyph = Glyph{Col: 13, Row: 15}

// Glyph addresses a font tile in the atlas.
type Glyph struct {
	Col, Row int
}

var punctuation = map[rune]Glyph{
	'.':  {10, 14},
	',':  {11, 14},
	':':  {12, 14},
	';':  {13, 14},
	'?':  {14, 14},
	'!':  {15, 14},
	'-':  {10, 15},
	'(':  {11, 15},
	')':  {12, 15},
	'\'': {14, 15},
	'"':  {15, 15},
}

// GlyphFor maps a character to its font tile. Lowercase letters use the
// uppercase glyphs. The second result is false for a blank (space) and
// the placeholder is returned for anything the font lacks.
func GlyphFor(r rune) (Glyph, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	switch {
	case r == ' ':
		return Glyph{}, false
	case r >= 'A' && r <= 'P':
		return Glyph{Col: int(r - 'A'), Row: fontRowAtoP}, true
	case r >= 'Q' && r <= 'Z':
		return Glyph{Col: int(r - 'Q'), Row: fontRowQtoZ}, true
	case r >= '0' && r <= '9':
		return Glyph{Col: int(r - '0'), Row: fontRowDigits}, true
	}
	if g, ok := punctuation[r]; ok {
		return g, true
	}
	return PlaceholderGlyph, true
}
