package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gb11/internal/core"
)

// halfBlock draws the upper pixel of a cell in the foreground color and the
// lower pixel in the background color.
const halfBlock = '▀'

// cellColors is the pixel pair covered by one terminal cell.
type cellColors struct {
	top, bottom core.RGB
}

// styleCache maps a pixel pair to its lipgloss style.
type styleCache map[cellColors]lipgloss.Style

func (c styleCache) get(cc cellColors) lipgloss.Style {
	if st, ok := c[cc]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(cc.top.Hex())).
		Background(lipgloss.Color(cc.bottom.Hex()))
	c[cc] = st
	return st
}

// CellSize returns the terminal size needed to show a screen of w by h pixels.
func CellSize(w, h int) (cols, rows int) {
	return w, (h + 1) / 2
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each terminal cell shows two vertically stacked pixels. Adjacent cells with
// the same pair are grouped to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, make(styleCache, 16))
}

func renderScreen(s *core.Screen, styles styleCache) string {
	cols, rows := CellSize(s.Width(), s.Height())
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(cols*rows*4 + rows)

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < cols {
			start := cellAt(s, x, row)

			// Collect consecutive cells with the same pair
			n := 0
			for x < cols && cellAt(s, x, row) == start {
				n++
				x++
			}
			sb.WriteString(styles.get(start).Render(strings.Repeat(string(halfBlock), n)))
		}
	}
	return sb.String()
}

// cellAt returns the pixel pair for the cell at column x and text row row.
// An odd last pixel row repeats itself as the lower half.
func cellAt(s *core.Screen, x, row int) cellColors {
	y := row * 2
	top := s.At(x, y)
	if y+1 >= s.Height() {
		return cellColors{top, top}
	}
	return cellColors{top, s.At(x, y+1)}
}
