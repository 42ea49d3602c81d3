package game

import (
	"strings"

	"github.com/vovakirdan/gb11/internal/core"
	"github.com/vovakirdan/gb11/internal/levels"
)

// Atlas addresses of the sprites, as (col, row).
var (
	playerTiles = map[core.Dir][2]int{
		core.DirUp:    {0, 0},
		core.DirLeft:  {1, 0},
		core.DirRight: {2, 0},
		core.DirDown:  {3, 0},
	}
	arrowTiles = map[core.Dir][2]int{
		core.DirUp:    {0, 2},
		core.DirLeft:  {1, 2},
		core.DirRight: {2, 2},
		core.DirDown:  {3, 2},
	}
	doorClosedTile = [2]int{0, 1}
	doorOpenTile   = [2]int{1, 1}
	keyTile        = [2]int{2, 1}
)

// endingCard is shown after the last level.
var endingCard = []string{"THE END", "", "THANKS FOR PLAYING"}

// Draw paints the current frame. Drawing bounds are reset first, so
// nothing set by a previous frame leaks into this one.
func (g *Game) Draw(s *core.Screen) {
	s.ResetDrawingBounds()
	s.UsePalette(&g.palette)
	s.LineBreaks = g.cfg.Text.LineBreaks

	if g.showsCard() {
		g.drawCard(s)
		return
	}
	g.drawScene(s)
}

// showsCard reports whether the title card is on screen rather than the
// level: before the level is entered and after it has been left.
func (g *Game) showsCard() bool {
	switch g.mode {
	case ModeTransitionBegin:
		return g.begin.waiting || g.begin.phase == fadeOut
	case ModeTransitionEnd:
		return g.end.phase == fadeIn
	case ModeFinished:
		return true
	default:
		return false
	}
}

func (g *Game) drawScene(s *core.Screen) {
	s.Clear(core.Black)

	floor := g.bounds.Rect()
	s.DrawRect(floor, core.DarkGrey)

	s.SetDrawingBounds(floor)
	if g.key.Collected {
		drawTile(s, g.door.X, g.door.Y, doorOpenTile)
	} else {
		drawTile(s, g.door.X, g.door.Y, doorClosedTile)
		drawTile(s, g.key.X, g.key.Y, keyTile)
	}
	for _, a := range g.arrows.items {
		if !a.Collected {
			drawTile(s, a.X, a.Y, arrowTiles[a.Dir])
		}
	}
	drawTile(s, int(g.player.X), int(g.player.Y), playerTiles[g.player.Dir])
	s.ResetDrawingBounds()

	s.DrawText(0, 0, "%d-%d", g.level+1, g.table.Len())
}

func (g *Game) drawCard(s *core.Screen) {
	s.Clear(core.Black)

	lines := endingCard
	if !g.finished {
		lines = g.table.Level(g.level).Title
	}
	drawCentered(s, lines)

	if g.mode == ModeFinished || (g.mode == ModeTransitionBegin && g.begin.waiting) {
		s.DrawText(centerX(len("PRESS START")), core.ScreenH-3*core.TileSize, "PRESS START")
	}
}

// drawCentered lays out lines centred on the screen, one tile row each.
// With line breaks on the card is a single text block whose lines are
// indented with spaces; otherwise every line is drawn on its own.
func drawCentered(s *core.Screen, lines []string) {
	y := (core.ScreenH - len(lines)*core.TileSize) / 2
	y -= y % core.TileSize

	if !s.LineBreaks {
		for _, line := range lines {
			s.DrawText(centerX(len(line)), y, "%s", line)
			y += core.TileSize
		}
		return
	}

	x := centerX(s.TextWidth(strings.Join(lines, "\n")) / core.TileSize)
	indented := make([]string, len(lines))
	for i, line := range lines {
		indented[i] = strings.Repeat(" ", (centerX(len(line))-x)/core.TileSize) + line
	}
	s.DrawText(x, y, "%s", strings.Join(indented, "\n"))
}

// centerX returns the tile-aligned x that centres n characters.
func centerX(n int) int {
	return (core.TilesW - min(n, levels.MaxTitleWidth)) / 2 * core.TileSize
}

func drawTile(s *core.Screen, x, y int, tile [2]int) {
	s.DrawTile(x, y, tile[0], tile[1])
}
