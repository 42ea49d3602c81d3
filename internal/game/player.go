package game

import "github.com/vovakirdan/gb11/internal/core"

// player is the walking character. While idle X and Y are tile aligned
// and equal the target cell.
type player struct {
	X, Y   float32
	NX, NY int
	Dir    core.Dir
}

func newPlayer(x, y int) player {
	return player{X: float32(x), Y: float32(y), NX: x, NY: y, Dir: core.DirRight}
}

// arrived reports whether the player has crossed the target by more than
// one pixel in the walking direction.
func (p player) arrived() bool {
	switch p.Dir {
	case core.DirUp:
		return p.Y < float32(p.NY-1)
	case core.DirLeft:
		return p.X < float32(p.NX-1)
	case core.DirDown:
		return p.Y > float32(p.NY+1)
	default:
		return p.X > float32(p.NX+1)
	}
}

func (p *player) advance(delta float32) {
	dx, dy := p.Dir.Delta()
	p.X += delta * float32(dx)
	p.Y += delta * float32(dy)
}

func (p *player) snap() {
	p.X, p.Y = float32(p.NX), float32(p.NY)
}

// directionButtons is the order directions are checked each frame.
var directionButtons = [...]struct {
	button core.Button
	dir    core.Dir
}{
	{core.ButtonUp, core.DirUp},
	{core.ButtonLeft, core.DirLeft},
	{core.ButtonDown, core.DirDown},
	{core.ButtonRight, core.DirRight},
}

// updateIdle handles input while the player stands on a tile.
func (g *Game) updateIdle(in *core.Latch) {
	if in.Clicked(core.ButtonB) {
		g.log.Info("level reset", "level", g.level)
		g.resetLevel()
		return
	}
	for _, d := range directionButtons {
		if in.Clicked(d.button) {
			g.tryMove(d.dir)
			return
		}
	}
}

// tryMove starts walking toward dir if the neighbouring tile is inside the
// boundary and is not a locked door.
func (g *Game) tryMove(dir core.Dir) bool {
	dx, dy := dir.Delta()
	nx := int(g.player.X) + dx*core.TileSize
	ny := int(g.player.Y) + dy*core.TileSize

	if !core.TileRect(nx, ny).Intersects(g.bounds.Rect()) {
		g.log.Debug("move blocked", "dir", dir, "x", nx, "y", ny)
		return false
	}
	if g.door.at(nx, ny) && !g.key.Collected {
		g.log.Debug("door locked", "level", g.level)
		return false
	}

	g.player.NX, g.player.NY = nx, ny
	g.player.Dir = dir
	g.bounds.shrink(dir, g.cfg.Game.PlayerSpeed)
	g.mode = ModeWalking
	return true
}

// updateWalk advances a move in progress and applies arrival effects.
func (g *Game) updateWalk(dt float32) {
	if !g.player.arrived() {
		g.player.advance(g.cfg.Game.PlayerSpeed * dt)
		g.bounds.step(dt)
		return
	}

	g.player.snap()
	g.bounds.commit()
	g.mode = ModeIdle
	g.moves++

	x, y := g.player.NX, g.player.NY
	switch {
	case !g.key.Collected && g.key.at(x, y):
		g.key.Collected = true
		g.log.Info("key collected", "level", g.level)
	case g.key.Collected && g.door.at(x, y):
		g.log.Info("door reached", "level", g.level, "moves", g.moves)
		g.startEnd()
		return
	}

	if a, ok := g.arrows.collectAt(x, y); ok {
		g.log.Info("arrow collected", "level", g.level, "dir", a.Dir)
		g.bounds.requestGrow(a.Dir)
		if g.bounds.startGrowth(g.cfg.Game.GrowSpeed) {
			g.mode = ModeGrowing
		}
	}
}

// updateGrowth runs the boundary growth. Input is ignored meanwhile.
func (g *Game) updateGrowth(dt float32) {
	if g.bounds.stepGrowth(dt, g.cfg.Game.GrowSpeed) {
		g.mode = ModeIdle
	}
}
