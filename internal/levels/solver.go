package levels

import "github.com/vovakirdan/gb11/internal/core"

// DefaultMaxStates bounds the solver search.
const DefaultMaxStates = 1 << 20

// maxSolverArrows is the number of arrows the solver can track.
const maxSolverArrows = 64

// SolveStats describes a solver run.
type SolveStats struct {
	Explored int
}

// cellRect is a boundary in tile units, max edges exclusive.
type cellRect struct {
	minX, minY, maxX, maxY int
}

type solverState struct {
	x, y   int
	bounds cellRect
	hasKey bool
	taken  uint64
}

type solverArrow struct {
	x, y int
	dir  core.Dir
}

// moveOrder is the order directions are tried, matching the input check
// order of the game.
var moveOrder = [...]core.Dir{core.DirUp, core.DirLeft, core.DirDown, core.DirRight}

// Solve searches the discrete move graph of a level breadth-first and
// returns the shortest sequence of moves that reaches the door with the
// key. It models the same rules the game applies once every animation
// has settled: a move must land inside the boundary, the door needs the
// key, the trailing edge shrinks by one tile, and an arrow grows its edge
// by one tile within the screen.
func Solve(d Descriptor, maxStates int) ([]core.Dir, SolveStats, bool) {
	var (
		start        solverState
		doorX, doorY int
		keyX, keyY   int
		arrows       []solverArrow
		stats        SolveStats
	)
	start.bounds = cellRect{d.OriginX, d.OriginY, d.OriginX + d.Width(), d.OriginY + d.Height()}
	d.Each(func(px, py int, s Spawn) {
		x, y := px/core.TileSize, py/core.TileSize
		switch s.Kind {
		case SpawnPlayer:
			start.x, start.y = x, y
		case SpawnDoor:
			doorX, doorY = x, y
		case SpawnKey:
			keyX, keyY = x, y
		case SpawnArrow:
			arrows = append(arrows, solverArrow{x: x, y: y, dir: s.Dir})
		}
	})
	if len(arrows) > maxSolverArrows {
		return nil, stats, false
	}

	type node struct {
		state  solverState
		parent int
		move   core.Dir
	}
	nodes := []node{{state: start, parent: -1}}
	seen := map[solverState]bool{start: true}

	for head := 0; head < len(nodes); head++ {
		if maxStates > 0 && head >= maxStates {
			break
		}
		stats.Explored++
		cur := nodes[head].state

		for _, dir := range moveOrder {
			dx, dy := dir.Delta()
			next := cur
			next.x, next.y = cur.x+dx, cur.y+dy

			b := cur.bounds
			if next.x < b.minX || next.x >= b.maxX || next.y < b.minY || next.y >= b.maxY {
				continue
			}
			atDoor := next.x == doorX && next.y == doorY
			if atDoor && !cur.hasKey {
				continue
			}

			switch dir {
			case core.DirRight:
				next.bounds.minX++
			case core.DirLeft:
				next.bounds.maxX--
			case core.DirDown:
				next.bounds.minY++
			case core.DirUp:
				next.bounds.maxY--
			}

			if !cur.hasKey && next.x == keyX && next.y == keyY {
				next.hasKey = true
			} else if atDoor {
				moves := []core.Dir{dir}
				for n := head; nodes[n].parent >= 0; n = nodes[n].parent {
					moves = append(moves, nodes[n].move)
				}
				for l, r := 0, len(moves)-1; l < r; l, r = l+1, r-1 {
					moves[l], moves[r] = moves[r], moves[l]
				}
				return moves, stats, true
			}

			for i, a := range arrows {
				if a.x != next.x || a.y != next.y || next.taken&(1<<i) != 0 {
					continue
				}
				next.taken |= 1 << i
				next.bounds = growCells(next.bounds, a.dir)
				break
			}

			if seen[next] {
				continue
			}
			seen[next] = true
			nodes = append(nodes, node{state: next, parent: head, move: dir})
		}
	}

	return nil, stats, false
}

func growCells(b cellRect, dir core.Dir) cellRect {
	switch dir {
	case core.DirRight:
		b.maxX = min(b.maxX+1, core.TilesW)
	case core.DirLeft:
		b.minX = max(b.minX-1, 0)
	case core.DirUp:
		b.minY = max(b.minY-1, 0)
	case core.DirDown:
		b.maxY = min(b.maxY+1, core.TilesH)
	}
	return b
}
