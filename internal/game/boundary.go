package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/vovakirdan/gb11/internal/core"
)

// side names one edge of the level boundary.
type side uint8

const (
	sideMinX side = iota
	sideMinY
	sideMaxX
	sideMaxY
)

func (s side) get(r core.RectF) float32 {
	switch s {
	case sideMinX:
		return r.MinX
	case sideMinY:
		return r.MinY
	case sideMaxX:
		return r.MaxX
	default:
		return r.MaxY
	}
}

func (s side) set(r *core.RectF, v float32) {
	switch s {
	case sideMinX:
		r.MinX = v
	case sideMinY:
		r.MinY = v
	case sideMaxX:
		r.MaxX = v
	default:
		r.MaxY = v
	}
}

func (s side) getInt(r core.Rect) int {
	switch s {
	case sideMinX:
		return r.MinX
	case sideMinY:
		return r.MinY
	case sideMaxX:
		return r.MaxX
	default:
		return r.MaxY
	}
}

func (s side) setInt(r *core.Rect, v int) {
	switch s {
	case sideMinX:
		r.MinX = v
	case sideMinY:
		r.MinY = v
	case sideMaxX:
		r.MaxX = v
	default:
		r.MaxY = v
	}
}

// trailingSide is the edge left behind by a move in dir.
func trailingSide(dir core.Dir) side {
	switch dir {
	case core.DirRight:
		return sideMinX
	case core.DirLeft:
		return sideMaxX
	case core.DirDown:
		return sideMinY
	default:
		return sideMaxY
	}
}

// growSide is the edge an arrow pointing in dir pushes outward.
func growSide(dir core.Dir) side {
	switch dir {
	case core.DirRight:
		return sideMaxX
	case core.DirLeft:
		return sideMinX
	case core.DirUp:
		return sideMinY
	default:
		return sideMaxY
	}
}

// boundary is the walkable area of the level. Edges only ever move by
// whole tiles; rect animates toward target one edge at a time.
type boundary struct {
	rect   core.RectF
	target core.Rect

	edge  side
	tween *gween.Tween

	growing bool
	queue   []core.Dir
}

func newBoundary(r core.Rect) boundary {
	return boundary{rect: core.RectFOf(r), target: r}
}

// Rect returns the animated boundary truncated to whole pixels.
func (b *boundary) Rect() core.Rect {
	return b.rect.Rect()
}

// animate starts a linear tween of one edge from its current value to v.
func (b *boundary) animate(s side, v int, speed float32) {
	s.setInt(&b.target, v)
	from := s.get(b.rect)
	dist := float32(v) - from
	if dist < 0 {
		dist = -dist
	}
	b.edge = s
	b.tween = gween.New(from, float32(v), dist/speed, ease.Linear)
}

// step advances the active tween. It reports true when the edge has
// reached its target, or when nothing is animating.
func (b *boundary) step(dt float32) bool {
	if b.tween == nil {
		return true
	}
	v, done := b.tween.Update(dt)
	b.edge.set(&b.rect, v)
	if done {
		b.tween = nil
	}
	return done
}

// shrink moves the edge trailing a move in dir inward by one tile.
func (b *boundary) shrink(dir core.Dir, speed float32) {
	s := trailingSide(dir)
	v := s.getInt(b.target)
	switch s {
	case sideMinX, sideMinY:
		v += core.TileSize
	default:
		v -= core.TileSize
	}
	b.animate(s, v, speed)
}

// commit snaps every edge to the target.
func (b *boundary) commit() {
	b.rect = core.RectFOf(b.target)
	b.tween = nil
}

// requestGrow queues a one-tile growth toward dir.
func (b *boundary) requestGrow(dir core.Dir) {
	b.queue = append(b.queue, dir)
}

// startGrowth pops queued growths until one actually moves an edge.
// Growth is clamped to the screen, so a request at the screen border is
// dropped. It reports whether a growth is now in flight.
func (b *boundary) startGrowth(speed float32) bool {
	for len(b.queue) > 0 {
		dir := b.queue[0]
		b.queue = b.queue[1:]

		s := growSide(dir)
		cur := s.getInt(b.target)
		var v int
		switch s {
		case sideMinX:
			v = max(cur-core.TileSize, 0)
		case sideMinY:
			v = max(cur-core.TileSize, 0)
		case sideMaxX:
			v = min(cur+core.TileSize, core.ScreenW)
		default:
			v = min(cur+core.TileSize, core.ScreenH)
		}
		if v == cur {
			continue
		}
		b.animate(s, v, speed)
		b.growing = true
		return true
	}
	b.growing = false
	return false
}

// stepGrowth advances the growth in flight and starts the next queued one
// when it completes. It reports true once no growth remains.
func (b *boundary) stepGrowth(dt float32, speed float32) bool {
	if !b.growing {
		return true
	}
	if !b.step(dt) {
		return false
	}
	b.commit()
	return !b.startGrowth(speed)
}
