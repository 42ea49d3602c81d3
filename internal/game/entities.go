package game

import "github.com/vovakirdan/gb11/internal/core"

// marker is a single-cell entity such as the door or the key.
type marker struct {
	X, Y      int
	Collected bool
}

func (m marker) at(x, y int) bool {
	return m.X == x && m.Y == y
}

// arrow grows the boundary toward Dir when collected.
type arrow struct {
	X, Y      int
	Dir       core.Dir
	Collected bool
}

// arrowSet is a bounded collection of arrows.
type arrowSet struct {
	items    []arrow
	capacity int
}

func newArrowSet(capacity int) arrowSet {
	return arrowSet{items: make([]arrow, 0, capacity), capacity: capacity}
}

// add appends an arrow. Arrows beyond capacity are dropped and add
// returns false.
func (s *arrowSet) add(x, y int, dir core.Dir) bool {
	if len(s.items) >= s.capacity {
		return false
	}
	s.items = append(s.items, arrow{X: x, Y: y, Dir: dir})
	return true
}

func (s *arrowSet) reset() {
	s.items = s.items[:0]
}

// collectAt marks the first uncollected arrow at (x, y) as collected.
func (s *arrowSet) collectAt(x, y int) (arrow, bool) {
	for i := range s.items {
		a := &s.items[i]
		if a.Collected || a.X != x || a.Y != y {
			continue
		}
		a.Collected = true
		return *a, true
	}
	return arrow{}, false
}

func (s *arrowSet) collected() int {
	n := 0
	for _, a := range s.items {
		if a.Collected {
			n++
		}
	}
	return n
}
