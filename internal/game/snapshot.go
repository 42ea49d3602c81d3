package game

import "github.com/vovakirdan/gb11/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Frame        uint64
	Level        int // 0-indexed
	Mode         Mode
	Moves        int
	PlayerX      float32
	PlayerY      float32
	TargetX      int
	TargetY      int
	Dir          core.Dir
	Bounds       core.RectF
	BoundsTarget core.Rect
	Growing      bool
	GrowthQueue  int
	DoorX        int
	DoorY        int
	KeyX         int
	KeyY         int
	HasKey       bool
	Arrows       int
	ArrowsTaken  int
	BeginPhase   string
	BeginWaiting bool
	EndPhase     string
	Timer        float32
	Palette      [core.PaletteSize]core.RGB
	Finished     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:        g.frame,
		Level:        g.level,
		Mode:         g.mode,
		Moves:        g.moves,
		PlayerX:      g.player.X,
		PlayerY:      g.player.Y,
		TargetX:      g.player.NX,
		TargetY:      g.player.NY,
		Dir:          g.player.Dir,
		Bounds:       g.bounds.rect,
		BoundsTarget: g.bounds.target,
		Growing:      g.bounds.growing,
		GrowthQueue:  len(g.bounds.queue),
		DoorX:        g.door.X,
		DoorY:        g.door.Y,
		KeyX:         g.key.X,
		KeyY:         g.key.Y,
		HasKey:       g.key.Collected,
		Arrows:       len(g.arrows.items),
		ArrowsTaken:  g.arrows.collected(),
		BeginPhase:   g.begin.phase.String(),
		BeginWaiting: g.begin.waiting,
		EndPhase:     g.end.phase.String(),
		Timer:        g.timer,
		Palette:      g.palette.Working,
		Finished:     g.finished,
	}
}
