package levels

import "github.com/vovakirdan/gb11/internal/core"

// SpawnKind is what a map character places on its tile.
type SpawnKind uint8

const (
	SpawnEmpty SpawnKind = iota
	SpawnPlayer
	SpawnDoor
	SpawnKey
	SpawnArrow
)

// String returns a human-readable name for the spawn kind.
func (k SpawnKind) String() string {
	switch k {
	case SpawnEmpty:
		return "empty"
	case SpawnPlayer:
		return "player"
	case SpawnDoor:
		return "door"
	case SpawnKey:
		return "key"
	case SpawnArrow:
		return "arrow"
	default:
		return "unknown"
	}
}

// Spawn is a lookup result. Dir is only meaningful for arrows.
type Spawn struct {
	Kind SpawnKind
	Dir  core.Dir
}

// SpawnKinds maps every byte to its spawn. Unlisted bytes are empty.
var SpawnKinds = buildSpawnKinds()

func buildSpawnKinds() [256]Spawn {
	var t [256]Spawn
	t['p'] = Spawn{Kind: SpawnPlayer}
	t['d'] = Spawn{Kind: SpawnDoor}
	t['k'] = Spawn{Kind: SpawnKey}
	t['^'] = Spawn{Kind: SpawnArrow, Dir: core.DirUp}
	t['<'] = Spawn{Kind: SpawnArrow, Dir: core.DirLeft}
	t['>'] = Spawn{Kind: SpawnArrow, Dir: core.DirRight}
	t['v'] = Spawn{Kind: SpawnArrow, Dir: core.DirDown}
	return t
}

// Lookup returns the spawn for a map character.
func Lookup(ch byte) Spawn {
	return SpawnKinds[ch]
}
