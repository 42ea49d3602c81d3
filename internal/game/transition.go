package game

import "github.com/vovakirdan/gb11/internal/core"

// fadePhase is the state of one transition instance.
type fadePhase uint8

const (
	fadeNone fadePhase = iota
	fadeOut
	fadeIn
)

// String returns the string representation of a fade phase.
func (p fadePhase) String() string {
	switch p {
	case fadeOut:
		return "fade_out"
	case fadeIn:
		return "fade_in"
	default:
		return "none"
	}
}

// transition is one fade sequence. Begin fades the title card out and the
// level in; end fades the level out and the next title card in.
type transition struct {
	phase   fadePhase
	waiting bool // begin only: hold the title card until Start is clicked
}

// tick advances the shared fade timer and reports whether a fade step is
// due. The timer restarts on every step.
func (g *Game) tick(dt float32) bool {
	g.timer += dt
	if g.timer < g.cfg.Transition.FadeStep {
		return false
	}
	g.timer = 0
	return true
}

// startBegin shows the title card of the current level.
func (g *Game) startBegin() {
	g.palette.Restore()
	g.mode = ModeTransitionBegin
	g.begin = transition{phase: fadeOut, waiting: g.cfg.Start.RequireClick}
	g.end = transition{}
	g.timer = 0
	g.log.Debug("transition begin", "level", g.level, "waiting", g.begin.waiting)
}

// startEnd fades the finished level out.
func (g *Game) startEnd() {
	g.mode = ModeTransitionEnd
	g.end = transition{phase: fadeOut}
	g.timer = 0
	g.log.Debug("transition end", "level", g.level)
}

// updateBegin: wait for Start, fade the title card out, load the level,
// fade the scene in, then hand control to the player.
func (g *Game) updateBegin(dt float32, in *core.Latch) {
	if g.begin.waiting {
		if in.Clicked(core.ButtonStart) {
			g.begin.waiting = false
			g.timer = 0
		}
		return
	}
	if !g.tick(dt) {
		return
	}

	switch g.begin.phase {
	case fadeOut:
		if g.palette.FadeOutStep() {
			g.resetLevel()
			g.begin.phase = fadeIn
		}
	case fadeIn:
		if g.palette.FadeInStep() {
			g.begin.phase = fadeNone
			g.mode = ModeIdle
			g.log.Info("level started", "level", g.level, "name", g.table.Level(g.level).Name)
		}
	}
}

// updateEnd: fade the scene out, advance the level, fade the next title
// card in, then hand off to the begin transition. After the last level the
// ending card is faded in instead and the game finishes.
func (g *Game) updateEnd(dt float32) {
	if !g.tick(dt) {
		return
	}

	switch g.end.phase {
	case fadeOut:
		if g.palette.FadeOutStep() {
			if g.level+1 >= g.table.Len() {
				g.finished = true
			} else {
				g.level++
			}
			g.end.phase = fadeIn
		}
	case fadeIn:
		if g.palette.FadeInStep() {
			g.end.phase = fadeNone
			if g.finished {
				g.mode = ModeFinished
				g.log.Info("game finished", "levels", g.table.Len())
				return
			}
			g.startBegin()
		}
	}
}

// updateFinished waits on the ending card for Start to play again.
func (g *Game) updateFinished(in *core.Latch) {
	if !in.Clicked(core.ButtonStart) {
		return
	}
	g.log.Info("game restarted")
	g.finished = false
	g.level = 0
	g.resetLevel()
	g.startBegin()
}
