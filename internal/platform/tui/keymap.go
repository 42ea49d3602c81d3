package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gb11/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Up         key.Binding
	Left       key.Binding
	Right      key.Binding
	Down       key.Binding
	A          key.Binding
	B          key.Binding
	Start      key.Binding
	Select     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.B, k.Start, k.Screenshot, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Left, k.Down, k.Right},
		{k.A, k.B, k.Start, k.Select},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		A: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "A"),
		),
		B: key.NewBinding(
			key.WithKeys("x", "r"),
			key.WithHelp("x/r", "reset"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Select: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "select"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Button maps a key message to a pad button.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.ButtonUp, true
	case key.Matches(msg, k.Left):
		return core.ButtonLeft, true
	case key.Matches(msg, k.Right):
		return core.ButtonRight, true
	case key.Matches(msg, k.Down):
		return core.ButtonDown, true
	case key.Matches(msg, k.A):
		return core.ButtonA, true
	case key.Matches(msg, k.B):
		return core.ButtonB, true
	case key.Matches(msg, k.Start):
		return core.ButtonStart, true
	case key.Matches(msg, k.Select):
		return core.ButtonSelect, true
	}
	return 0, false
}

// DefaultHoldTimeout is how long a key counts as held after its last event.
const DefaultHoldTimeout = 120 * time.Millisecond

// holdLatch feeds a core.Latch from a terminal, which reports presses and
// auto-repeats but never releases. A button stays held until no event for
// it has arrived within the hold timeout.
type holdLatch struct {
	latch   core.Latch
	timeout time.Duration
	expires map[core.Button]time.Time
}

func newHoldLatch(timeout time.Duration) *holdLatch {
	return &holdLatch{timeout: timeout, expires: make(map[core.Button]time.Time)}
}

// press marks b as held as of now.
func (h *holdLatch) press(b core.Button, now time.Time) {
	h.latch.Press(b)
	h.expires[b] = now.Add(h.timeout)
}

// endFrame rotates the latch and releases buttons whose hold ran out.
// A button pressed this frame stays held for at least one more check, so
// every press produces a click.
func (h *holdLatch) endFrame(now time.Time) {
	h.latch.Rotate()
	for b, until := range h.expires {
		if !now.Before(until) {
			h.latch.Release(b)
			delete(h.expires, b)
		}
	}
}
