package tui

import (
	"image/png"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gb11/internal/atlas"
	"github.com/vovakirdan/gb11/internal/config"
	"github.com/vovakirdan/gb11/internal/core"
	"github.com/vovakirdan/gb11/internal/game"
	"github.com/vovakirdan/gb11/internal/levels"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	table, err := levels.Default(cfg.Game.ArrowCapacity)
	if err != nil {
		t.Fatalf("levels.Default() error: %v", err)
	}
	a, err := atlas.Default()
	if err != nil {
		t.Fatalf("atlas.Default() error: %v", err)
	}
	g, err := game.New(cfg, table, nil)
	if err != nil {
		t.Fatalf("game.New() error: %v", err)
	}
	m := NewModel(g, core.NewScreen(core.ScreenW, core.ScreenH, a), cfg.Runtime(60), nil)
	m.screenshotDir = t.TempDir()
	return m
}

func TestModelStartKeyLeavesTitleCard(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(1000, 0)

	if !m.game.Snapshot().BeginWaiting {
		t.Fatal("game should wait on the first title card")
	}

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter}, t0)
	m = next.(Model)
	next, cmd := m.handleTick(t0)
	m = next.(Model)

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.game.Snapshot().BeginWaiting {
		t.Error("Start should release the title card")
	}

	// The key is released once the hold runs out.
	next, _ = m.handleTick(t0.Add(time.Second))
	m = next.(Model)
	if m.input.latch.Pressed(core.ButtonStart) {
		t.Error("Start should be released after the hold timeout")
	}
}

func TestModelTickClampsDT(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(1000, 0)

	next, _ := m.handleTick(t0)
	m = next.(Model)
	if m.last != t0 {
		t.Fatalf("last tick = %v, expected %v", m.last, t0)
	}

	// A long stall must not skip more than one clamped step.
	next, _ = m.handleTick(t0.Add(10 * time.Second))
	m = next.(Model)
	if got := m.game.Snapshot().Frame; got != 2 {
		t.Errorf("frame = %d, expected 2", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.handleKey(runeKey("q"), time.Now())
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestModelViewTooSmall(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.handleResize(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	if v := m.View(); !strings.Contains(v, "too small") {
		t.Errorf("View() = %q, expected a size hint", v)
	}

	next, _ = m.handleResize(tea.WindowSizeMsg{Width: 200, Height: 80})
	m = next.(Model)
	if v := m.View(); strings.Contains(v, "too small") {
		t.Error("View() should render the screen when the terminal is large enough")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.handleTick(time.Unix(1000, 0))
	m = next.(Model)

	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlS}, time.Unix(1000, 0))
	m = next.(Model)

	path := strings.TrimPrefix(m.status, "saved ")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("screenshot not written: %v (status %q)", err, m.status)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if img.Bounds().Dx() != core.ScreenW*ScreenshotScale || img.Bounds().Dy() != core.ScreenH*ScreenshotScale {
		t.Errorf("screenshot is %v", img.Bounds())
	}
}
