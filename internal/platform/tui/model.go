package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gb11/internal/core"
	"github.com/vovakirdan/gb11/internal/game"
)

var (
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game          *game.Game
	screen        *core.Screen
	keys          KeyMap
	help          help.Model
	input         *holdLatch
	styles        styleCache
	config        core.RuntimeConfig
	log           *log.Logger
	screenshotDir string

	last     time.Time
	width    int
	height   int
	status   string
	quitting bool
}

// NewModel creates a model that steps g and paints it into screen.
// A nil logger discards all output.
func NewModel(g *game.Game, screen *core.Screen, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		game:          g,
		screen:        screen,
		keys:          DefaultKeyMap(),
		help:          h,
		input:         newHoldLatch(DefaultHoldTimeout),
		styles:        make(styleCache, 16),
		config:        cfg,
		log:           logger,
		screenshotDir: ScreenshotDir(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.takeScreenshot(now)
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.input.press(b, now)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame: update, draw, then latch rotation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt float32
	if !m.last.IsZero() {
		dt = float32(now.Sub(m.last).Seconds())
	}
	m.last = now

	m.game.Update(m.config.ClampDT(dt), &m.input.latch)
	m.game.Draw(m.screen)
	m.input.endFrame(now)

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) takeScreenshot(now time.Time) {
	path, err := saveScreenshot(m.screen, m.screenshotDir, now)
	if err != nil {
		m.log.Error("screenshot failed", "err", err)
		m.status = "screenshot failed"
		return
	}
	m.log.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// RequiredSize returns the terminal size the model needs.
func (m Model) RequiredSize() (cols, rows int) {
	cols, rows = CellSize(m.screen.Width(), m.screen.Height())
	return cols, rows + 1
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := m.RequiredSize()
	if m.width > 0 && (m.width < needW || m.height < needH) {
		return hintStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d.\nEnlarge the window or press q to quit.",
			needW, needH, m.width, m.height))
	}

	var b strings.Builder
	b.WriteString(renderScreen(m.screen, m.styles))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(statusStyle.Render(m.status))
	}
	return b.String()
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, screen *core.Screen, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(g, screen, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
