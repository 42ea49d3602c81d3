package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gb11/internal/levels"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)

// LevelSelectKeyMap defines the key bindings for the level picker.
type LevelSelectKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LevelSelectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LevelSelectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultLevelSelectKeyMap returns default key bindings.
func DefaultLevelSelectKeyMap() LevelSelectKeyMap {
	return LevelSelectKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LevelSelection holds the user's choice from the level picker.
type LevelSelection struct {
	Level  int
	Chosen bool // false when the picker was closed without a choice
}

// LevelSelectModel is the level picker shown before play.
type LevelSelectModel struct {
	table     table.Model
	help      help.Model
	keys      LevelSelectKeyMap
	selection LevelSelection
	quitting  bool
}

// NewLevelSelectModel creates a picker listing every level of t.
func NewLevelSelectModel(t *levels.Table) LevelSelectModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 20},
		{Title: "Size", Width: 8},
		{Title: "Arrows", Width: 7},
	}

	all := t.All()
	rows := make([]table.Row, 0, len(all))
	for i, d := range all {
		rows = append(rows, levelRow(i, d))
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows), 12)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	tbl.SetStyles(s)

	h := help.New()
	h.ShowAll = false

	return LevelSelectModel{
		table: tbl,
		help:  h,
		keys:  DefaultLevelSelectKeyMap(),
	}
}

func levelRow(i int, d levels.Descriptor) table.Row {
	arrows := 0
	d.Each(func(_, _ int, s levels.Spawn) {
		if s.Kind == levels.SpawnArrow {
			arrows++
		}
	})
	return table.Row{
		strconv.Itoa(i + 1),
		d.Name,
		fmt.Sprintf("%dx%d", d.Width(), d.Height()),
		strconv.Itoa(arrows),
	}
}

// Selection returns the user's choice.
func (m LevelSelectModel) Selection() LevelSelection {
	return m.selection
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			m.selection = LevelSelection{Level: m.table.Cursor(), Chosen: true}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the level picker.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("G B 1 1  -  select a level"))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// RunLevelSelect shows the picker and returns the user's choice.
func RunLevelSelect(t *levels.Table) (LevelSelection, error) {
	p := tea.NewProgram(NewLevelSelectModel(t), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return LevelSelection{}, err
	}
	if m, ok := final.(LevelSelectModel); ok {
		return m.Selection(), nil
	}
	return LevelSelection{}, nil
}
