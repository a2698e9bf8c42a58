package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-snake/internal/storage"
)

// PrefsKeyMap defines the key bindings for the preferences screen.
type PrefsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Clear key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PrefsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Clear, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k PrefsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Clear, k.Back, k.Quit}}
}

// DefaultPrefsKeyMap returns default key bindings.
func DefaultPrefsKeyMap() PrefsKeyMap {
	return PrefsKeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Clear: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear all")),
		Back:  key.NewBinding(key.WithKeys("esc", "b", "tab"), key.WithHelp("esc/b", "back")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// PrefsModel lists the stored preferences.
type PrefsModel struct {
	store      *storage.Store
	entries    []storage.SettingEntry
	err        error
	table      table.Model
	help       help.Model
	keys       PrefsKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
	standalone bool
}

// NewPrefsModel creates the preferences screen. store may be nil.
func NewPrefsModel(store *storage.Store, width, height int) PrefsModel {
	m := PrefsModel{
		store:  store,
		keys:   DefaultPrefsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.createTable()
	m.load()
	return m
}

func (m *PrefsModel) createTable() table.Model {
	valueWidth := max(m.width-40, 10)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Key", Width: 18},
			{Title: "Value", Width: min(valueWidth, 20)},
			{Title: "Updated", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
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
	t.SetStyles(s)
	return t
}

func (m *PrefsModel) load() {
	m.entries, m.err = nil, nil
	if m.store != nil {
		m.entries, m.err = m.store.Settings()
	}
	m.updateRows()
}

func (m *PrefsModel) updateRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		updated := ""
		if !e.UpdatedAt.IsZero() {
			updated = e.UpdatedAt.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{e.Key, e.Value, updated}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the preferences model.
func (m PrefsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the preferences screen.
func (m PrefsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.done()

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.done()

		case key.Matches(msg, m.keys.Clear):
			if m.store != nil {
				if err := m.store.ClearSettings(); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.updateRows()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m PrefsModel) done() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// View renders the preferences screen.
func (m PrefsModel) View() string {
	if (m.quitting || m.goingBack) && m.standalone {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.MarginBottom(1).Render(centerText("PREFERENCES", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case m.store == nil:
		content = emptyStyle.Render("Preferences are unavailable.\nNo database is open.")
	case m.err != nil:
		content = emptyStyle.Render("Could not read preferences:\n" + m.err.Error())
	case len(m.entries) == 0:
		content = emptyStyle.Render("Nothing saved yet.\nPlay a game to remember the difficulty.")
	default:
		content = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(content)))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

var emptyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Italic(true).
	Padding(1, 3)

// IsGoingBack reports whether the user wants to return to the menu.
func (m PrefsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user wants to quit entirely.
func (m PrefsModel) IsQuitting() bool {
	return m.quitting
}

// RunPrefs shows the preferences screen on the local terminal.
func RunPrefs(store *storage.Store, width, height int) error {
	model := NewPrefsModel(store, width, height)
	model.standalone = true

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
