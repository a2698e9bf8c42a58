package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-snake/internal/games/snake"
	"github.com/vovakirdan/term-snake/internal/menu"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	editingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the start screen.
type MenuModel struct {
	main       *menu.Main
	keys       MenuKeyMap
	help       help.Model
	width      int
	height     int
	last       *snake.Result // Result of the previous session, if any
	play       bool
	quitting   bool
	showPrefs  bool
	standalone bool // Quit the program on play/exit
}

// NewMenuModel builds the start screen with the slider at difficulty.
func NewMenuModel(sliderLength, difficulty, width, height int) (MenuModel, error) {
	main, err := menu.NewMain(sliderLength, difficulty)
	if err != nil {
		return MenuModel{}, err
	}
	h := help.New()
	h.Width = width
	return MenuModel{
		main:   main,
		keys:   DefaultMenuKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}, nil
}

// WithResult shows r under the title.
func (m MenuModel) WithResult(r snake.Result) MenuModel {
	m.last = &r
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	browsing := m.main.State() == menu.StateBrowsing

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, m.done()
	case browsing && key.Matches(msg, m.keys.Prefs):
		m.showPrefs = true
		return m, m.done()
	}

	e := m.main.HandleKey(menuKey(m.keys, msg))
	switch {
	case m.main.WantsPlay(e):
		m.play = true
		return m, m.done()
	case e.Type == menu.EventExit:
		m.quitting = true
		return m, m.done()
	}
	return m, nil
}

func (m MenuModel) done() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting && m.standalone {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")

	if m.last != nil {
		b.WriteString(centerText(dimStyle.Render(resultLine(*m.last)), m.width))
		b.WriteString("\n\n")
	}

	editing := m.main.State() == menu.StateEditing
	for i, item := range m.main.Items() {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.main.Selected() {
			cursor = "> "
			style = selectedStyle
		}

		line := item.Label
		if item.Kind == menu.ItemSlider {
			bar := sliderBar(item)
			if editing && i == m.main.Selected() {
				bar = editingStyle.Render(bar)
			}
			line = fmt.Sprintf("%-11s %s", item.Label, bar)
		}
		b.WriteString(centerText(style.Render(cursor+line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// sliderBar draws a slider as [====------] value.
func sliderBar(it menu.Item) string {
	return fmt.Sprintf("[%s%s] %d",
		strings.Repeat("=", it.Value),
		strings.Repeat("-", it.Length-it.Value),
		it.Value,
	)
}

func resultLine(r snake.Result) string {
	switch r.Reason {
	case snake.ReasonCollision:
		return fmt.Sprintf("Crashed! Score %d, length %d", r.Score, r.Length)
	case snake.ReasonBoardFull:
		return fmt.Sprintf("Board cleared! Score %d", r.Score)
	default:
		return fmt.Sprintf("Last game: score %d", r.Score)
	}
}

// Difficulty returns the slider value.
func (m MenuModel) Difficulty() int {
	return m.main.CurrentDifficulty()
}

// WantsPlay reports whether Play was chosen.
func (m MenuModel) WantsPlay() bool {
	return m.play
}

// IsQuitting reports whether Exit or quit was chosen.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsPrefs reports whether the preferences screen was requested.
func (m MenuModel) WantsPrefs() bool {
	return m.showPrefs
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
