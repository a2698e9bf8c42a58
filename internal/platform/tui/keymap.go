package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/menu"
)

// GameKeyMap defines the key bindings shown while playing.
type GameKeyMap struct {
	North key.Binding
	South key.Binding
	West  key.Binding
	East  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.North, k.South, k.West, k.East, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.North, k.South, k.West, k.East}, {k.Quit}}
}

// DefaultGameKeyMap returns the bindings accepted by core.ActionForKey.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		North: key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "north")),
		South: key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "south")),
		West:  key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "west")),
		East:  key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "east")),
		Quit:  key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc/q", "quit")),
	}
}

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Back   key.Binding
	Prefs  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Back, k.Prefs}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Back, k.Prefs, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h", "a"), key.WithHelp("←", "less")),
		Right:  key.NewBinding(key.WithKeys("right", "l", "d"), key.WithHelp("→", "more")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Prefs:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "prefs")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// gameAction translates a key message to a session action.
func gameAction(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	}
	return core.ActionForKey(msg.String())
}

// menuKey translates a key message to a menu key.
func menuKey(km MenuKeyMap, msg tea.KeyMsg) menu.Key {
	switch {
	case key.Matches(msg, km.Up):
		return menu.KeyUp
	case key.Matches(msg, km.Down):
		return menu.KeyDown
	case key.Matches(msg, km.Left):
		return menu.KeyLeft
	case key.Matches(msg, km.Right):
		return menu.KeyRight
	case key.Matches(msg, km.Select):
		return menu.KeyEnter
	case key.Matches(msg, km.Back):
		return menu.KeyEsc
	}
	return menu.KeyNone
}
