// Package menu is the small widget state machine that sits in front of a
// snake session: a vertical list of text, exit and slider items, one of
// which is selected. Sliders can be engaged for editing, moved one notch at
// a time, then committed or reverted.
//
// The package knows nothing about terminals. Frontends translate their own
// key events into Key values and react to the returned Event.
package menu

import (
	"errors"
	"fmt"
)

// Key is a frontend-independent menu key.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEsc
)

var keyNames = map[string]Key{
	"up":    KeyUp,
	"k":     KeyUp,
	"down":  KeyDown,
	"j":     KeyDown,
	"left":  KeyLeft,
	"h":     KeyLeft,
	"right": KeyRight,
	"l":     KeyRight,
	"enter": KeyEnter,
	"esc":   KeyEsc,
}

// KeyFromName maps a key name as reported by Bubble Tea or tcell
// ("up", "enter", "esc", ...) to a Key. Unknown names map to KeyNone.
func KeyFromName(name string) Key {
	return keyNames[name]
}

// ItemKind distinguishes menu entries.
type ItemKind int

const (
	ItemText ItemKind = iota
	ItemExit
	ItemSlider
)

// Item is one menu entry. Length and Value are only meaningful for sliders;
// Value always lies in [0, Length].
type Item struct {
	Kind   ItemKind
	Label  string
	Length int
	Value  int
}

// Text returns a plain selectable entry.
func Text(label string) Item {
	return Item{Kind: ItemText, Label: label}
}

// Exit returns an entry that leaves the menu.
func Exit(label string) Item {
	return Item{Kind: ItemExit, Label: label}
}

// Slider returns a bounded integer control.
func Slider(label string, length, value int) Item {
	return Item{Kind: ItemSlider, Label: label, Length: length, Value: value}
}

// State is the menu's mode.
type State int

const (
	StateBrowsing State = iota
	StateEditing
)

func (s State) String() string {
	if s == StateEditing {
		return "editing"
	}
	return "browsing"
}

// EventType tells the caller what a key did.
type EventType int

const (
	EventNone EventType = iota
	EventNavigate
	EventTextReturn
	EventExit
	EventSliderEngage
	EventSliderMove
	EventSliderDisengage
)

var eventNames = [...]string{
	EventNone:            "none",
	EventNavigate:        "navigate",
	EventTextReturn:      "text_return",
	EventExit:            "exit",
	EventSliderEngage:    "slider_engage",
	EventSliderMove:      "slider_move",
	EventSliderDisengage: "slider_disengage",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// Event is the result of one key press. Index is the item concerned; Value
// is the slider position for slider events.
type Event struct {
	Type  EventType
	Index int
	Value int
}

var errNoItems = errors.New("menu: no items")

// Menu holds the items and the browsing/editing state machine.
type Menu struct {
	items    []Item
	selected int
	state    State
	saved    int // Slider value when editing began
}

// New creates a menu in the browsing state with the first item selected.
// Slider values outside [0, Length] are clamped.
func New(items ...Item) (*Menu, error) {
	if len(items) == 0 {
		return nil, errNoItems
	}

	own := make([]Item, len(items))
	for i, it := range items {
		if it.Kind == ItemSlider {
			if it.Length < 1 {
				return nil, fmt.Errorf("menu: slider %q has length %d, need at least 1", it.Label, it.Length)
			}
			it.Value = min(max(it.Value, 0), it.Length)
		}
		own[i] = it
	}
	return &Menu{items: own}, nil
}

// HandleKey advances the state machine by one key.
func (m *Menu) HandleKey(k Key) Event {
	if m.state == StateEditing {
		return m.handleEditing(k)
	}
	return m.handleBrowsing(k)
}

func (m *Menu) handleBrowsing(k Key) Event {
	switch k {
	case KeyUp:
		if m.selected > 0 {
			m.selected--
		}
		return Event{Type: EventNavigate, Index: m.selected}
	case KeyDown:
		if m.selected < len(m.items)-1 {
			m.selected++
		}
		return Event{Type: EventNavigate, Index: m.selected}
	case KeyEsc:
		return Event{Type: EventExit, Index: m.selected}
	case KeyEnter:
		it := m.items[m.selected]
		switch it.Kind {
		case ItemSlider:
			m.state = StateEditing
			m.saved = it.Value
			return Event{Type: EventSliderEngage, Index: m.selected, Value: it.Value}
		case ItemExit:
			return Event{Type: EventExit, Index: m.selected}
		default:
			return Event{Type: EventTextReturn, Index: m.selected}
		}
	}
	return Event{Type: EventNone, Index: m.selected}
}

func (m *Menu) handleEditing(k Key) Event {
	it := &m.items[m.selected]

	switch k {
	case KeyLeft:
		if it.Value > 0 {
			it.Value--
		}
		return Event{Type: EventSliderMove, Index: m.selected, Value: it.Value}
	case KeyRight:
		if it.Value < it.Length {
			it.Value++
		}
		return Event{Type: EventSliderMove, Index: m.selected, Value: it.Value}
	case KeyEnter:
		m.state = StateBrowsing
		return Event{Type: EventSliderDisengage, Index: m.selected, Value: it.Value}
	case KeyEsc:
		it.Value = m.saved
		m.state = StateBrowsing
		return Event{Type: EventSliderDisengage, Index: m.selected, Value: it.Value}
	}
	return Event{Type: EventNone, Index: m.selected, Value: it.Value}
}

// State returns the current mode.
func (m *Menu) State() State {
	return m.state
}

// Selected returns the index of the selected item.
func (m *Menu) Selected() int {
	return m.selected
}

// Len returns the number of items.
func (m *Menu) Len() int {
	return len(m.items)
}

// Item returns a copy of item i.
func (m *Menu) Item(i int) Item {
	return m.items[i]
}

// Items returns a copy of all items.
func (m *Menu) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// SetValue sets slider i to v, clamped to its range. Non-sliders are left alone.
func (m *Menu) SetValue(i, v int) {
	it := &m.items[i]
	if it.Kind != ItemSlider {
		return
	}
	it.Value = min(max(v, 0), it.Length)
}
