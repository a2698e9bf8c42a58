package core

import "strings"

// Action represents a semantic input, abstracted from physical key presses.
// Frontends translate their own key events to key names and then to actions,
// so the simulation never sees a terminal library type.
type Action int

const (
	ActionNone  Action = iota
	ActionNorth        // Up arrow, W, K
	ActionEast         // Right arrow, D, L
	ActionSouth        // Down arrow, S, J
	ActionWest         // Left arrow, A, H
	ActionQuit         // Escape
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNorth:
		return "North"
	case ActionEast:
		return "East"
	case ActionSouth:
		return "South"
	case ActionWest:
		return "West"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// keyActions maps key names, as rendered by Bubble Tea's KeyMsg.String(),
// to actions. The raw frontend produces the same names from tcell keys.
var keyActions = map[string]Action{
	"up":    ActionNorth,
	"w":     ActionNorth,
	"k":     ActionNorth,
	"right": ActionEast,
	"d":     ActionEast,
	"l":     ActionEast,
	"down":  ActionSouth,
	"s":     ActionSouth,
	"j":     ActionSouth,
	"left":  ActionWest,
	"a":     ActionWest,
	"h":     ActionWest,
	"esc":   ActionQuit,
}

// ActionForKey translates a key name to an action.
// Unmapped keys yield ActionNone.
func ActionForKey(name string) Action {
	if a, ok := keyActions[strings.ToLower(name)]; ok {
		return a
	}
	return ActionNone
}

// IsDirection reports whether the action is one of the four headings.
func (a Action) IsDirection() bool {
	return a >= ActionNorth && a <= ActionWest
}
