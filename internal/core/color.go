package core

// Color is a foreground color for a screen cell. Frontends map it to their
// own palette (lipgloss ANSI codes, tcell colors).
type Color uint8

// Colors used by the board renderer and the menu.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorGray
)
