package snake

import (
	"fmt"
	"time"
)

const (
	// DefaultHeight and DefaultWidth are the board dimensions including the wall.
	DefaultHeight = 20
	DefaultWidth  = 40

	// MinHeight and MinWidth are the smallest boards whose interior holds
	// the initial vertical snake.
	MinHeight = 7
	MinWidth  = 3

	// InitialLength is the number of segments a new snake starts with.
	InitialLength = 3

	// DefaultDifficulty is used when the caller expresses no preference.
	DefaultDifficulty = 1
)

// Tick interval scaling.
const (
	baseIntervalMs = 300
	stepIntervalMs = 20
	minIntervalMs  = 20
)

// Board is the fixed playfield. The outermost ring of cells is wall; the
// interior spans rows [1, Height-2] and columns [1, Width-2].
type Board struct {
	Height int
	Width  int
}

// NewBoard returns a validated board.
func NewBoard(height, width int) (Board, error) {
	b := Board{Height: height, Width: width}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// DefaultBoard returns the 20x40 board.
func DefaultBoard() Board {
	return Board{Height: DefaultHeight, Width: DefaultWidth}
}

// Validate reports whether the board can host a session.
func (b Board) Validate() error {
	if b.Height < MinHeight || b.Width < MinWidth {
		return fmt.Errorf("snake: board %dx%d is smaller than minimum %dx%d",
			b.Height, b.Width, MinHeight, MinWidth)
	}
	return nil
}

// InteriorArea returns the number of playable cells.
func (b Board) InteriorArea() int {
	return (b.Height - 2) * (b.Width - 2)
}

// InInterior reports whether c lies inside the walls.
func (b Board) InInterior(c Coordinate) bool {
	return c.Row >= 1 && c.Row <= b.Height-2 && c.Col >= 1 && c.Col <= b.Width-2
}

// TickInterval returns the time between committed ticks for a difficulty:
// max(20ms, 300ms - 20ms*difficulty). Negative difficulties count as 0.
func TickInterval(difficulty int) time.Duration {
	difficulty = max(difficulty, 0)
	// Saturate before multiplying so huge difficulties cannot overflow.
	if difficulty >= (baseIntervalMs-minIntervalMs)/stepIntervalMs {
		return minIntervalMs * time.Millisecond
	}
	ms := max(baseIntervalMs-stepIntervalMs*difficulty, minIntervalMs)
	return time.Duration(ms) * time.Millisecond
}
