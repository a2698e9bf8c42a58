package snake

import "github.com/vovakirdan/term-snake/internal/core"

// Coordinate is a (row, col) cell on the board. Row 0 is the top wall.
type Coordinate struct {
	Row, Col int
}

// Direction represents the snake's heading.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Opposite returns the direction 180 degrees from d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// IsOpposite reports whether d and other point in opposite directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

// delta returns the row and column offsets of one step in d.
func (d Direction) delta() (int, int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Letter returns the compass letter shown in the HUD.
func (d Direction) Letter() rune {
	switch d {
	case North:
		return 'N'
	case East:
		return 'E'
	case South:
		return 'S'
	case West:
		return 'W'
	default:
		return '?'
	}
}

// DirectionFromAction converts a direction action to a Direction.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionNorth:
		return North, true
	case core.ActionEast:
		return East, true
	case core.ActionSouth:
		return South, true
	case core.ActionWest:
		return West, true
	}
	return 0, false
}
