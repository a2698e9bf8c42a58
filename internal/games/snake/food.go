package snake

import "math/rand"

// attemptsPerCell scales the rejection-sampling budget with board size.
const attemptsPerCell = 4

// Spawner places food on free interior cells.
type Spawner struct {
	rng         *rand.Rand
	maxAttempts int // 0 means attemptsPerCell * interior area
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, maxAttempts int) *Spawner {
	return &Spawner{rng: rng, maxAttempts: max(maxAttempts, 0)}
}

// Place returns a uniformly random interior cell not occupied by body.
//
// It samples and rejects occupied cells up to a bounded number of times,
// then falls back to choosing among an exhaustive list of free cells.
// ok is false only when the snake fills the whole interior.
func (s *Spawner) Place(b Board, body *Body) (Coordinate, bool) {
	attempts := s.maxAttempts
	if attempts == 0 {
		attempts = attemptsPerCell * b.InteriorArea()
	}

	for range attempts {
		c := Coordinate{
			Row: 1 + s.rng.Intn(b.Height-2),
			Col: 1 + s.rng.Intn(b.Width-2),
		}
		if !body.Occupies(c) {
			return c, true
		}
	}

	free := freeCells(b, body)
	if len(free) == 0 {
		return Coordinate{}, false
	}
	return free[s.rng.Intn(len(free))], true
}

// freeCells lists interior cells not covered by body, row-major.
func freeCells(b Board, body *Body) []Coordinate {
	occupied := make(map[Coordinate]bool, body.Len())
	for _, seg := range body.segs {
		occupied[seg] = true
	}

	var free []Coordinate
	for row := 1; row <= b.Height-2; row++ {
		for col := 1; col <= b.Width-2; col++ {
			c := Coordinate{Row: row, Col: col}
			if !occupied[c] {
				free = append(free, c)
			}
		}
	}
	return free
}
