package snake

import "github.com/vovakirdan/term-snake/internal/core"

// NextHead returns the cell one step from head in dir, with each axis
// clamped to the interior. A step into a wall therefore lands on head
// itself, which after the move coincides with the second segment: wall
// hits surface as ordinary self-collisions.
func NextHead(b Board, head Coordinate, dir Direction) Coordinate {
	dr, dc := dir.delta()
	return Coordinate{
		Row: core.Clamp(head.Row+dr, 1, b.Height-2),
		Col: core.Clamp(head.Col+dc, 1, b.Width-2),
	}
}

// IsCollision reports whether candidate equals any coordinate in rest,
// where rest is the post-move body without its head.
func IsCollision(rest []Coordinate, candidate Coordinate) bool {
	for _, seg := range rest {
		if seg == candidate {
			return true
		}
	}
	return false
}
