package snake

// GameStateType represents the scheduler state.
type GameStateType string

const (
	StatePolling    GameStateType = "polling"
	StateTerminated GameStateType = "terminated"
)

// Snapshot captures the comparable state of a session for determinism tests.
type Snapshot struct {
	Ticks    uint64
	Score    int
	SnakeLen int
	Head     Coordinate
	Tail     Coordinate
	Dir      Direction
	Food     Coordinate
	State    GameStateType
	Reason   Reason
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StatePolling
	if s.Terminated() {
		state = StateTerminated
	}

	return Snapshot{
		Ticks:    s.ticks,
		Score:    s.score,
		SnakeLen: s.body.Len(),
		Head:     s.body.Head(),
		Tail:     s.body.Tail(),
		Dir:      s.heading.Applied(),
		Food:     s.food,
		State:    state,
		Reason:   s.reason,
	}
}
