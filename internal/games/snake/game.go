// Package snake implements the snake simulation: a growing body on a walled
// board, food placement, and a tick scheduler that samples input on every
// poll but only advances the world when the difficulty's interval elapses.
//
// The package has no terminal dependencies. Frontends feed it actions and
// timestamps and draw the read-only View it exposes between ticks.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/term-snake/internal/core"
)

// Reason explains why a session ended.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonQuit      Reason = "quit"
	ReasonCollision Reason = "collision"
	ReasonBoardFull Reason = "full"
)

// Options configure a new session.
type Options struct {
	Board        Board
	Difficulty   int
	Seed         int64
	FoodAttempts int // Rejection-sampling budget; 0 derives it from the board
}

// TickResult reports what a single poll iteration did.
type TickResult struct {
	Ticked bool   // A tick was committed
	Ate    bool   // The committed tick ate food
	Ended  Reason // Set when this iteration terminated the session
}

// Result is returned to the caller when a session ends.
type Result struct {
	Reason     Reason
	Score      int
	Length     int
	Ticks      uint64
	Difficulty int
}

// Session is one play-through: snake, food, heading and tick clock.
// It is the single writer of all of them and is not safe for concurrent use;
// drivers call it from one goroutine and render from View between calls.
type Session struct {
	board      Board
	difficulty int
	interval   time.Duration

	body    *Body
	food    Coordinate
	heading Heading
	spawner *Spawner

	lastTick time.Time
	ticks    uint64
	score    int
	reason   Reason
}

// NewSession validates opts and starts a session at time now: the snake is
// placed vertically in the middle of the board heading north, and the first
// food is spawned.
func NewSession(opts Options, now time.Time) (*Session, error) {
	if err := opts.Board.Validate(); err != nil {
		return nil, fmt.Errorf("snake: cannot start session: %w", err)
	}

	difficulty := max(opts.Difficulty, 0)
	b := opts.Board
	head := Coordinate{Row: b.Height / 2, Col: b.Width / 2}

	tail := make([]Coordinate, 0, InitialLength-1)
	for i := 1; i < InitialLength; i++ {
		tail = append(tail, Coordinate{Row: head.Row + i, Col: head.Col})
	}

	s := &Session{
		board:      b,
		difficulty: difficulty,
		interval:   TickInterval(difficulty),
		body:       NewBody(head, tail...),
		heading:    NewHeading(North),
		spawner:    NewSpawner(rand.New(rand.NewSource(opts.Seed)), opts.FoodAttempts),
		lastTick:   now,
	}

	food, ok := s.spawner.Place(b, s.body)
	if !ok {
		s.reason = ReasonBoardFull
	}
	s.food = food

	return s, nil
}

// Submit feeds one input action without blocking. Quit terminates the
// session immediately; a direction updates the pending heading unless it
// reverses the applied one; anything else is ignored. Returns whether the
// action was accepted.
func (s *Session) Submit(a core.Action) bool {
	if s.Terminated() {
		return false
	}
	if a == core.ActionQuit {
		s.reason = ReasonQuit
		return true
	}
	dir, ok := DirectionFromAction(a)
	if !ok {
		return false
	}
	return s.heading.Submit(dir)
}

// Advance commits a tick if at least one interval has elapsed since the
// last committed tick. Otherwise it does nothing, so callers may invoke it
// as often as they like.
func (s *Session) Advance(now time.Time) TickResult {
	if s.Terminated() {
		return TickResult{}
	}
	if now.Sub(s.lastTick) < s.interval {
		return TickResult{}
	}

	ate := s.step()
	s.lastTick = now
	return TickResult{Ticked: true, Ate: ate, Ended: s.reason}
}

// Poll is one scheduler iteration: sample input, then maybe tick.
func (s *Session) Poll(a core.Action, now time.Time) TickResult {
	s.Submit(a)
	if s.Terminated() {
		return TickResult{Ended: s.reason}
	}
	return s.Advance(now)
}

// step commits the pending heading and moves the snake one cell.
// Returns whether food was eaten.
func (s *Session) step() bool {
	dir := s.heading.Commit()
	next := NextHead(s.board, s.body.Head(), dir)

	// Eating is checked against the food as it stood before the move, and
	// growth happens on the same tick.
	ate := next == s.food
	if ate {
		s.body.Grow(next)
	} else {
		s.body.Shift(next)
	}
	s.ticks++

	if s.body.HeadCollides() {
		s.reason = ReasonCollision
		return ate
	}

	if ate {
		s.score++
		food, ok := s.spawner.Place(s.board, s.body)
		if !ok {
			s.reason = ReasonBoardFull
			return ate
		}
		s.food = food
	}
	return ate
}

// Terminated reports whether the session has ended.
func (s *Session) Terminated() bool {
	return s.reason != ReasonNone
}

// Reason returns why the session ended, or ReasonNone while it runs.
func (s *Session) Reason() Reason {
	return s.reason
}

// Interval returns the time between committed ticks.
func (s *Session) Interval() time.Duration {
	return s.interval
}

// Result summarises the session for the caller.
func (s *Session) Result() Result {
	return Result{
		Reason:     s.reason,
		Score:      s.score,
		Length:     s.body.Len(),
		Ticks:      s.ticks,
		Difficulty: s.difficulty,
	}
}

// View is a read-only copy of everything a renderer needs.
type View struct {
	Board      Board
	Segments   []Coordinate // Head first
	Food       Coordinate
	Applied    Direction
	Pending    Direction
	Difficulty int
	Score      int
	Ticks      uint64
	Reason     Reason
}

// View returns a consistent snapshot of the session. The returned slice is
// a copy; mutating it does not affect the session.
func (s *Session) View() View {
	return View{
		Board:      s.board,
		Segments:   s.body.Segments(),
		Food:       s.food,
		Applied:    s.heading.Applied(),
		Pending:    s.heading.Pending(),
		Difficulty: s.difficulty,
		Score:      s.score,
		Ticks:      s.ticks,
		Reason:     s.reason,
	}
}
