package snake

// Heading tracks the direction used on the last committed tick (applied)
// and the most recent accepted input since then (pending).
//
// Reversal is checked against applied, not pending: turning north, east,
// south within one tick window while heading west still resolves against
// west, so the snake can never fold back onto its neck.
type Heading struct {
	applied Direction
	pending Direction
}

// NewHeading starts with both applied and pending set to d.
func NewHeading(d Direction) Heading {
	return Heading{applied: d, pending: d}
}

// Submit records d as pending unless it reverses the applied direction.
// Returns whether the input was accepted.
func (h *Heading) Submit(d Direction) bool {
	if d.IsOpposite(h.applied) {
		return false
	}
	h.pending = d
	return true
}

// Commit copies pending into applied and returns it. Called exactly once
// per tick, immediately before the move is computed.
func (h *Heading) Commit() Direction {
	h.applied = h.pending
	return h.applied
}

// Applied returns the direction of the last committed tick.
func (h Heading) Applied() Direction {
	return h.applied
}

// Pending returns the direction the next tick will commit.
func (h Heading) Pending() Direction {
	return h.pending
}
