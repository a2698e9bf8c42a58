package snake

// Body is the snake's chain of segments, head first. It owns its
// coordinates exclusively: constructors copy their input and Segments
// returns a copy, so nothing outside can alias a live segment.
type Body struct {
	segs []Coordinate // Head at index 0
}

// NewBody creates a chain from a head and the segments behind it.
// The signature guarantees the chain is never empty.
func NewBody(head Coordinate, tail ...Coordinate) *Body {
	segs := make([]Coordinate, 0, len(tail)+1)
	segs = append(segs, head)
	segs = append(segs, tail...)
	return &Body{segs: segs}
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segs)
}

// Head returns the first segment's coordinate.
func (b *Body) Head() Coordinate {
	return b.segs[0]
}

// Tail returns the last segment's coordinate.
func (b *Body) Tail() Coordinate {
	return b.segs[len(b.segs)-1]
}

// Segments returns a copy of all coordinates, head first.
func (b *Body) Segments() []Coordinate {
	out := make([]Coordinate, len(b.segs))
	copy(out, b.segs)
	return out
}

// Shift moves the whole chain one step: the head takes newHead and every
// other segment takes the coordinate of the segment ahead of it. One pass
// from head to tail carries the previous value forward. Length is unchanged.
func (b *Body) Shift(newHead Coordinate) {
	carry := newHead
	for i := range b.segs {
		b.segs[i], carry = carry, b.segs[i]
	}
}

// Grow links a new head segment at newHead in front of the current head.
// No existing coordinate changes; length increases by one.
func (b *Body) Grow(newHead Coordinate) {
	b.segs = append(b.segs, Coordinate{})
	copy(b.segs[1:], b.segs[:len(b.segs)-1])
	b.segs[0] = newHead
}

// Occupies reports whether any segment sits on c.
func (b *Body) Occupies(c Coordinate) bool {
	for _, seg := range b.segs {
		if seg == c {
			return true
		}
	}
	return false
}

// HeadCollides reports whether the head shares a cell with any other
// segment. Called after a move, this is the session's only death check.
func (b *Body) HeadCollides() bool {
	return IsCollision(b.segs[1:], b.segs[0])
}
