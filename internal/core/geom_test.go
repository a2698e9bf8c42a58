package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below lo
		{15, 0, 10, 10}, // above hi
		{0, 0, 10, 0},   // at lo
		{10, 0, 10, 10}, // at hi
		{0, 1, 18, 1},   // board interior, north wall
		{19, 1, 18, 18}, // board interior, south wall
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key      string
		expected Action
	}{
		{"up", ActionNorth},
		{"w", ActionNorth},
		{"W", ActionNorth},
		{"k", ActionNorth},
		{"down", ActionSouth},
		{"j", ActionSouth},
		{"left", ActionWest},
		{"h", ActionWest},
		{"right", ActionEast},
		{"l", ActionEast},
		{"esc", ActionQuit},
		{"x", ActionNone},
		{"enter", ActionNone},
		{"", ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := ActionForKey(tc.key); got != tc.expected {
				t.Errorf("ActionForKey(%q) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionNorth, ActionEast, ActionSouth, ActionWest} {
		if !a.IsDirection() {
			t.Errorf("%v should be a direction", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%v should not be a direction", a)
		}
	}
}
