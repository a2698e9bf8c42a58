package menu

import "testing"

func newMain(t *testing.T, difficulty int) *Main {
	t.Helper()
	m, err := NewMain(DefaultSliderLength, difficulty)
	if err != nil {
		t.Fatalf("NewMain() failed: %v", err)
	}
	return m
}

func TestNewRejectsBadItems(t *testing.T) {
	if _, err := New(); err == nil {
		t.Error("Expected error for empty menu")
	}
	if _, err := New(Slider("x", 0, 0)); err == nil {
		t.Error("Expected error for zero-length slider")
	}
}

func TestNewClampsSliderValue(t *testing.T) {
	tests := []struct {
		value    int
		expected int
	}{
		{-4, 0},
		{0, 0},
		{7, 7},
		{14, 14},
		{99, 14},
	}
	for _, tc := range tests {
		m := newMain(t, tc.value)
		if got := m.CurrentDifficulty(); got != tc.expected {
			t.Errorf("NewMain(difficulty=%d) slider = %d, expected %d", tc.value, got, tc.expected)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected Key
	}{
		{"up", KeyUp},
		{"k", KeyUp},
		{"down", KeyDown},
		{"left", KeyLeft},
		{"right", KeyRight},
		{"enter", KeyEnter},
		{"esc", KeyEsc},
		{"x", KeyNone},
		{"", KeyNone},
	}
	for _, tc := range tests {
		if got := KeyFromName(tc.name); got != tc.expected {
			t.Errorf("KeyFromName(%q) = %v, expected %v", tc.name, got, tc.expected)
		}
	}
}

func TestBrowsingSelectionIsBounded(t *testing.T) {
	m := newMain(t, 1)

	if e := m.HandleKey(KeyUp); e.Type != EventNavigate || e.Index != 0 {
		t.Errorf("Up at top = %+v, expected navigate to 0", e)
	}
	for range 5 {
		m.HandleKey(KeyDown)
	}
	if m.Selected() != MainExit {
		t.Errorf("Selected = %d, expected last item %d", m.Selected(), MainExit)
	}
	m.HandleKey(KeyUp)
	if m.Selected() != MainDifficulty {
		t.Errorf("Selected = %d, expected %d", m.Selected(), MainDifficulty)
	}
}

func TestBrowsingEnter(t *testing.T) {
	tests := []struct {
		name     string
		downs    int
		expected EventType
		state    State
	}{
		{"play", 0, EventTextReturn, StateBrowsing},
		{"difficulty", 1, EventSliderEngage, StateEditing},
		{"exit", 2, EventExit, StateBrowsing},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newMain(t, 3)
			for range tc.downs {
				m.HandleKey(KeyDown)
			}
			e := m.HandleKey(KeyEnter)
			if e.Type != tc.expected {
				t.Errorf("Enter = %v, expected %v", e.Type, tc.expected)
			}
			if e.Index != tc.downs {
				t.Errorf("Event index = %d, expected %d", e.Index, tc.downs)
			}
			if m.State() != tc.state {
				t.Errorf("State = %v, expected %v", m.State(), tc.state)
			}
		})
	}
}

func TestWantsPlay(t *testing.T) {
	m := newMain(t, 1)
	if !m.WantsPlay(m.HandleKey(KeyEnter)) {
		t.Error("Enter on Play should start a session")
	}
	m.HandleKey(KeyDown)
	if m.WantsPlay(m.HandleKey(KeyEnter)) {
		t.Error("Engaging the slider must not start a session")
	}
}

func TestEscWhileBrowsingExits(t *testing.T) {
	m := newMain(t, 1)
	m.HandleKey(KeyDown)
	if e := m.HandleKey(KeyEsc); e.Type != EventExit {
		t.Errorf("Esc = %v, expected exit", e.Type)
	}
}

func TestSliderMoveIsBounded(t *testing.T) {
	m, err := New(Slider("s", 3, 1))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	m.HandleKey(KeyEnter)

	steps := []struct {
		key      Key
		expected int
	}{
		{KeyLeft, 0},
		{KeyLeft, 0},
		{KeyRight, 1},
		{KeyRight, 2},
		{KeyRight, 3},
		{KeyRight, 3},
	}
	for i, st := range steps {
		e := m.HandleKey(st.key)
		if e.Type != EventSliderMove {
			t.Fatalf("Step %d: event %v, expected slider_move", i, e.Type)
		}
		if e.Value != st.expected {
			t.Errorf("Step %d: value %d, expected %d", i, e.Value, st.expected)
		}
	}
}

func TestSliderCommitAndRevert(t *testing.T) {
	m := newMain(t, 5)
	m.HandleKey(KeyDown)

	// Commit with enter.
	m.HandleKey(KeyEnter)
	m.HandleKey(KeyRight)
	m.HandleKey(KeyRight)
	e := m.HandleKey(KeyEnter)
	if e.Type != EventSliderDisengage || e.Value != 7 {
		t.Errorf("Commit = %+v, expected disengage at 7", e)
	}
	if m.State() != StateBrowsing || m.CurrentDifficulty() != 7 {
		t.Errorf("After commit: state %v difficulty %d", m.State(), m.CurrentDifficulty())
	}

	// Revert with esc.
	m.HandleKey(KeyEnter)
	m.HandleKey(KeyLeft)
	m.HandleKey(KeyLeft)
	m.HandleKey(KeyLeft)
	if m.CurrentDifficulty() != 4 {
		t.Errorf("While editing difficulty = %d, expected 4", m.CurrentDifficulty())
	}
	e = m.HandleKey(KeyEsc)
	if e.Type != EventSliderDisengage || e.Value != 7 {
		t.Errorf("Revert = %+v, expected disengage at 7", e)
	}
	if m.State() != StateBrowsing || m.CurrentDifficulty() != 7 {
		t.Errorf("After revert: state %v difficulty %d", m.State(), m.CurrentDifficulty())
	}
}

func TestEditingIgnoresVerticalKeys(t *testing.T) {
	m := newMain(t, 2)
	m.HandleKey(KeyDown)
	m.HandleKey(KeyEnter)

	for _, k := range []Key{KeyUp, KeyDown, KeyNone} {
		if e := m.HandleKey(k); e.Type != EventNone {
			t.Errorf("Key %v while editing = %v, expected none", k, e.Type)
		}
	}
	if m.Selected() != MainDifficulty || m.State() != StateEditing {
		t.Errorf("Selection %d state %v changed while editing", m.Selected(), m.State())
	}
}

func TestSetValue(t *testing.T) {
	m := newMain(t, 0)
	m.SetValue(MainDifficulty, 9)
	if m.CurrentDifficulty() != 9 {
		t.Errorf("CurrentDifficulty = %d, expected 9", m.CurrentDifficulty())
	}
	m.SetValue(MainDifficulty, 50)
	if m.CurrentDifficulty() != DefaultSliderLength {
		t.Errorf("CurrentDifficulty = %d, expected clamp to %d", m.CurrentDifficulty(), DefaultSliderLength)
	}
	m.SetValue(MainPlay, 3)
	if m.Item(MainPlay).Value != 0 {
		t.Error("SetValue must ignore non-slider items")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventSliderEngage.String() != "slider_engage" {
		t.Errorf("String() = %q", EventSliderEngage.String())
	}
	if EventType(42).String() != "event(42)" {
		t.Errorf("String() = %q", EventType(42).String())
	}
}
