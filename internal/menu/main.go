package menu

// Indices of the main menu entries.
const (
	MainPlay = iota
	MainDifficulty
	MainExit
)

// DefaultSliderLength is the difficulty slider's upper bound. At 14 the
// tick interval reaches its 20ms floor.
const DefaultSliderLength = 14

// Main is the start screen: Play, a Difficulty slider and Exit.
type Main struct {
	*Menu
}

// NewMain builds the main menu with the slider at difficulty.
func NewMain(sliderLength, difficulty int) (*Main, error) {
	m, err := New(
		Text("Play"),
		Slider("Difficulty", sliderLength, difficulty),
		Exit("Exit"),
	)
	if err != nil {
		return nil, err
	}
	return &Main{Menu: m}, nil
}

// CurrentDifficulty returns the difficulty slider's value. While the slider
// is being edited this is the uncommitted value.
func (m *Main) CurrentDifficulty() int {
	return m.Item(MainDifficulty).Value
}

// WantsPlay reports whether e starts a session.
func (m *Main) WantsPlay(e Event) bool {
	return e.Type == EventTextReturn && e.Index == MainPlay
}
