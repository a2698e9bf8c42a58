package raw

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/games/snake"
	"github.com/vovakirdan/term-snake/internal/registry"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	s.SetSize(80, 25)
	t.Cleanup(s.Fini)
	return s
}

func testSpec() registry.SessionSpec {
	return registry.SessionSpec{
		Options: snake.Options{Board: snake.DefaultBoard(), Difficulty: 14, Seed: 1},
	}
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Action
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionNorth},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.ActionSouth},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.ActionWest},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.ActionEast},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), core.ActionNorth},
		{"D", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), core.ActionEast},
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), core.ActionSouth},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), core.ActionNone},
		{"f1", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keyAction(tc.ev); got != tc.want {
				t.Errorf("keyAction(%s) = %v, expected %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestEventInputPoll(t *testing.T) {
	events := make(chan tcell.Event, 2)
	in := newEventInput(events, nil, time.Millisecond)

	if a, ok := in.Poll(); ok || a != core.ActionNone {
		t.Errorf("Poll() on empty channel = %v, %v", a, ok)
	}

	events <- tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	if a, ok := in.Poll(); !ok || a != core.ActionWest {
		t.Errorf("Poll() = %v, %v; expected west", a, ok)
	}

	events <- tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)
	if _, ok := in.Poll(); ok {
		t.Error("Unmapped key should not be reported")
	}
}

func TestDisplayBlit(t *testing.T) {
	s := newSimScreen(t)
	d := &display{screen: s, buf: core.NewScreen(80, 25)}

	d.render(snake.View{
		Board:    snake.DefaultBoard(),
		Segments: []snake.Coordinate{{Row: 5, Col: 5}, {Row: 6, Col: 5}},
		Food:     snake.Coordinate{Row: 2, Col: 2},
	})

	ox := (80 - 40) / 2
	checks := []struct {
		x, y  int
		r     rune
		color core.Color
	}{
		{ox, 0, '#', core.ColorCyan},
		{ox + 5, 5, 'O', core.ColorBrightGreen},
		{ox + 5, 6, 'o', core.ColorGreen},
		{ox + 2, 2, '*', core.ColorRed},
	}
	for _, c := range checks {
		r, _, style, _ := s.GetContent(c.x, c.y)
		if r != c.r {
			t.Errorf("Cell (%d,%d) = %q, expected %q", c.x, c.y, r, c.r)
		}
		if style != styleFor(c.color) {
			t.Errorf("Cell (%d,%d) has wrong style", c.x, c.y)
		}
	}
}

func TestDisplayResizeRedraws(t *testing.T) {
	s := newSimScreen(t)
	d := &display{screen: s, buf: core.NewScreen(80, 25)}
	d.render(snake.View{Board: snake.DefaultBoard(), Segments: []snake.Coordinate{{Row: 5, Col: 5}}})

	s.SetSize(100, 30)
	d.resize()

	if d.buf.Width() != 100 || d.buf.Height() != 30 {
		t.Fatalf("Buffer = %dx%d, expected 100x30", d.buf.Width(), d.buf.Height())
	}
	if r, _, _, _ := s.GetContent(30, 0); r != '#' {
		t.Errorf("Wall not redrawn at new offset, got %q", r)
	}
}

func TestPlayQuitsOnEsc(t *testing.T) {
	s := newSimScreen(t)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	var ends int
	spec := testSpec()
	spec.Hooks.End = func(snake.Result) { ends++ }

	r, err := play(context.Background(), s, spec, time.Now)
	if err != nil {
		t.Fatalf("play() failed: %v", err)
	}
	if r.Reason != snake.ReasonQuit {
		t.Errorf("Reason = %q, expected quit", r.Reason)
	}
	if ends != 1 {
		t.Errorf("End hook fired %d times, expected 1", ends)
	}
	if ch, _, _, _ := s.GetContent(20, 0); ch != '#' {
		t.Errorf("Initial frame not drawn, got %q at wall", ch)
	}
}

func TestPlayRunsIntoWall(t *testing.T) {
	s := newSimScreen(t)

	// Difficulty 14 ticks every 20ms; heading north the head reaches the
	// wall after ten ticks.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r, err := play(ctx, s, testSpec(), time.Now)
	if err != nil {
		t.Fatalf("play() failed: %v", err)
	}
	if r.Reason != snake.ReasonCollision {
		t.Errorf("Reason = %q, expected collision", r.Reason)
	}
	if r.Ticks != 10 {
		t.Errorf("Ticks = %d, expected 10", r.Ticks)
	}
}

func TestPlayCancelledContext(t *testing.T) {
	s := newSimScreen(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := play(ctx, s, testSpec(), time.Now)
	if err != nil {
		t.Fatalf("play() failed: %v", err)
	}
	if r.Reason != snake.ReasonQuit || r.Ticks != 0 {
		t.Errorf("Result = %+v, expected immediate quit", r)
	}
}

func TestPlayRejectsBadBoard(t *testing.T) {
	s := newSimScreen(t)
	spec := testSpec()
	spec.Options.Board = snake.Board{Height: 3, Width: 3}

	if _, err := play(context.Background(), s, spec, time.Now); err == nil {
		t.Error("Expected error for a board too small for the snake")
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("raw") {
		t.Fatal("raw frontend not registered")
	}
	fe, err := registry.Create("raw")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if fe.ID() != "raw" {
		t.Errorf("ID() = %q", fe.ID())
	}
}
