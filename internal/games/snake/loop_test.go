package snake

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/term-snake/internal/core"
)

// fakeClock advances by step on every read.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

// scriptedInput returns queued actions in order, then nothing.
type scriptedInput struct {
	actions []core.Action
	polls   int
}

func (s *scriptedInput) Poll() (core.Action, bool) {
	s.polls++
	if len(s.actions) == 0 {
		return core.ActionNone, false
	}
	a := s.actions[0]
	s.actions = s.actions[1:]
	return a, true
}

func TestRunEndsOnQuit(t *testing.T) {
	s := newTestSession(t, 0)
	clock := &fakeClock{now: testStart, step: 10 * time.Millisecond}
	in := &scriptedInput{actions: []core.Action{core.ActionNone, core.ActionEast, core.ActionQuit}}

	var renders, ends int
	res := Run(context.Background(), s, in, clock.Now, Hooks{
		Render: func(View) { renders++ },
		End:    func(Result) { ends++ },
	})

	if res.Reason != ReasonQuit {
		t.Errorf("Reason = %q, expected quit", res.Reason)
	}
	if in.polls != 3 {
		t.Errorf("Polls = %d, expected 3", in.polls)
	}
	if renders != 1 {
		t.Errorf("Renders = %d, expected only the initial frame", renders)
	}
	if ends != 1 {
		t.Errorf("End hook fired %d times, expected 1", ends)
	}
}

func TestRunTicksUntilWall(t *testing.T) {
	s := newTestSession(t, 14) // 20ms
	clock := &fakeClock{now: testStart, step: 5 * time.Millisecond}
	in := InputFunc(func() (core.Action, bool) { return core.ActionNone, false })

	var frames []View
	res := Run(context.Background(), s, in, clock.Now, Hooks{
		Render: func(v View) { frames = append(frames, v) },
	})

	// Head starts at row 10 heading north; row 1 is reached after 9 ticks
	// and the 10th tick hits the wall.
	if res.Reason != ReasonCollision {
		t.Fatalf("Reason = %q, expected collision", res.Reason)
	}
	if res.Ticks != 10 {
		t.Errorf("Ticks = %d, expected 10", res.Ticks)
	}
	if len(frames) != 11 {
		t.Errorf("Frames = %d, expected initial frame plus one per tick", len(frames))
	}
}

func TestRunCancelledContextQuits(t *testing.T) {
	s := newTestSession(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	clock := &fakeClock{now: testStart, step: time.Millisecond}
	in := InputFunc(func() (core.Action, bool) { return core.ActionNone, false })

	res := Run(ctx, s, in, clock.Now, Hooks{})
	if res.Reason != ReasonQuit {
		t.Errorf("Reason = %q, expected quit", res.Reason)
	}
	if res.Ticks != 0 {
		t.Errorf("Ticks = %d, expected 0", res.Ticks)
	}
}

func TestRunFiresEatHook(t *testing.T) {
	s := newTestSession(t, 0)
	s.food = Coordinate{9, 20} // directly ahead of the head

	clock := &fakeClock{now: testStart, step: 100 * time.Millisecond}
	polls := 0
	in := InputFunc(func() (core.Action, bool) {
		polls++
		if polls > 3 {
			return core.ActionQuit, true
		}
		return core.ActionNone, false
	})

	eats := 0
	res := Run(context.Background(), s, in, clock.Now, Hooks{Eat: func() { eats++ }})

	if eats != 1 {
		t.Errorf("Eat hook fired %d times, expected 1", eats)
	}
	if res.Score != 1 || res.Length != 4 {
		t.Errorf("Result = %+v, expected score 1 length 4", res)
	}
}

func TestRenderDrawsBoard(t *testing.T) {
	s := newTestSession(t, 2)
	s.food = Coordinate{3, 4}
	screen := core.NewScreen(DefaultWidth, DefaultHeight+1)

	Render(s.View(), screen)

	if got := screen.Get(0, 0); got != glyphWall {
		t.Errorf("Top-left = %q, expected wall", got)
	}
	if got := screen.Get(DefaultWidth-1, DefaultHeight-1); got != glyphWall {
		t.Errorf("Bottom-right = %q, expected wall", got)
	}
	if got := screen.Get(20, 10); got != glyphHead {
		t.Errorf("Head cell = %q, expected %q", got, glyphHead)
	}
	if got := screen.GetCell(20, 11); got.Rune != glyphBody || got.Color != core.ColorGreen {
		t.Errorf("Body cell = %+v, expected green body", got)
	}
	if got := screen.Get(4, 3); got != glyphFood {
		t.Errorf("Food cell = %q, expected %q", got, glyphFood)
	}

	hud := screen.Row(DefaultHeight)
	for _, want := range []string{"Score: 0", "Len: 3", "Speed: 2", "Dir: N"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
}

func TestRenderCentersOnWideScreen(t *testing.T) {
	s := newTestSession(t, 0)
	screen := core.NewScreen(DefaultWidth+20, DefaultHeight+1)

	Render(s.View(), screen)

	if got := screen.Get(10, 0); got != glyphWall {
		t.Errorf("Board left edge = %q, expected wall at x=10", got)
	}
	if got := screen.Get(9, 0); got != ' ' {
		t.Errorf("Margin = %q, expected blank", got)
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := newTestSession(t, 0)
	screen := core.NewScreen(30, 10)

	Render(s.View(), screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Expected a too-small message")
	}
}

func TestJoinHooks(t *testing.T) {
	var calls []string
	a := Hooks{
		Render: func(View) { calls = append(calls, "a.render") },
		End:    func(Result) { calls = append(calls, "a.end") },
	}
	b := Hooks{
		Render: func(View) { calls = append(calls, "b.render") },
		Eat:    func() { calls = append(calls, "b.eat") },
	}

	h := Join(a, Hooks{}, b)
	h.FireRender(View{})
	h.FireEat()
	h.FireEnd(Result{})

	want := []string{"a.render", "b.render", "b.eat", "a.end"}
	if strings.Join(calls, ",") != strings.Join(want, ",") {
		t.Errorf("Calls = %v, expected %v", calls, want)
	}
}
