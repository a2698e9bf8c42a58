package raw

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-snake/internal/core"
)

// pollWait bounds how long one poll waits for an event. It keeps the busy
// loop from spinning a core while staying far below the shortest tick.
const pollWait = 2 * time.Millisecond

// eventInput is a snake.InputSource over a channel of tcell events.
type eventInput struct {
	events <-chan tcell.Event
	disp   *display
	wait   time.Duration
	timer  *time.Timer
}

func newEventInput(events <-chan tcell.Event, disp *display, wait time.Duration) *eventInput {
	t := time.NewTimer(wait)
	t.Stop()
	return &eventInput{events: events, disp: disp, wait: wait, timer: t}
}

// Poll returns the next key action, waiting at most e.wait for one.
// Resize events redraw the last frame and yield nothing.
func (e *eventInput) Poll() (core.Action, bool) {
	e.timer.Reset(e.wait)
	defer e.timer.Stop()

	select {
	case ev := <-e.events:
		switch ev := ev.(type) {
		case *tcell.EventKey:
			a := keyAction(ev)
			return a, a != core.ActionNone
		case *tcell.EventResize:
			e.disp.resize()
		}
	case <-e.timer.C:
	}
	return core.ActionNone, false
}

func (e *eventInput) stop() {
	e.timer.Stop()
}

// keyAction maps a tcell key to a session action.
func keyAction(ev *tcell.EventKey) core.Action {
	name := keyName(ev)
	switch name {
	case "ctrl+c", "q":
		return core.ActionQuit
	}
	return core.ActionForKey(name)
}

// keyName returns the key name core.ActionForKey understands.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}
