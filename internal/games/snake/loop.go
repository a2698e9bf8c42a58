package snake

import (
	"context"
	"time"

	"github.com/vovakirdan/term-snake/internal/core"
)

// InputSource yields the next pending input without blocking.
// ok is false when nothing is pending.
type InputSource interface {
	Poll() (a core.Action, ok bool)
}

// InputFunc adapts a function to InputSource.
type InputFunc func() (core.Action, bool)

// Poll calls f.
func (f InputFunc) Poll() (core.Action, bool) {
	return f()
}

// Clock returns the current time. Tests inject fake clocks.
type Clock func() time.Time

// Hooks are the collaborators notified by Run. Any field may be nil.
type Hooks struct {
	// Render receives a snapshot once at start and after every committed tick.
	Render func(View)
	// Eat fires after a tick that ate food.
	Eat func()
	// End fires once with the final result.
	End func(Result)
}

// FireRender calls Render if set.
func (h Hooks) FireRender(v View) {
	if h.Render != nil {
		h.Render(v)
	}
}

// FireEat calls Eat if set.
func (h Hooks) FireEat() {
	if h.Eat != nil {
		h.Eat()
	}
}

// FireEnd calls End if set.
func (h Hooks) FireEnd(r Result) {
	if h.End != nil {
		h.End(r)
	}
}

// Join returns hooks that call each of hs in order.
func Join(hs ...Hooks) Hooks {
	return Hooks{
		Render: func(v View) {
			for _, h := range hs {
				h.FireRender(v)
			}
		},
		Eat: func() {
			for _, h := range hs {
				h.FireEat()
			}
		},
		End: func(r Result) {
			for _, h := range hs {
				h.FireEnd(r)
			}
		},
	}
}

// Run drives s until it terminates, polling in every iteration and ticking
// whenever the interval has elapsed. The loop never sleeps; its pace is set
// by how long in.Poll takes. Cancelling ctx counts as a quit.
func Run(ctx context.Context, s *Session, in InputSource, now Clock, hooks Hooks) Result {
	hooks.FireRender(s.View())

	for !s.Terminated() {
		if ctx.Err() != nil {
			s.Submit(core.ActionQuit)
			break
		}

		a, ok := in.Poll()
		if !ok {
			a = core.ActionNone
		}

		res := s.Poll(a, now())
		if res.Ticked {
			if res.Ate {
				hooks.FireEat()
			}
			hooks.FireRender(s.View())
		}
	}

	result := s.Result()
	hooks.FireEnd(result)
	return result
}
