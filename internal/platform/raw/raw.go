// Package raw is a tcell frontend that runs the snake loop directly: one
// goroutine drains terminal events into a channel and the session loop
// polls that channel on every iteration.
package raw

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/games/snake"
	"github.com/vovakirdan/term-snake/internal/registry"
)

func init() {
	registry.Register("raw", func() registry.Frontend { return Frontend{} })
}

// Frontend plays a session on a tcell screen.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "raw" }

// Title returns the frontend description.
func (Frontend) Title() string { return "tcell busy-poll loop" }

// Play opens the terminal and runs one session until it ends.
func (Frontend) Play(ctx context.Context, spec registry.SessionSpec) (snake.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return snake.Result{}, fmt.Errorf("raw: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return snake.Result{}, fmt.Errorf("raw: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	return play(ctx, screen, spec, time.Now)
}

// play runs a session on an initialised screen. The caller owns the screen
// and must Fini it to stop the event goroutine.
func play(ctx context.Context, screen tcell.Screen, spec registry.SessionSpec, clock snake.Clock) (snake.Result, error) {
	logger := spec.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	opts := spec.Options
	start := clock()
	if opts.Seed == 0 {
		opts.Seed = start.UnixNano()
	}
	session, err := snake.NewSession(opts, start)
	if err != nil {
		return snake.Result{}, err
	}

	logger.Info("session start",
		"frontend", "raw",
		"difficulty", session.View().Difficulty,
		"interval", session.Interval(),
		"seed", opts.Seed,
	)

	done := make(chan struct{})
	defer close(done)

	w, h := screen.Size()
	d := &display{screen: screen, buf: core.NewScreen(w, h)}
	in := newEventInput(pumpEvents(screen, done), d, pollWait)
	defer in.stop()

	hooks := snake.Join(snake.Hooks{Render: d.render}, spec.Hooks)
	r := snake.Run(ctx, session, in, clock, hooks)

	logger.Info("session end",
		"reason", r.Reason,
		"score", r.Score,
		"length", r.Length,
		"ticks", r.Ticks,
	)
	return r, nil
}

// pumpEvents forwards screen events until the screen is finalised or done
// is closed.
func pumpEvents(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}
