package tui

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/games/snake"
	"github.com/vovakirdan/term-snake/internal/registry"
)

// sessionSeq numbers game models so that polls scheduled by a finished
// session are not picked up by the next one.
var sessionSeq atomic.Uint64

// quitMsg ends the running session as if the player pressed quit.
type quitMsg struct{}

// GameModel is the Bubble Tea model for one snake session.
//
// Keys are submitted to the session as they arrive; the session's
// interval gate is checked on every poll. Together these are the
// poll-then-maybe-tick iteration, driven by Bubble Tea's event loop instead
// of a busy wait.
type GameModel struct {
	id         uint64
	session    *snake.Session
	screen     *core.Screen
	hooks      snake.Hooks
	logger     *log.Logger
	keys       GameKeyMap
	help       help.Model
	pollRate   int
	standalone bool // Quit the program when the session ends
	ended      bool
}

// NewGameModel starts a session at now. A zero seed is replaced with one
// derived from now.
func NewGameModel(spec registry.SessionSpec, now time.Time) (GameModel, error) {
	opts := spec.Options
	if opts.Seed == 0 {
		opts.Seed = now.UnixNano()
	}

	session, err := snake.NewSession(opts, now)
	if err != nil {
		return GameModel{}, err
	}

	logger := spec.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rt := spec.Runtime
	m := GameModel{
		id:       sessionSeq.Add(1),
		session:  session,
		screen:   core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 0)),
		hooks:    spec.Hooks,
		logger:   logger,
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
		pollRate: rt.PollRate,
	}
	m.help.Width = rt.ScreenW

	logger.Info("session start",
		"difficulty", session.View().Difficulty,
		"interval", session.Interval(),
		"height", opts.Board.Height,
		"width", opts.Board.Width,
		"seed", opts.Seed,
	)

	m.hooks.FireRender(session.View())
	if session.Terminated() {
		// A board with no room for food ends before the first tick.
		m.ended = true
		m.end()
	}
	return m, nil
}

// Init starts polling.
func (m GameModel) Init() tea.Cmd {
	if m.ended {
		if m.standalone {
			return tea.Quit
		}
		return nil
	}
	return m.poll()
}

func (m GameModel) poll() tea.Cmd {
	return pollCmd(m.pollRate, m.id)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.ended {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a := gameAction(msg); a == core.ActionQuit || a.IsDirection() {
			m.session.Submit(a)
		}
		if m.session.Terminated() {
			return m.finish()
		}
		return m, nil

	case quitMsg:
		m.session.Submit(core.ActionQuit)
		return m.finish()

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case pollMsg:
		if msg.session != m.id {
			return m, nil
		}
		return m.handlePoll(msg.at)
	}

	return m, nil
}

// handlePoll runs one scheduler iteration.
func (m GameModel) handlePoll(now time.Time) (tea.Model, tea.Cmd) {
	res := m.session.Advance(now)
	if res.Ticked {
		if res.Ate {
			m.hooks.FireEat()
		}
		m.hooks.FireRender(m.session.View())
	}
	if m.session.Terminated() {
		return m.finish()
	}
	return m, m.poll()
}

// finish reports the result once and stops polling.
func (m GameModel) finish() (tea.Model, tea.Cmd) {
	m.ended = true
	m.end()
	if m.standalone {
		return m, tea.Quit
	}
	return m, nil
}

func (m GameModel) end() {
	r := m.session.Result()
	m.logger.Info("session end",
		"reason", r.Reason,
		"score", r.Score,
		"length", r.Length,
		"ticks", r.Ticks,
	)
	m.hooks.FireEnd(r)
}

// View renders the board, HUD and key help.
func (m GameModel) View() string {
	if m.ended && m.standalone {
		return ""
	}
	snake.Render(m.session.View(), m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Done reports whether the session has ended.
func (m GameModel) Done() bool {
	return m.ended
}

// Result returns the session result so far.
func (m GameModel) Result() snake.Result {
	return m.session.Result()
}
