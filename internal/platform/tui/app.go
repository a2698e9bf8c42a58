package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/games/snake"
	"github.com/vovakirdan/term-snake/internal/registry"
	"github.com/vovakirdan/term-snake/internal/storage"
)

// AppOptions configure the menu-driven application.
type AppOptions struct {
	Config  config.SnakeConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // May be nil
	Logger  *log.Logger
	Hooks   snake.Hooks // Extra collaborators for every session
}

type appMode int

const (
	modeMenu appMode = iota
	modeGame
	modePrefs
)

// AppModel runs the full flow: menu -> game -> menu, with the preferences
// screen reachable from the menu. It is used locally and for SSH sessions.
type AppModel struct {
	opts     AppOptions
	mode     appMode
	menu     MenuModel
	game     GameModel
	prefs    PrefsModel
	quitting bool
	now      func() time.Time
}

// NewAppModel creates the application at its start menu. The slider starts
// at the remembered difficulty, or the configured default.
func NewAppModel(opts AppOptions) (AppModel, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	difficulty := opts.Config.Difficulty.Default
	if opts.Store != nil {
		d, err := opts.Store.LastDifficulty(difficulty)
		if err != nil {
			opts.Logger.Warn("could not read last difficulty", "error", err)
		}
		difficulty = d
	}

	m := AppModel{opts: opts, now: time.Now}
	menuModel, err := m.newMenu(difficulty)
	if err != nil {
		return AppModel{}, err
	}
	m.menu = menuModel
	return m, nil
}

func (m AppModel) newMenu(difficulty int) (MenuModel, error) {
	rt := m.opts.Runtime
	return NewMenuModel(m.opts.Config.Difficulty.SliderLength, difficulty, rt.ScreenW, rt.ScreenH)
}

// Init initializes the application.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
		if m.mode != modeMenu {
			next, _ := m.menu.Update(wsm)
			m.menu = next.(MenuModel)
		}
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modePrefs:
		return m.updatePrefs(msg)
	}
	return m.updateMenu(msg)
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsPrefs():
		m.menu.showPrefs = false
		m.prefs = NewPrefsModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.mode = modePrefs
		return m, m.prefs.Init()

	case m.menu.WantsPlay():
		m.menu.play = false
		return m.startGame(m.menu.Difficulty())
	}
	return m, cmd
}

// startGame remembers the difficulty and begins a session.
func (m AppModel) startGame(difficulty int) (tea.Model, tea.Cmd) {
	if m.opts.Store != nil {
		if err := m.opts.Store.SaveLastDifficulty(difficulty); err != nil {
			m.opts.Logger.Warn("could not save difficulty", "error", err)
		}
	}

	cfg := m.opts.Config
	spec := registry.SessionSpec{
		Runtime: m.opts.Runtime,
		Options: snake.Options{
			Board:        cfg.GameBoard(),
			Difficulty:   difficulty,
			Seed:         m.opts.Runtime.Seed,
			FoodAttempts: cfg.Food.MaxAttempts,
		},
		Hooks:  m.opts.Hooks,
		Logger: m.opts.Logger,
	}
	spec.Runtime.PollRate = cfg.Loop.PollRate

	game, err := NewGameModel(spec, m.now())
	if err != nil {
		// The configuration was validated at load time.
		m.opts.Logger.Error("could not start session", "error", err)
		return m, nil
	}
	m.game = game
	m.mode = modeGame
	return m, m.game.Init()
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}

	if m.game.Done() {
		m.menu = m.menu.WithResult(m.game.Result())
		m.mode = modeMenu
		return m, nil
	}
	return m, cmd
}

func (m AppModel) updatePrefs(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.prefs.Update(msg)
	if pm, ok := next.(PrefsModel); ok {
		m.prefs = pm
	}

	switch {
	case m.prefs.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.prefs.IsGoingBack():
		m.mode = modeMenu
		return m, nil
	}
	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.game.View()
	case modePrefs:
		return m.prefs.View()
	}
	return m.menu.View()
}

// RunApp runs the application on the local terminal.
func RunApp(opts AppOptions) error {
	model, err := NewAppModel(opts)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
