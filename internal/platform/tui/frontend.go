package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-snake/internal/games/snake"
	"github.com/vovakirdan/term-snake/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// Frontend plays a single session in a Bubble Tea program.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "tui" }

// Title returns the frontend description.
func (Frontend) Title() string { return "Bubble Tea (alt screen, lipgloss colors)" }

// Play runs one session on the local terminal until it ends.
func (Frontend) Play(ctx context.Context, spec registry.SessionSpec) (snake.Result, error) {
	model, err := NewGameModel(spec, time.Now())
	if err != nil {
		return snake.Result{}, err
	}
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Send(quitMsg{})
		case <-done:
		}
	}()

	final, err := p.Run()
	if err != nil {
		return model.Result(), fmt.Errorf("tui: program failed: %w", err)
	}
	if gm, ok := final.(GameModel); ok {
		return gm.Result(), nil
	}
	return model.Result(), nil
}
