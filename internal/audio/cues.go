// Package audio plays short sound cues for game events through
// gopxl/beep. When audio is disabled or no output device is available the
// game uses Nop, so sound never affects the simulation.
package audio

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/games/snake"
)

// Cues are the game events that make a sound.
type Cues interface {
	Eat()
	Crash()
	Close() error
}

// Nop is a silent Cues.
type Nop struct{}

func (Nop) Eat()         {}
func (Nop) Crash()       {}
func (Nop) Close() error { return nil }

// New returns speaker-backed cues when enabled, falling back to Nop with a
// logged warning if the speaker cannot be opened.
func New(enabled bool, logger *log.Logger) Cues {
	if !enabled {
		return Nop{}
	}
	sp, err := NewSpeaker()
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return Nop{}
	}
	return sp
}

// Hooks returns session hooks that play c's cues: Eat after eating and
// Crash when a session ends in a collision.
func Hooks(c Cues) snake.Hooks {
	return snake.Hooks{
		Eat: c.Eat,
		End: func(r snake.Result) {
			if r.Reason == snake.ReasonCollision {
				c.Crash()
			}
		},
	}
}
