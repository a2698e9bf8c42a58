// Package tui provides the Bubble Tea frontend for snake: the start menu,
// the game screen and the SSH server that serves both.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pollMsg is one scheduler iteration for a game model. The session ticks on
// a poll only once its interval has elapsed; most polls do nothing.
type pollMsg struct {
	at      time.Time
	session uint64
}

// pollCmd returns a Bubble Tea command that sends a pollMsg for session
// after one poll period at the given rate (polls per second).
func pollCmd(pollRate int, session uint64) tea.Cmd {
	interval := time.Second / time.Duration(max(pollRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return pollMsg{at: t, session: session}
	})
}
