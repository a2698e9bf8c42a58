package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/term-snake/internal/games/snake"
)

func TestDescribeResult(t *testing.T) {
	tests := []struct {
		r    snake.Result
		want string
	}{
		{
			snake.Result{Reason: snake.ReasonCollision, Score: 4, Length: 7, Ticks: 90, Difficulty: 3},
			"Crashed. Score 4, length 7 after 90 ticks at difficulty 3.",
		},
		{
			snake.Result{Reason: snake.ReasonQuit, Length: 3, Ticks: 2, Difficulty: 1},
			"Quit. Score 0, length 3 after 2 ticks at difficulty 1.",
		},
		{
			snake.Result{Reason: snake.ReasonBoardFull, Score: 5, Length: 8, Ticks: 40},
			"Board full, you win. Score 5, length 8 after 40 ticks at difficulty 0.",
		},
	}

	for _, tc := range tests {
		if got := describeResult(tc.r); got != tc.want {
			t.Errorf("describeResult(%+v) = %q, expected %q", tc.r, got, tc.want)
		}
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"[::1]:22":       "22",
		"noport":         "noport",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", addr, got, want)
		}
	}
}

func TestFrontendsCommandListsRegistered(t *testing.T) {
	var out bytes.Buffer
	frontendsCmd.SetOut(&out)
	frontendsCmd.Run(frontendsCmd, nil)

	for _, want := range []string{"* tui", "raw"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Output missing %q:\n%s", want, out.String())
		}
	}
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	var out bytes.Buffer
	configCmd.SetOut(&out)
	flagResolved = false
	if err := configCmd.RunE(configCmd, nil); err != nil {
		t.Fatalf("config failed: %v", err)
	}
	for _, want := range []string{"board:", "difficulty:", "poll_rate:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Output missing %q:\n%s", want, out.String())
		}
	}
}
