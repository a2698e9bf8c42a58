// Package spectate streams a running snake session to websocket watchers.
// The hub is fed from the session's render hook and never blocks it: each
// watcher has a small send queue and frames that do not fit are dropped.
package spectate

import (
	"encoding/json"

	"github.com/vovakirdan/term-snake/internal/games/snake"
)

// Cell is a board position on the wire.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Frame is one JSON message sent to watchers.
type Frame struct {
	Tick       uint64 `json:"tick"`
	Segments   []Cell `json:"segments"` // Head first
	Food       Cell   `json:"food"`
	Height     int    `json:"height"`
	Width      int    `json:"width"`
	Score      int    `json:"score"`
	Difficulty int    `json:"difficulty"`
	Reason     string `json:"reason,omitempty"`
}

// FrameFromView converts a session view to its wire form.
func FrameFromView(v snake.View) Frame {
	segs := make([]Cell, len(v.Segments))
	for i, s := range v.Segments {
		segs[i] = Cell{Row: s.Row, Col: s.Col}
	}
	return Frame{
		Tick:       v.Ticks,
		Segments:   segs,
		Food:       Cell{Row: v.Food.Row, Col: v.Food.Col},
		Height:     v.Board.Height,
		Width:      v.Board.Width,
		Score:      v.Score,
		Difficulty: v.Difficulty,
		Reason:     string(v.Reason),
	}
}

func encodeFrame(v snake.View) ([]byte, error) {
	return json.Marshal(FrameFromView(v))
}
