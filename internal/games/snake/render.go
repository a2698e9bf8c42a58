package snake

import (
	"fmt"

	"github.com/vovakirdan/term-snake/internal/core"
)

// Glyphs used on the board.
const (
	glyphWall = '#'
	glyphHead = 'O'
	glyphBody = 'o'
	glyphFood = '*'
)

// Render draws v into dst: wall, food, snake and a HUD line under the
// board. The board is centered horizontally when dst is wider than it.
func Render(v View, dst *core.Screen) {
	dst.Clear()

	b := v.Board
	if dst.Width() < b.Width || dst.Height() < b.Height+1 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", b.Width, b.Height+1), core.ColorGray)
		return
	}

	ox := (dst.Width() - b.Width) / 2
	dst.DrawFrame(core.NewRect(ox, 0, b.Width, b.Height), glyphWall, core.ColorCyan)

	if b.InInterior(v.Food) {
		dst.SetColored(ox+v.Food.Col, v.Food.Row, glyphFood, core.ColorRed)
	}

	// Draw tail first so the head stays visible on the collision frame.
	for i := len(v.Segments) - 1; i >= 0; i-- {
		seg := v.Segments[i]
		if i == 0 {
			dst.SetColored(ox+seg.Col, seg.Row, glyphHead, core.ColorBrightGreen)
		} else {
			dst.SetColored(ox+seg.Col, seg.Row, glyphBody, core.ColorGreen)
		}
	}

	hud := fmt.Sprintf("Score: %d  Len: %d  Speed: %d  Dir: %c",
		v.Score, len(v.Segments), v.Difficulty, v.Pending.Letter())
	dst.DrawText(ox, b.Height, hud, core.ColorWhite)
}
