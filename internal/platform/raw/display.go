package raw

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/games/snake"
)

var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorRed:         tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorGreen:       tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:      tcell.StyleDefault.Foreground(tcell.ColorOlive),
	core.ColorCyan:        tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorWhite:       tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorBrightGreen: tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.ColorGray),
}

func styleFor(c core.Color) tcell.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return tcell.StyleDefault
}

// display draws session views through a cell buffer onto a tcell screen.
type display struct {
	screen tcell.Screen
	buf    *core.Screen
	last   snake.View
	drawn  bool
}

// render is the session's render hook.
func (d *display) render(v snake.View) {
	d.last = v
	d.drawn = true
	snake.Render(v, d.buf)
	d.blit()
}

// resize adopts the screen's new size and redraws the last view.
func (d *display) resize() {
	w, h := d.screen.Size()
	d.buf.Resize(w, h)
	d.screen.Sync()
	if d.drawn {
		d.render(d.last)
	}
}

func (d *display) blit() {
	for y := range d.buf.Height() {
		for x := range d.buf.Width() {
			c := d.buf.GetCell(x, y)
			d.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}
	d.screen.Show()
}
