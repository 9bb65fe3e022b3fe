// Package tui is a terminal frontend for the block game built on tcell.
package tui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/blocks"
)

// The well is drawn inside a one cell border with every grid column two
// terminal columns wide.
const (
	wellX     = 1
	wellY     = 1
	cellWidth = 2
	hudGap    = 3
)

var (
	blockGlyph = []rune("[]")
	ghostGlyph = []rune("::")
	emptyGlyph = []rune(" .")
)

var blockColors = map[blocks.Color]tcell.Color{
	blocks.Cyan:   tcell.ColorAqua,
	blocks.Yellow: tcell.ColorYellow,
	blocks.Purple: tcell.ColorPurple,
	blocks.Green:  tcell.ColorLime,
	blocks.Red:    tcell.ColorRed,
	blocks.Blue:   tcell.ColorBlue,
	blocks.Orange: tcell.ColorOrange,
}

// Renderer draws block game snapshots onto a tcell screen.
type Renderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	styles *intmap.Map[blocks.Color, tcell.Style]
	border tcell.Style
	text   tcell.Style
	ghost  tcell.Style
	empty  tcell.Style
}

var _ blocks.Renderer = (*Renderer)(nil)

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		styles: intmap.New[blocks.Color, tcell.Style](len(blockColors)),
		border: tcell.StyleDefault.Foreground(tcell.ColorGray),
		text:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		ghost:  tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
		empty:  tcell.StyleDefault.Foreground(tcell.ColorDimGray),
	}
}

func (r *Renderer) style(c blocks.Color) tcell.Style {
	if st, ok := r.styles.Get(c); ok {
		return st
	}
	fg, ok := blockColors[c]
	if !ok {
		fg = tcell.ColorWhite
	}
	st := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(fg)
	r.styles.Put(c, st)
	return st
}

func (r *Renderer) Render(s blocks.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.screen.Clear()
	if s.Grid == nil {
		r.screen.Show()
		return
	}
	w, h := s.Grid.Width(), s.Grid.Height()

	r.drawBorder(w, h)
	for y, row := range s.Grid.Rows() {
		for x, c := range row {
			if c == blocks.Empty {
				r.put(x, y, emptyGlyph, r.empty)
			} else {
				r.put(x, y, blockGlyph, r.style(c))
			}
		}
	}

	if s.Active != nil {
		if s.Ghost > 0 {
			for c := range s.Active.Cells() {
				if y := c.Y + s.Ghost; y >= 0 {
					r.put(c.X, y, ghostGlyph, r.ghost)
				}
			}
		}
		st := r.style(s.Active.Color)
		for c := range s.Active.Cells() {
			if c.Y >= 0 {
				r.put(c.X, c.Y, blockGlyph, st)
			}
		}
	}

	hx := wellX + w*cellWidth + 1 + hudGap
	r.drawText(hx, wellY, "SCORE")
	r.drawText(hx, wellY+1, fmt.Sprintf("%d", s.Score.Current))
	r.drawText(hx, wellY+3, "HIGH SCORE")
	r.drawText(hx, wellY+4, fmt.Sprintf("%d", s.Score.Best))
	r.drawText(hx, wellY+6, "LINES")
	r.drawText(hx, wellY+7, fmt.Sprintf("%d", s.LinesCleared))

	if s.Phase == blocks.GameOver {
		r.drawText(hx, wellY+h/2, "GAME OVER")
		r.drawText(hx, wellY+h/2+1, "r to restart, q to quit")
	} else {
		r.drawText(hx, wellY+h-2, "arrows move, up rotates")
		r.drawText(hx, wellY+h-1, "r restarts, q quits")
	}

	r.screen.Show()
}

func (r *Renderer) drawBorder(w, h int) {
	right := wellX + w*cellWidth
	bottom := wellY + h
	for y := 0; y <= bottom; y++ {
		r.screen.SetContent(wellX-1, y, '|', nil, r.border)
		r.screen.SetContent(right, y, '|', nil, r.border)
	}
	for x := wellX - 1; x <= right; x++ {
		r.screen.SetContent(x, bottom, '-', nil, r.border)
	}
	r.screen.SetContent(wellX-1, bottom, '+', nil, r.border)
	r.screen.SetContent(right, bottom, '+', nil, r.border)
}

func (r *Renderer) put(x, y int, glyph []rune, st tcell.Style) {
	sx := wellX + x*cellWidth
	sy := wellY + y
	for i, ch := range glyph {
		r.screen.SetContent(sx+i, sy, ch, nil, st)
	}
}

func (r *Renderer) drawText(x, y int, text string) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, r.text)
	}
}
