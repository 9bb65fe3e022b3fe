package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/blocks"
	"github.com/plus3/blockfall/input"
)

// mouseID stands in for the left mouse button so clicks and drags work
// like touches.
const mouseID = -1

// Touch turns taps and swipes into block commands.
type Touch struct {
	touches *input.Touches
	ids     []ebiten.TouchID
}

func NewTouch() *Touch {
	return &Touch{touches: input.NewTouches()}
}

// Poll forwards this frame's finished gestures to c. While the game is over
// any tap restarts it.
func (t *Touch) Poll(c blocks.Controller, over bool) {
	t.ids = inpututil.AppendJustPressedTouchIDs(t.ids[:0])
	for _, id := range t.ids {
		x, y := ebiten.TouchPosition(id)
		t.touches.Begin(int(id), float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		t.touches.Begin(mouseID, float64(x), float64(y))
	}

	t.ids = inpututil.AppendJustReleasedTouchIDs(t.ids[:0])
	for _, id := range t.ids {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		t.end(c, int(id), x, y, over)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		t.end(c, mouseID, x, y, over)
	}
}

func (t *Touch) end(c blocks.Controller, id, x, y int, over bool) {
	cmd, ok := t.touches.End(id, float64(x), float64(y))
	if !ok {
		return
	}
	if over {
		c.Restart()
		return
	}
	c.Apply(cmd)
}
