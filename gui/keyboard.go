package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/blocks"
	"github.com/plus3/blockfall/input"
)

var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	downKeys    = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	rotateKeys  = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyX}
	restartKeys = []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// Keyboard maps keys to block commands. Held movement keys repeat.
type Keyboard struct {
	left  *input.Repeat
	right *input.Repeat
	down  *input.Repeat
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		left:  input.NewRepeat(),
		right: input.NewRepeat(),
		down:  input.NewRepeat(),
	}
}

// Poll forwards this frame's key presses to c. dt is the time in seconds
// since the previous poll.
func (k *Keyboard) Poll(c blocks.Controller, dt float64) {
	if justPressed(restartKeys) {
		c.Restart()
		return
	}

	if k.left.Update(justPressed(leftKeys), pressed(leftKeys), dt) {
		c.Apply(blocks.MoveLeft)
	}
	if k.right.Update(justPressed(rightKeys), pressed(rightKeys), dt) {
		c.Apply(blocks.MoveRight)
	}
	if k.down.Update(justPressed(downKeys), pressed(downKeys), dt) {
		c.Apply(blocks.SoftDrop)
	}
	if justPressed(rotateKeys) {
		c.Apply(blocks.RotateCW)
	}
}

// QuitRequested reports whether a quit key went down this frame.
func QuitRequested() bool {
	return justPressed(quitKeys)
}

func justPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

func pressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
