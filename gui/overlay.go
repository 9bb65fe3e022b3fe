package gui

import "github.com/hajimehoshi/ebiten/v2"

// Overlay is drawn on top of a game, typically a debug UI. While it wants
// the keyboard the game ignores key input.
type Overlay interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	WantCaptureKeyboard() bool
	WantCaptureMouse() bool
}

type noOverlay struct{}

func (noOverlay) Update()                   {}
func (noOverlay) Draw(*ebiten.Image)        {}
func (noOverlay) Layout(int, int)           {}
func (noOverlay) WantCaptureKeyboard() bool { return false }
func (noOverlay) WantCaptureMouse() bool    { return false }
