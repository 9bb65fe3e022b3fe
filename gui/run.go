// Package gui is the ebiten frontend for the block and paddle games.
package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sized is a game that knows its logical screen size.
type Sized interface {
	ebiten.Game
	Size() (int, int)
}

// Size returns the logical screen size of the block game.
func (g *BlocksGame) Size() (int, int) { return g.view.Size() }

// Size returns the logical screen size of the paddle game.
func (g *PaddleGame) Size() (int, int) { return g.view.Size() }

// Run opens a window scaled by scale and runs game until the window is
// closed or the game terminates.
func Run(game Sized, title string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	w, h := game.Size()
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(game)
}
