package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/blocks"
)

// KeyCommand maps a key event to a block command.
func KeyCommand(e *tcell.EventKey) (blocks.Command, bool) {
	switch e.Key() {
	case tcell.KeyLeft:
		return blocks.MoveLeft, true
	case tcell.KeyRight:
		return blocks.MoveRight, true
	case tcell.KeyDown:
		return blocks.SoftDrop, true
	case tcell.KeyUp:
		return blocks.RotateCW, true
	case tcell.KeyRune:
		switch e.Rune() {
		case 'a', 'A', 'h':
			return blocks.MoveLeft, true
		case 'd', 'D', 'l':
			return blocks.MoveRight, true
		case 's', 'S', 'j':
			return blocks.SoftDrop, true
		case 'w', 'W', 'x', 'X', 'k', ' ':
			return blocks.RotateCW, true
		}
	}
	return 0, false
}

// IsRestart reports whether e asks for a new game.
func IsRestart(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyEnter {
		return true
	}
	return e.Key() == tcell.KeyRune && (e.Rune() == 'r' || e.Rune() == 'R')
}

// IsQuit reports whether e asks to leave.
func IsQuit(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
		return true
	}
	return e.Key() == tcell.KeyRune && (e.Rune() == 'q' || e.Rune() == 'Q')
}
