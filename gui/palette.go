package gui

import (
	"image/color"

	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/blocks"
)

var (
	background = color.RGBA{0x11, 0x18, 0x27, 0xff}
	wellColor  = color.RGBA{0x1f, 0x29, 0x37, 0xff}
	borderGray = color.RGBA{0x6b, 0x72, 0x80, 0xff}
	ghostColor = color.RGBA{0xff, 0xff, 0xff, 0x50}
	shadeColor = color.RGBA{0x00, 0x00, 0x00, 0x80}
)

// palette maps block color tokens to screen colors.
var palette = newPalette()

func newPalette() *intmap.Map[blocks.Color, color.RGBA] {
	m := intmap.New[blocks.Color, color.RGBA](8)
	m.Put(blocks.Cyan, color.RGBA{0x00, 0xf0, 0xf0, 0xff})
	m.Put(blocks.Yellow, color.RGBA{0xf0, 0xf0, 0x00, 0xff})
	m.Put(blocks.Purple, color.RGBA{0xa0, 0x00, 0xf0, 0xff})
	m.Put(blocks.Green, color.RGBA{0x00, 0xf0, 0x00, 0xff})
	m.Put(blocks.Red, color.RGBA{0xf0, 0x00, 0x00, 0xff})
	m.Put(blocks.Blue, color.RGBA{0x00, 0x00, 0xf0, 0xff})
	m.Put(blocks.Orange, color.RGBA{0xf0, 0xa0, 0x00, 0xff})
	return m
}

// ColorOf returns the screen color of a block. Unknown tokens draw white.
func ColorOf(c blocks.Color) color.RGBA {
	if rgba, ok := palette.Get(c); ok {
		return rgba
	}
	return color.RGBA{0xff, 0xff, 0xff, 0xff}
}
