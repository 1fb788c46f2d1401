package app

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

func fontForTest() tinyfont.Fonter { return &freesans.Regular9pt7b }

// expand565 is the color a framebuffer snapshot reports after an RGB565
// round trip.
func expand565(c color.RGBA) color.RGBA {
	r5, g6, b5 := uint16(c.R>>3), uint16(c.G>>2), uint16(c.B>>3)
	return color.RGBA{
		R: uint8(r5 * 255 / 31),
		G: uint8(g6 * 255 / 63),
		B: uint8(b5 * 255 / 31),
		A: 0xFF,
	}
}
