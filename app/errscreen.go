package app

import (
	"image/color"
	"strings"

	"tradechart/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

var (
	errBackground = color.RGBA{R: 0x1B, G: 0x1C, B: 0x1E, A: 0xFF}
	errForeground = color.RGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF}
)

const errMargin = 8

// drawError replaces the framebuffer contents with a wrapped error message.
func drawError(fb hal.Framebuffer, err error) {
	if fb == nil || err == nil {
		return
	}
	d := hal.NewFramebufferDisplay(fb)
	w, h := d.Size()
	_ = d.FillRectangle(0, 0, w, h, errBackground)

	font := &freesans.Regular9pt7b
	lineH := int16(font.GetYAdvance())
	if lineH <= 0 {
		lineH = 16
	}
	maxW := uint32(0)
	if w > 2*errMargin {
		maxW = uint32(w - 2*errMargin)
	}

	y := errMargin + lineH
	for _, line := range wrapText(font, "render error: "+err.Error(), maxW) {
		if y > h {
			break
		}
		tinyfont.WriteLine(d, font, errMargin, y, line, errForeground)
		y += lineH
	}
	_ = d.Display()
}

// wrapText breaks s on spaces so each line fits maxW pixels. A single word
// wider than maxW gets a line of its own.
func wrapText(font tinyfont.Fonter, s string, maxW uint32) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	cur := words[0]
	for _, word := range words[1:] {
		next := cur + " " + word
		if _, outbox := tinyfont.LineWidth(font, next); maxW == 0 || outbox <= maxW {
			cur = next
			continue
		}
		lines = append(lines, cur)
		cur = word
	}
	return append(lines, cur)
}
