package chart

import (
	"image/color"
	"math"
	"strconv"
)

var (
	colorBackground = color.RGBA{R: 0x1B, G: 0x1C, B: 0x1E, A: 0xFF}
	colorGrid       = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	colorMajor      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorLabel      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorSeries     = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
)

const (
	// MarginX is reserved on the right for Y-axis labels.
	MarginX = 55

	majorTickGap  = 20
	labelPad      = 5
	minorPerMajor = 10
	maxGridLines  = 4096
	baseLabelPx   = 15
	minLabelPx    = 12
	maxLabelPx    = 25
)

// labelPx is the label font size for an axis zoom scale.
func labelPx(scale float64) float64 {
	return clampFloat(baseLabelPx*scale, minLabelPx, maxLabelPx)
}

// formatTick truncates to two decimals the way the axis labels read.
func formatTick(v float64) string {
	return strconv.FormatFloat(math.Floor(v*100)/100, 'f', -1, 64)
}

// steps walks lo, lo+step, ... while below hi. It yields nothing for a
// non-positive or non-finite step and stops after maxGridLines values.
func steps(lo, hi, step float64, fn func(v float64)) {
	if !(step > 0) || !isFinite(step) || !isFinite(lo) || !isFinite(hi) {
		return
	}
	for i := 0; i < maxGridLines; i++ {
		v := lo + float64(i)*step
		if !(v < hi) {
			return
		}
		fn(v)
	}
}

func drawGrid(p pen, tr Transform, st Stats) {
	xMin, xMax := st.X.Lo(), st.X.Hi()
	yMin, yMax := st.Y.Lo(), st.Y.Hi()
	right := tr.Width - MarginX

	ypx := labelPx(tr.View.ScaleY)
	steps(yMin, yMax+yMin, st.YStep, func(y float64) {
		v := yMax + yMin - y
		lineY := tr.Y(v)
		p.strokeLine(0, lineY, right, lineY, 1, colorGrid)
		text := formatTick(v)
		x := tr.Width - p.textWidth(text, ypx) - labelPad
		p.text(text, x, lineY, alignLeft, baselineMiddle, ypx, colorLabel)
	})

	steps(xMin, xMax+xMin, st.XStep/minorPerMajor, func(x float64) {
		lineX := tr.X(x - xMin)
		if lineX < right {
			p.strokeLine(lineX, tr.Height, lineX, 0, 1, colorGrid)
		}
	})

	xpx := labelPx(tr.View.ScaleX)
	steps(xMin, xMax+xMin, st.XStep, func(x float64) {
		lineX := tr.X(x - xMin)
		if lineX >= right {
			return
		}
		p.strokeLine(lineX, tr.Height-majorTickGap, lineX, 0, 3, colorMajor)
		p.text(formatTick(x-xMin), lineX, tr.Height, alignCenter, baselineBottom, xpx, colorLabel)
	})
}
