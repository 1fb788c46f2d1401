package chart

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

// Surface is a drawable pixel target. Any tinygo display driver with a
// rectangle fill satisfies it.
type Surface interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

type hAlign uint8

const (
	alignLeft hAlign = iota
	alignCenter
)

type vAlign uint8

const (
	baselineMiddle vAlign = iota
	baselineBottom
)

// pen is the set of drawing operations a render pass uses. Coordinates are
// device pixels and may lie far outside the surface.
type pen interface {
	size() (w, h float64)
	clear(c color.RGBA)
	fillRect(x, y, w, h float64, c color.RGBA)
	strokeLine(x0, y0, x1, y1, width float64, c color.RGBA)
	strokeQuad(x0, y0, cx, cy, x1, y1, width float64, c color.RGBA)
	text(s string, x, y float64, h hAlign, v vAlign, px float64, c color.RGBA)
	textWidth(s string, px float64) float64
	flush() error
}

type rasterPen struct {
	s Surface
}

func newRasterPen(s Surface) *rasterPen {
	return &rasterPen{s: s}
}

func (p *rasterPen) size() (float64, float64) {
	w, h := p.s.Size()
	return float64(w), float64(h)
}

func (p *rasterPen) clear(c color.RGBA) {
	w, h := p.s.Size()
	_ = p.s.FillRectangle(0, 0, w, h, c)
}

func (p *rasterPen) fillRect(x, y, w, h float64, c color.RGBA) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	sw, sh := p.size()
	x0 := clampFloat(math.Round(x), -1, sw+1)
	y0 := clampFloat(math.Round(y), -1, sh+1)
	x1 := clampFloat(math.Round(x+w), -1, sw+1)
	y1 := clampFloat(math.Round(y+h), -1, sh+1)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	_ = p.s.FillRectangle(int16(x0), int16(y0), int16(x1-x0), int16(y1-y0), c)
}

func (p *rasterPen) strokeLine(x0, y0, x1, y1, width float64, c color.RGBA) {
	if !isFinite(x0) || !isFinite(y0) || !isFinite(x1) || !isFinite(y1) {
		return
	}
	sw, sh := p.size()
	if sw <= 0 || sh <= 0 {
		return
	}
	n := int(math.Round(width))
	if n < 1 {
		n = 1
	}
	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	for i := 0; i < n; i++ {
		off := float64(i - (n-1)/2)
		ox, oy := 0.0, off
		if steep {
			ox, oy = off, 0
		}
		cx0, cy0, cx1, cy1, ok := clipLineToRect(x0+ox, y0+oy, x1+ox, y1+oy, 0, 0, sw-1, sh-1)
		if !ok {
			continue
		}
		p.bresenham(roundInt16(cx0), roundInt16(cy0), roundInt16(cx1), roundInt16(cy1), c)
	}
}

// strokeQuad flattens a quadratic Bezier into line segments.
func (p *rasterPen) strokeQuad(x0, y0, cx, cy, x1, y1, width float64, c color.RGBA) {
	span := math.Hypot(cx-x0, cy-y0) + math.Hypot(x1-cx, y1-cy)
	if !isFinite(span) {
		return
	}
	n := int(span / 4)
	if n < 4 {
		n = 4
	}
	if n > 64 {
		n = 64
	}
	px, py := x0, y0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		qx := u*u*x0 + 2*u*t*cx + t*t*x1
		qy := u*u*y0 + 2*u*t*cy + t*t*y1
		p.strokeLine(px, py, qx, qy, width, c)
		px, py = qx, qy
	}
}

func (p *rasterPen) text(s string, x, y float64, h hAlign, v vAlign, px float64, c color.RGBA) {
	if s == "" || !isFinite(x) || !isFinite(y) {
		return
	}
	f := fontForSize(px)
	w := p.textWidth(s, px)
	if h == alignCenter {
		x -= w / 2
	}
	adv := float64(f.GetYAdvance())
	switch v {
	case baselineMiddle:
		y += adv / 4
	case baselineBottom:
		y -= adv / 5
	}
	sw, sh := p.size()
	if x+w < 0 || x > sw || y < 0 || y-adv > sh {
		return
	}
	tinyfont.WriteLine(p.s, f, int16(math.Round(x)), int16(math.Round(y)), s, c)
}

func (p *rasterPen) textWidth(s string, px float64) float64 {
	_, outbox := tinyfont.LineWidth(fontForSize(px), s)
	return float64(outbox)
}

func (p *rasterPen) flush() error {
	return p.s.Display()
}

func (p *rasterPen) bresenham(x0, y0, x1, y1 int16, c color.RGBA) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		p.s.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += int16(sx)
		}
		if e2 <= dx {
			err += dx
			y0 += int16(sy)
		}
	}
}

// fontForSize picks the closest FreeSans face for a CSS-style pixel size.
func fontForSize(px float64) *tinyfont.Font {
	switch {
	case px <= 14:
		return &freesans.Regular9pt7b
	case px <= 20:
		return &freesans.Regular12pt7b
	default:
		return &freesans.Regular18pt7b
	}
}

// clipLineToRect is Liang-Barsky clipping against [xmin,xmax]x[ymin,ymax].
func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1 := 0.0
	u2 := 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	cx0 = clampFloat(x0+u1*dx, xmin, xmax)
	cy0 = clampFloat(y0+u1*dy, ymin, ymax)
	cx1 = clampFloat(x0+u2*dx, xmin, xmax)
	cy1 = clampFloat(y0+u2*dy, ymin, ymax)
	return cx0, cy0, cx1, cy1, true
}

func roundInt16(v float64) int16 {
	if v < 0 {
		return int16(v - 0.5)
	}
	return int16(v + 0.5)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
