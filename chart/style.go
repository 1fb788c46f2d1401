package chart

// Kind names a chart type in configuration.
type Kind string

const (
	KindPlot Kind = "plot"
	KindLine Kind = "line"
)

// Style is the series renderer for one chart type.
type Style interface {
	Kind() Kind
	drawSeries(p pen, tr Transform, pts []DataPoint) error
}

// Scatter draws a square marker per point.
type Scatter struct{}

// Line draws a marker per point and connects consecutive points, either with
// straight segments or with pairs of quadratic curves through the midpoint.
type Line struct {
	Smooth bool
}

// unknownStyle defers an unsupported type name until render time.
type unknownStyle struct {
	name string
}

func (Scatter) Kind() Kind        { return KindPlot }
func (Line) Kind() Kind           { return KindLine }
func (s unknownStyle) Kind() Kind { return Kind(s.name) }

// StyleFor resolves a configured type. Names match exactly. An empty name
// selects Scatter; any other name resolves to a style that fails when
// rendered.
func StyleFor(kind Kind, smooth bool) Style {
	switch kind {
	case "", KindPlot:
		return Scatter{}
	case KindLine:
		return Line{Smooth: smooth}
	default:
		return unknownStyle{name: string(kind)}
	}
}

const markerSize = 5

func (Scatter) drawSeries(p pen, tr Transform, pts []DataPoint) error {
	for _, pt := range pts {
		x, y := tr.Point(pt)
		p.fillRect(x, y, markerSize, markerSize, colorSeries)
	}
	return nil
}

func (l Line) drawSeries(p pen, tr Transform, pts []DataPoint) error {
	for i := range pts {
		ax, ay := tr.Point(pts[i])
		p.fillRect(ax, ay, markerSize, markerSize, colorSeries)
		if i+1 >= len(pts) {
			continue
		}
		bx, by := tr.Point(pts[i+1])
		if !l.Smooth {
			p.strokeLine(ax, ay, bx, by, 1, colorSeries)
			continue
		}
		mx, my := (ax+bx)/2, (ay+by)/2
		cp1x := (mx + ax) / 2
		cp2x := (mx + bx) / 2
		p.strokeQuad(ax, ay, cp1x, ay, mx, my, 1, colorSeries)
		p.strokeQuad(mx, my, cp2x, by, bx, by, 1, colorSeries)
	}
	return nil
}

func (s unknownStyle) drawSeries(pen, Transform, []DataPoint) error {
	return configErrorf("unknown chart type %q", s.name)
}
