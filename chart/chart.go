// Package chart renders key/value data onto a pixel surface as a scatter plot
// or a line chart, with pan and zoom driven by intents.
//
// A Chart is not safe for concurrent use. Intents only mark the chart dirty;
// the owner's frame loop calls Frame once per tick, so any number of intents
// between two ticks cost one redraw.
package chart

// Options configures a Chart.
type Options struct {
	// Type is "plot" (default) or "line", matched exactly. Other names,
	// including "LINE", fail at render time.
	Type Kind
	// Smooth joins line points with quadratic curves instead of segments.
	Smooth bool
	// ZoomVertical lets wheel zoom scale the Y axis as well.
	ZoomVertical bool
	// Data is the initial raw data in any shape Normalize accepts.
	Data any
}

// DefaultOptions returns a scatter plot with smoothing enabled for lines.
func DefaultOptions() Options {
	return Options{Type: KindPlot, Smooth: true}
}

// Chart is one widget instance bound to a surface.
type Chart struct {
	surface Surface
	pen     pen

	style        Style
	zoomVertical bool

	points  []DataPoint
	hasData bool
	stats   Stats

	view  ViewState
	dirty bool
}

// New binds a chart to a surface. A nil opts selects DefaultOptions. Initial
// data, if any, is normalized immediately.
func New(s Surface, opts *Options) (*Chart, error) {
	if s == nil {
		return nil, configErrorf("surface must be a drawable display")
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	c := &Chart{
		surface:      s,
		pen:          newRasterPen(s),
		style:        StyleFor(o.Type, o.Smooth),
		zoomVertical: o.ZoomVertical,
		view:         DefaultView(),
		stats:        Compute(nil),
	}
	if o.Data != nil {
		if err := c.SetData(o.Data); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// SetData replaces the data set and recomputes ranges and statistics. It does
// not repaint. On error the previous data set is kept.
func (c *Chart) SetData(raw any) error {
	pts, err := Normalize(raw)
	if err != nil {
		return err
	}
	c.points = pts
	c.stats = Compute(pts)
	c.hasData = true
	return nil
}

// SetStyle switches the series renderer.
func (c *Chart) SetStyle(s Style) {
	if s == nil {
		s = Scatter{}
	}
	c.style = s
	c.dirty = true
}

func (c *Chart) Style() Style        { return c.style }
func (c *Chart) View() ViewState     { return c.view }
func (c *Chart) Stats() Stats        { return c.stats }
func (c *Chart) HasData() bool       { return c.hasData }
func (c *Chart) NeedsRedraw() bool   { return c.dirty }
func (c *Chart) Points() []DataPoint { return c.points }

// Apply is the single entry point for view-state changes. It marks the chart
// for redraw on the next Frame.
func (c *Chart) Apply(in Intent) {
	if in == nil {
		return
	}
	c.view = in.applyTo(c.view, c.zoomVertical)
	c.dirty = true
}

// Invalidate marks the chart for redraw without changing the view.
func (c *Chart) Invalidate() { c.dirty = true }

// Frame renders if a redraw is pending and reports whether it did.
func (c *Chart) Frame() (bool, error) {
	if !c.dirty {
		return false, nil
	}
	return true, c.Render()
}

// Transform returns the coordinate transform for the current surface, data
// and view.
func (c *Chart) Transform() Transform {
	w, h := c.pen.size()
	return Transform{
		Width:  w,
		Height: h,
		XMax:   c.stats.X.Hi(),
		YMax:   c.stats.Y.Hi(),
		View:   c.view,
	}
}

// Render clears the surface and redraws grid, labels and series. It fails
// with ErrMissingData if no data was ever set; an empty data set draws the
// background only.
func (c *Chart) Render() error {
	c.dirty = false
	c.pen.clear(colorBackground)
	if !c.hasData {
		return ErrMissingData
	}

	tr := c.Transform()
	drawGrid(c.pen, tr, c.stats)
	if err := c.style.drawSeries(c.pen, tr, c.points); err != nil {
		return err
	}
	return c.pen.flush()
}
