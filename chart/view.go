package chart

import "math"

const (
	// MinScale is the zoom floor on either axis.
	MinScale = 0.1
	// ZoomSensitivity converts wheel delta (pixels) into scale units.
	ZoomSensitivity = 0.01
)

// ViewState is the user-controlled pan offset and zoom scale.
type ViewState struct {
	XOffset float64
	YOffset float64
	ScaleX  float64
	ScaleY  float64
}

// DefaultView is the unpanned, unzoomed view.
func DefaultView() ViewState {
	return ViewState{ScaleX: 1, ScaleY: 1}
}

// Transform maps domain coordinates to device pixels for one render pass.
// Points and gridlines are both placed through it.
type Transform struct {
	Width  float64
	Height float64
	XMax   float64
	YMax   float64
	View   ViewState
}

// X maps a key to a pixel column. Keys are normalized against XMax, not
// against the key range, so domain 0 is always the origin.
func (t Transform) X(key float64) float64 {
	return key/t.XMax*(t.Width*t.View.ScaleX) + t.View.XOffset
}

// Y maps a value to a pixel row; rows grow downwards.
func (t Transform) Y(value float64) float64 {
	return t.Height - value/t.YMax*(t.Height*t.View.ScaleY) + t.View.YOffset
}

// Point maps a data point to (px, py).
func (t Transform) Point(p DataPoint) (float64, float64) {
	return t.X(p.Key.Float64()), t.Y(p.Value)
}

// Intent is a view-state change request, applied through Chart.Apply.
type Intent interface {
	applyTo(v ViewState, zoomVertical bool) ViewState
}

// PanBy moves the view by a pointer delta in pixels.
type PanBy struct {
	DX float64
	DY float64
}

func (p PanBy) applyTo(v ViewState, _ bool) ViewState {
	v.XOffset += p.DX
	v.YOffset += p.DY
	return v
}

// ZoomBy applies a wheel delta. Positive DeltaY (scrolling down) zooms out.
type ZoomBy struct {
	DeltaY float64
}

func (z ZoomBy) applyTo(v ViewState, zoomVertical bool) ViewState {
	v.ScaleX = clampScale(v.ScaleX - z.DeltaY*ZoomSensitivity)
	if zoomVertical {
		v.ScaleY = clampScale(v.ScaleY - z.DeltaY*ZoomSensitivity)
	}
	return v
}

// ResetView restores the default view.
type ResetView struct{}

func (ResetView) applyTo(ViewState, bool) ViewState { return DefaultView() }

func clampScale(s float64) float64 {
	if s < MinScale || math.IsNaN(s) {
		return MinScale
	}
	return s
}
