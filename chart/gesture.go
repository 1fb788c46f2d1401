package chart

// WheelNotch is the pixel delta a single wheel notch is worth.
const WheelNotch = 100

// Gesture turns raw pointer activity into intents. Pressing starts a drag,
// moving while dragging pans, releasing or leaving the surface ends it.
type Gesture struct {
	dragging bool
	lastX    float64
	lastY    float64
}

func (g *Gesture) Dragging() bool { return g.dragging }

func (g *Gesture) Down(x, y float64) {
	g.dragging = true
	g.lastX, g.lastY = x, y
}

// Move reports the pan intent for a pointer move, if a drag is active.
func (g *Gesture) Move(x, y float64) (Intent, bool) {
	if !g.dragging {
		return nil, false
	}
	dx, dy := x-g.lastX, y-g.lastY
	g.lastX, g.lastY = x, y
	if dx == 0 && dy == 0 {
		return nil, false
	}
	return PanBy{DX: dx, DY: dy}, true
}

func (g *Gesture) Up()    { g.dragging = false }
func (g *Gesture) Leave() { g.dragging = false }

// Wheel reports the zoom intent for a wheel delta in pixels.
func (g *Gesture) Wheel(deltaY float64) (Intent, bool) {
	if deltaY == 0 {
		return nil, false
	}
	return ZoomBy{DeltaY: deltaY}, true
}
