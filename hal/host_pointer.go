package hal

type hostPointer struct {
	ch     chan PointerEvent
	width  int
	height int

	inside  bool
	pressed bool
	lastX   int
	lastY   int
}

func newHostPointer(width, height int) *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64), width: width, height: height}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

// emit drops the event when the queue is full.
func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

// track derives down/move/up/leave events from a polled cursor state.
func (p *hostPointer) track(x, y int, pressed, justPressed, justReleased bool) {
	inside := x >= 0 && y >= 0 && x < p.width && y < p.height
	fx, fy := float64(x), float64(y)

	if p.inside && !inside {
		p.emit(PointerEvent{Kind: PointerLeave, X: fx, Y: fy})
	}
	if inside && justPressed {
		p.emit(PointerEvent{Kind: PointerDown, X: fx, Y: fy})
	}
	if inside && (x != p.lastX || y != p.lastY) {
		p.emit(PointerEvent{Kind: PointerMove, X: fx, Y: fy})
	}
	if justReleased {
		p.emit(PointerEvent{Kind: PointerUp, X: fx, Y: fy})
	}

	p.inside = inside
	p.pressed = pressed
	p.lastX, p.lastY = x, y
}

func (p *hostPointer) wheel(dy float64) {
	if dy == 0 || !p.inside {
		return
	}
	p.emit(PointerEvent{Kind: PointerWheel, X: float64(p.lastX), Y: float64(p.lastY), WheelY: dy})
}
