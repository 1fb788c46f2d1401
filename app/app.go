package app

import (
	"fmt"

	"tradechart/chart"
	"tradechart/hal"

	"github.com/charmbracelet/log"
)

// Config selects what the app draws.
type Config struct {
	Options chart.Options
}

type session struct {
	log     *log.Logger
	fb      hal.Framebuffer
	chart   *chart.Chart
	events  <-chan hal.PointerEvent
	keys    <-chan hal.KeyEvent
	gesture chart.Gesture
	smooth  bool
	frames  uint64
	failed  error
}

// New starts the app with the default chart options and no data.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{Options: chart.DefaultOptions()})
}

// NewWithConfig builds the chart on the HAL framebuffer, draws the first
// frame and returns the per-tick step function. Setup and render failures
// are drawn on screen and returned from the next step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSession(h, cfg)
	if err != nil {
		h.Logger().Error("chart setup failed", "err", err)
		if fb := h.Display().Framebuffer(); fb != nil {
			drawError(fb, err)
		}
		return func() error { return err }
	}
	return s.step
}

func newSession(h hal.HAL, cfg Config) (*session, error) {
	fb := h.Display().Framebuffer()
	if fb == nil {
		return nil, fmt.Errorf("%w: no framebuffer", chart.ErrConfiguration)
	}

	opts := cfg.Options
	c, err := chart.New(hal.NewFramebufferDisplay(fb), &opts)
	if err != nil {
		return nil, err
	}

	s := &session{
		log:    h.Logger().WithPrefix("app"),
		fb:     fb,
		chart:  c,
		smooth: opts.Smooth,
	}
	if in := h.Input(); in != nil {
		if p := in.Pointer(); p != nil {
			s.events = p.Events()
		}
		if k := in.Keyboard(); k != nil {
			s.keys = k.Events()
		}
	}

	st := c.Stats()
	s.log.Info("chart ready",
		"type", c.Style().Kind(),
		"points", st.Count,
		"size", fmt.Sprintf("%dx%d", fb.Width(), fb.Height()),
	)
	s.log.Debug("statistics",
		"xStep", st.XStep, "yStep", st.YStep,
		"xMean", st.XMean, "yMean", st.YMean,
	)

	// An empty chart has nothing to draw until data arrives.
	if c.HasData() {
		c.Invalidate()
		if err := s.frame(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *session) step() error {
	if s.failed != nil {
		return s.failed
	}
	s.drain()
	return s.frame()
}

// drain applies every queued pointer and key event without blocking.
// A nil channel never becomes ready, so a missing device is skipped.
func (s *session) drain() {
	for {
		select {
		case ev := <-s.events:
			s.handle(ev)
		case ev := <-s.keys:
			s.handleKey(ev)
		default:
			return
		}
	}
}

// handleKey binds:
//
//	t          toggle scatter and line
//	s          toggle line smoothing
//	r, Home    reset pan and zoom
func (s *session) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	switch {
	case ev.Rune == 't':
		if _, isLine := s.chart.Style().(chart.Line); isLine {
			s.chart.SetStyle(chart.Scatter{})
		} else {
			s.chart.SetStyle(chart.Line{Smooth: s.smooth})
		}
	case ev.Rune == 's':
		s.smooth = !s.smooth
		if _, isLine := s.chart.Style().(chart.Line); isLine {
			s.chart.SetStyle(chart.Line{Smooth: s.smooth})
		}
	case ev.Rune == 'r' || ev.Code == hal.KeyHome:
		s.chart.Apply(chart.ResetView{})
	default:
		return
	}
	s.log.Debug("key", "rune", string(ev.Rune), "code", ev.Code, "style", s.chart.Style().Kind(), "smooth", s.smooth)
}

func (s *session) handle(ev hal.PointerEvent) {
	var (
		in chart.Intent
		ok bool
	)
	switch ev.Kind {
	case hal.PointerDown:
		s.gesture.Down(ev.X, ev.Y)
	case hal.PointerMove:
		in, ok = s.gesture.Move(ev.X, ev.Y)
	case hal.PointerUp:
		s.gesture.Up()
	case hal.PointerLeave:
		s.gesture.Leave()
	case hal.PointerWheel:
		// Scrolling up zooms in, which is a negative wheel delta.
		in, ok = s.gesture.Wheel(-ev.WheelY * chart.WheelNotch)
	}
	if !ok {
		return
	}
	s.chart.Apply(in)
	s.log.Debug("intent", "event", ev.Kind, "intent", fmt.Sprintf("%+v", in))
}

func (s *session) frame() error {
	did, err := s.chart.Frame()
	if err != nil {
		s.failed = err
		s.log.Error("render failed", "err", err)
		drawError(s.fb, err)
		return err
	}
	if did {
		s.frames++
		v := s.chart.View()
		s.log.Debug("frame", "n", s.frames, "scaleX", v.ScaleX, "xOffset", v.XOffset, "yOffset", v.YOffset)
	}
	return nil
}
