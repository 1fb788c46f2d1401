package app

import (
	"errors"
	"image/color"
	"io"
	"testing"

	"tradechart/chart"
	"tradechart/hal"

	"github.com/charmbracelet/log"
)

type fakeHAL struct {
	logger *log.Logger
	fb     hal.Framebuffer
	ch     chan hal.PointerEvent
	keys   chan hal.KeyEvent
}

func newFakeHAL(t *testing.T, w, h int) *fakeHAL {
	t.Helper()
	fb, err := hal.NewFramebuffer(w, h)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	return &fakeHAL{
		logger: log.New(io.Discard),
		fb:     fb,
		ch:     make(chan hal.PointerEvent, 16),
		keys:   make(chan hal.KeyEvent, 16),
	}
}

func (f *fakeHAL) Logger() *log.Logger  { return f.logger }
func (f *fakeHAL) Display() hal.Display { return f }
func (f *fakeHAL) Input() hal.Input     { return f }

func (f *fakeHAL) Framebuffer() hal.Framebuffer    { return f.fb }
func (f *fakeHAL) Pointer() hal.Pointer            { return f }
func (f *fakeHAL) Keyboard() hal.Keyboard          { return fakeKeyboard(f.keys) }
func (f *fakeHAL) Events() <-chan hal.PointerEvent { return f.ch }

type fakeKeyboard chan hal.KeyEvent

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k }

func sampleConfig() Config {
	opts := chart.DefaultOptions()
	opts.Data = [][2]float64{{1, 10}, {2, 20}, {3, 15}}
	return Config{Options: opts}
}

func countColor(fb hal.Framebuffer, c color.RGBA) int {
	img := hal.Snapshot(fb)
	n := 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestNewWithConfig_DrawsFirstFrame(t *testing.T) {
	h := newFakeHAL(t, 120, 80)
	step := NewWithConfig(h, sampleConfig())
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if countColor(h.fb, color.RGBA{A: 0xFF}) == h.fb.Width()*h.fb.Height() {
		t.Fatalf("framebuffer left blank")
	}
}

func TestSession_DragPans(t *testing.T) {
	h := newFakeHAL(t, 120, 80)
	s, err := newSession(h, sampleConfig())
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	if s.frames != 1 {
		t.Fatalf("initial frames=%d", s.frames)
	}

	h.ch <- hal.PointerEvent{Kind: hal.PointerMove, X: 5, Y: 5}
	h.ch <- hal.PointerEvent{Kind: hal.PointerDown, X: 10, Y: 10}
	h.ch <- hal.PointerEvent{Kind: hal.PointerMove, X: 20, Y: 12}
	h.ch <- hal.PointerEvent{Kind: hal.PointerMove, X: 30, Y: 7}
	h.ch <- hal.PointerEvent{Kind: hal.PointerUp, X: 30, Y: 7}
	h.ch <- hal.PointerEvent{Kind: hal.PointerMove, X: 90, Y: 90}
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	v := s.chart.View()
	if v.XOffset != 20 || v.YOffset != -3 {
		t.Fatalf("view=%+v", v)
	}
	if s.frames != 2 {
		t.Fatalf("frames=%d", s.frames)
	}
	if s.gesture.Dragging() {
		t.Fatalf("still dragging after up")
	}
}

func TestSession_WheelZooms(t *testing.T) {
	h := newFakeHAL(t, 120, 80)
	s, err := newSession(h, sampleConfig())
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	h.ch <- hal.PointerEvent{Kind: hal.PointerWheel, WheelY: 1}
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if v := s.chart.View(); v.ScaleX != 2 || v.ScaleY != 1 {
		t.Fatalf("view after zoom in=%+v", v)
	}

	h.ch <- hal.PointerEvent{Kind: hal.PointerWheel, WheelY: -5}
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if v := s.chart.View(); v.ScaleX != chart.MinScale {
		t.Fatalf("view after zoom out=%+v", v)
	}
}

func TestSession_IdleStepDoesNotRedraw(t *testing.T) {
	h := newFakeHAL(t, 60, 40)
	s, err := newSession(h, sampleConfig())
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := s.step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if s.frames != 1 {
		t.Fatalf("frames=%d", s.frames)
	}
}

func TestNewWithConfig_NoData(t *testing.T) {
	h := newFakeHAL(t, 60, 40)
	step := New(h)
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
}

func TestNewWithConfig_UnknownTypeShowsError(t *testing.T) {
	h := newFakeHAL(t, 200, 60)
	cfg := sampleConfig()
	cfg.Options.Type = "pie"
	step := NewWithConfig(h, cfg)
	if err := step(); !errors.Is(err, chart.ErrConfiguration) {
		t.Fatalf("err=%v", err)
	}
	if err := step(); !errors.Is(err, chart.ErrConfiguration) {
		t.Fatalf("second step err=%v", err)
	}
	if countColor(h.fb, expand565(errForeground)) == 0 {
		t.Fatalf("error text not drawn")
	}
}

func TestWrapText(t *testing.T) {
	font := fontForTest()
	lines := wrapText(font, "alpha beta gamma delta", 60)
	if len(lines) < 2 {
		t.Fatalf("lines=%q", lines)
	}
	if got := wrapText(font, "   ", 60); got != nil {
		t.Fatalf("blank=%q", got)
	}
	if got := wrapText(font, "one two", 0); len(got) != 1 {
		t.Fatalf("unbounded=%q", got)
	}
}

func TestSession_KeyBindings(t *testing.T) {
	h := newFakeHAL(t, 120, 80)
	s, err := newSession(h, sampleConfig())
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}

	h.keys <- hal.KeyEvent{Rune: 't', Press: true}
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if l, ok := s.chart.Style().(chart.Line); !ok || !l.Smooth {
		t.Fatalf("style after t=%#v", s.chart.Style())
	}

	h.keys <- hal.KeyEvent{Rune: 's', Press: true}
	h.keys <- hal.KeyEvent{Rune: 's', Press: false}
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if l, ok := s.chart.Style().(chart.Line); !ok || l.Smooth {
		t.Fatalf("style after s=%#v", s.chart.Style())
	}

	h.ch <- hal.PointerEvent{Kind: hal.PointerWheel, WheelY: 1}
	h.keys <- hal.KeyEvent{Rune: 't', Press: true}
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if _, ok := s.chart.Style().(chart.Scatter); !ok {
		t.Fatalf("style after second t=%#v", s.chart.Style())
	}
	if v := s.chart.View(); v.ScaleX != 2 {
		t.Fatalf("view=%+v", v)
	}

	h.keys <- hal.KeyEvent{Code: hal.KeyHome, Press: true}
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if v := s.chart.View(); v != chart.DefaultView() {
		t.Fatalf("view after reset=%+v", v)
	}
	if s.frames != 5 {
		t.Fatalf("frames=%d", s.frames)
	}
}
