package hal

import (
	"errors"
	"image/color"
	"testing"
)

func mustFramebuffer(t *testing.T, w, h int) Framebuffer {
	t.Helper()
	fb, err := NewFramebuffer(w, h)
	if err != nil {
		t.Fatalf("NewFramebuffer(%d, %d): %v", w, h, err)
	}
	return fb
}

func TestFramebufferDisplay_FillClipsToBounds(t *testing.T) {
	fb := mustFramebuffer(t, 8, 4)
	d := NewFramebufferDisplay(fb)
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	if err := d.FillRectangle(-4, -4, 6, 6, white); err != nil {
		t.Fatalf("fill: %v", err)
	}
	img := Snapshot(fb)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			want := x < 2 && y < 2
			got := img.RGBAAt(x, y) == white
			if got != want {
				t.Fatalf("(%d,%d) filled=%v want %v", x, y, got, want)
			}
		}
	}
}

func TestFramebufferDisplay_SetPixelRoundTrip(t *testing.T) {
	fb := mustFramebuffer(t, 4, 4)
	d := NewFramebufferDisplay(fb)
	c := color.RGBA{R: 0x1B, G: 0x1C, B: 0x1E, A: 0xFF}

	d.SetPixel(1, 2, c)
	d.SetPixel(-1, 0, c)
	d.SetPixel(4, 4, c)

	got := Snapshot(fb).RGBAAt(1, 2)
	r, g, b := rgb888From565(rgb565(c.R, c.G, c.B))
	if got.R != r || got.G != g || got.B != b || got.A != 0xFF {
		t.Fatalf("pixel=%v", got)
	}
	if w, h := d.Size(); w != 4 || h != 4 {
		t.Fatalf("size=%dx%d", w, h)
	}
}

func TestSnapshot_GenericFramebuffer(t *testing.T) {
	fb := &plainFramebuffer{w: 2, h: 1, buf: make([]byte, 4)}
	p := rgb565(0xFF, 0, 0)
	fb.buf[2], fb.buf[3] = byte(p), byte(p>>8)

	img := Snapshot(fb)
	if got := img.RGBAAt(1, 0); got.R != 0xFF || got.G != 0 || got.B != 0 {
		t.Fatalf("pixel=%v", got)
	}
}

type plainFramebuffer struct {
	w, h int
	buf  []byte
}

func (f *plainFramebuffer) Width() int             { return f.w }
func (f *plainFramebuffer) Height() int            { return f.h }
func (f *plainFramebuffer) Format() PixelFormat    { return PixelFormatRGB565 }
func (f *plainFramebuffer) StrideBytes() int       { return f.w * 2 }
func (f *plainFramebuffer) Buffer() []byte         { return f.buf }
func (f *plainFramebuffer) ClearRGB(_, _, _ uint8) {}
func (f *plainFramebuffer) Present() error         { return nil }

func TestNewFramebuffer_RejectsOversize(t *testing.T) {
	for _, size := range [][2]int{{40000, 10}, {10, MaxFramebufferSize + 1}} {
		if _, err := NewFramebuffer(size[0], size[1]); !errors.Is(err, ErrFramebufferSize) {
			t.Fatalf("%v err=%v", size, err)
		}
	}
	fb := mustFramebuffer(t, MaxFramebufferSize, 1)
	if w, _ := NewFramebufferDisplay(fb).Size(); w != MaxFramebufferSize {
		t.Fatalf("width=%d", w)
	}
	if fb := mustFramebuffer(t, 0, -3); fb.Width() != 1 || fb.Height() != 1 {
		t.Fatalf("fb=%dx%d", fb.Width(), fb.Height())
	}
}
