package hal

import (
	"errors"
	"fmt"
	"image"
	"sync"
)

// MaxFramebufferSize bounds either framebuffer dimension. Drawing
// coordinates are int16, so anything larger cannot be addressed.
const MaxFramebufferSize = 4096

var ErrFramebufferSize = errors.New("framebuffer size out of range")

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

// NewFramebuffer returns an in-memory RGB565 framebuffer. Sizes below one
// pixel are raised to one; sizes above MaxFramebufferSize are rejected.
func NewFramebuffer(width, height int) (Framebuffer, error) {
	fb, err := newHostFramebuffer(width, height)
	if err != nil {
		return nil, err
	}
	return fb, nil
}

func newHostFramebuffer(width, height int) (*hostFramebuffer, error) {
	if width > MaxFramebufferSize || height > MaxFramebufferSize {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrFramebufferSize, width, height, MaxFramebufferSize)
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}, nil
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }
func (f *hostFramebuffer) Present() error      { return nil }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *hostFramebuffer) snapshotRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	f.snapshotInto(img)
	return img
}

func (f *hostFramebuffer) snapshotInto(img *image.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	expandRGB565(img, f.buf, f.width, f.height, f.stride)
}
