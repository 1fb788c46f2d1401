package hal

import (
	"errors"

	"github.com/charmbracelet/log"
)

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// PointerKind identifies a pointer event.
type PointerKind uint8

const (
	PointerUnknown PointerKind = iota
	PointerDown
	PointerMove
	PointerUp
	PointerLeave
	PointerWheel
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	case PointerWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// PointerEvent is a mouse event in framebuffer pixels.
//
// WheelY is in notches; positive scrolls up (away from the user).
type PointerEvent struct {
	Kind   PointerKind
	X      float64
	Y      float64
	WheelY float64
}

// KeyCode identifies a non-text key.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyHome
	KeyEscape
)

// KeyEvent is a keyboard event. Text input arrives as Rune with Code
// KeyUnknown.
type KeyEvent struct {
	Code  KeyCode
	Rune  rune
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Pointer provides pointer events (best-effort on each platform).
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Pointer() Pointer
	Keyboard() Keyboard
}

// HAL provides the only contact point between the chart app and the host.
type HAL interface {
	Logger() *log.Logger
	Display() Display
	Input() Input
}
