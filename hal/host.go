package hal

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// HostConfig sizes the host surface.
type HostConfig struct {
	Width  int
	Height int
	Logger *log.Logger
}

const (
	DefaultWidth  = 640
	DefaultHeight = 360
)

type hostHAL struct {
	logger *log.Logger
	fb     *hostFramebuffer
	ptr    *hostPointer
	kbd    *hostKeyboard
}

// New returns a host HAL implementation.
func New(cfg HostConfig) (HAL, error) {
	h, err := newHost(cfg)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func newHost(cfg HostConfig) (*hostHAL, error) {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tradechart"})
	}
	fb, err := newHostFramebuffer(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("host display: %w", err)
	}
	return &hostHAL{
		logger: logger,
		fb:     fb,
		ptr:    newHostPointer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
	}, nil
}

func (h *hostHAL) Logger() *log.Logger { return h.logger }
func (h *hostHAL) Display() Display    { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input        { return hostInput{ptr: h.ptr, kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	ptr *hostPointer
	kbd *hostKeyboard
}

func (in hostInput) Pointer() Pointer   { return in.ptr }
func (in hostInput) Keyboard() Keyboard { return in.kbd }
