package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Script is queued as pointer input before the first tick.
	Script []PointerEvent
	// Keys is queued as keyboard input before the first tick.
	Keys []KeyEvent
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, host HostConfig, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	_, err := runHeadless(ctx, host, newApp, cfg)
	return err
}

func runHeadless(ctx context.Context, host HostConfig, newApp func(HAL) func() error, cfg HeadlessConfig) (*hostHAL, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h, err := newHost(host)
	if err != nil {
		return nil, err
	}
	step := newApp(h)
	for _, ev := range cfg.Script {
		h.ptr.emit(ev)
	}
	for _, ev := range cfg.Keys {
		h.kbd.emit(ev)
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return h, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return h, ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return h, err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return h, nil
			}
		}
	}
}
