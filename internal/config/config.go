// Package config loads chart definition files. YAML and JSON are both
// accepted; a JSON document is valid YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"tradechart/chart"
	"tradechart/hal"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid chart config")

// MaxSize bounds the surface width and height.
const MaxSize = hal.MaxFramebufferSize

// Config is a chart definition.
type Config struct {
	Type         string `yaml:"type"`
	Smooth       bool   `yaml:"smooth"`
	ZoomVertical bool   `yaml:"zoomVertical"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Data         any    `yaml:"data"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Type: string(chart.KindPlot), Smooth: true}
}

// Load reads a chart definition from path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a chart definition. Missing fields keep their defaults.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the surface size. Zero means "use the default" and is
// accepted; call it again after applying overrides.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width > MaxSize || c.Height > MaxSize {
		return fmt.Errorf("%w: size %dx%d exceeds %d", ErrInvalidConfig, c.Width, c.Height, MaxSize)
	}
	return nil
}

// Options converts the definition into chart options.
func (c Config) Options() chart.Options {
	return chart.Options{
		Type:         chart.Kind(c.Type),
		Smooth:       c.Smooth,
		ZoomVertical: c.ZoomVertical,
		Data:         c.Data,
	}
}
