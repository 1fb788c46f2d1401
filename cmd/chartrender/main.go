// Command chartrender draws a chart definition into a PNG file without
// opening a window.
package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"tradechart/chart"
	"tradechart/hal"
	"tradechart/internal/config"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRenderCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type renderFlags struct {
	out          string
	chartType    string
	smooth       bool
	zoomVertical bool
	width        int
	height       int
	pans         []string
	zooms        []float64
}

func newRenderCmd() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:          "chartrender <file>",
		Short:        "Render a chart definition to PNG",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], &f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.out, "out", "o", "chart.png", "Output PNG path")
	fl.StringVar(&f.chartType, "type", string(chart.KindPlot), "Chart type: plot or line")
	fl.BoolVar(&f.smooth, "smooth", true, "Join line points with curves")
	fl.BoolVar(&f.zoomVertical, "zoom-vertical", false, "Let zoom scale the Y axis too")
	fl.IntVar(&f.width, "width", hal.DefaultWidth, "Image width in pixels")
	fl.IntVar(&f.height, "height", hal.DefaultHeight, "Image height in pixels")
	fl.StringArrayVar(&f.pans, "pan", nil, "Pan by dx,dy pixels before rendering (repeatable)")
	fl.Float64SliceVar(&f.zooms, "zoom", nil, "Apply a wheel delta in pixels, negative zooms in (repeatable)")

	return cmd
}

func runRender(cmd *cobra.Command, path string, f *renderFlags) error {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "chartrender"})

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if fl.Changed("type") {
		cfg.Type = f.chartType
	}
	if fl.Changed("smooth") {
		cfg.Smooth = f.smooth
	}
	if fl.Changed("zoom-vertical") {
		cfg.ZoomVertical = f.zoomVertical
	}
	if fl.Changed("width") || cfg.Width == 0 {
		cfg.Width = f.width
	}
	if fl.Changed("height") || cfg.Height == 0 {
		cfg.Height = f.height
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	intents, err := parseIntents(f.pans, f.zooms)
	if err != nil {
		return err
	}

	out, err := os.Create(f.out)
	if err != nil {
		return err
	}
	if err := render(out, cfg, intents); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	logger.Info("wrote chart", "path", f.out, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), "type", cfg.Type)
	return nil
}

// render draws cfg after applying intents in order and encodes the result.
func render(w io.Writer, cfg config.Config, intents []chart.Intent) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	fb, err := hal.NewFramebuffer(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	opts := cfg.Options()
	c, err := chart.New(hal.NewFramebufferDisplay(fb), &opts)
	if err != nil {
		return err
	}
	for _, in := range intents {
		c.Apply(in)
	}
	if err := c.Render(); err != nil {
		return err
	}
	return png.Encode(w, hal.Snapshot(fb))
}

func parseIntents(pans []string, zooms []float64) ([]chart.Intent, error) {
	var intents []chart.Intent
	for _, p := range pans {
		dx, dy, ok := strings.Cut(p, ",")
		if !ok {
			return nil, fmt.Errorf("--pan %q: want dx,dy", p)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(dx), 64)
		if err != nil {
			return nil, fmt.Errorf("--pan %q: %w", p, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(dy), 64)
		if err != nil {
			return nil, fmt.Errorf("--pan %q: %w", p, err)
		}
		intents = append(intents, chart.PanBy{DX: x, DY: y})
	}
	for _, z := range zooms {
		intents = append(intents, chart.ZoomBy{DeltaY: z})
	}
	return intents, nil
}
