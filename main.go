package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"tradechart/app"
	"tradechart/chart"
	"tradechart/hal"
	"tradechart/internal/buildinfo"
	"tradechart/internal/config"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	chartType    string
	smooth       bool
	zoomVertical bool
	width        int
	height       int
	logLevel     string
	headless     hal.HeadlessConfig
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:          "tradechart [file]",
		Short:        "Interactive scatter and line chart viewer",
		Long:         "Open a chart definition (YAML or JSON) in a window. Drag to pan, scroll to zoom.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, &f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.chartType, "type", string(chart.KindPlot), "Chart type: plot or line")
	fl.BoolVar(&f.smooth, "smooth", true, "Join line points with curves")
	fl.BoolVar(&f.zoomVertical, "zoom-vertical", false, "Let the wheel zoom the Y axis too")
	fl.IntVar(&f.width, "width", hal.DefaultWidth, "Surface width in pixels")
	fl.IntVar(&f.height, "height", hal.DefaultHeight, "Surface height in pixels")
	fl.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fl.BoolVar(&f.headless.Enabled, "headless", false, "Run without a window")
	fl.IntVar(&f.headless.Hz, "hz", 60, "Tick rate in headless mode")
	fl.Uint64Var(&f.headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever)")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "tradechart", buildinfo.Long())
		},
	}
}

func runRoot(cmd *cobra.Command, args []string, f *rootFlags) error {
	level, err := log.ParseLevel(f.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix:          "tradechart",
		Level:           level,
		ReportTimestamp: true,
	})

	cfg := config.Default()
	if len(args) == 1 {
		if cfg, err = config.Load(args[0]); err != nil {
			return err
		}
		logger.Debug("loaded chart file", "path", args[0])
	} else {
		logger.Warn("no chart file given, starting empty")
	}
	applyFlags(cmd, f, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	host := hal.HostConfig{Width: cfg.Width, Height: cfg.Height, Logger: logger}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{Options: cfg.Options()})
	}

	if f.headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, host, newApp, f.headless)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return hal.RunWindow(host, newApp)
}

// applyFlags overrides file values with flags set on the command line. The
// surface size falls back to the flag defaults when the file leaves it out.
func applyFlags(cmd *cobra.Command, f *rootFlags, cfg *config.Config) {
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
}
