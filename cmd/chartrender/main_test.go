package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"tradechart/chart"
	"tradechart/internal/config"
)

func sampleConfig(w, h int) config.Config {
	cfg := config.Default()
	cfg.Type = "line"
	cfg.Width, cfg.Height = w, h
	cfg.Data = [][2]float64{{1, 10}, {2, 20}, {3, 15}}
	return cfg
}

func TestRender_PNGDimensions(t *testing.T) {
	var buf bytes.Buffer
	if err := render(&buf, sampleConfig(120, 70), nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 70 {
		t.Fatalf("bounds=%v", b)
	}
}

func TestRender_IntentsChangeOutput(t *testing.T) {
	var plain, panned bytes.Buffer
	if err := render(&plain, sampleConfig(80, 40), nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := render(&panned, sampleConfig(80, 40), []chart.Intent{chart.PanBy{DX: -30}}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if bytes.Equal(plain.Bytes(), panned.Bytes()) {
		t.Fatalf("pan had no visible effect")
	}
}

func TestRender_UnknownType(t *testing.T) {
	cfg := sampleConfig(40, 20)
	cfg.Type = "bar"
	if err := render(&bytes.Buffer{}, cfg, nil); !errors.Is(err, chart.ErrConfiguration) {
		t.Fatalf("err=%v", err)
	}
}

func TestParseIntents(t *testing.T) {
	got, err := parseIntents([]string{"10, -5"}, []float64{-50})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 2 || got[0] != (chart.PanBy{DX: 10, DY: -5}) || got[1] != (chart.ZoomBy{DeltaY: -50}) {
		t.Fatalf("intents=%v", got)
	}
	for _, bad := range []string{"10", "x,1", "1,y"} {
		if _, err := parseIntents([]string{bad}, nil); err == nil {
			t.Fatalf("%q accepted", bad)
		}
	}
}

func TestRenderCmd_WritesFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "chart.json")
	out := filepath.Join(dir, "chart.png")
	if err := os.WriteFile(in, []byte(`{"data": {"1": 10, "2": 20, "3": 15}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cmd := newRenderCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{in, "-o", out, "--width", "50", "--height", "30", "--pan", "5,5", "--zoom", "-20"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 50 || cfg.Height != 30 {
		t.Fatalf("size=%dx%d", cfg.Width, cfg.Height)
	}
}

func TestRender_OversizeRejected(t *testing.T) {
	var buf bytes.Buffer
	if err := render(&buf, sampleConfig(40000, 50), nil); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("err=%v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("wrote %d bytes", buf.Len())
	}
}

func TestRenderCmd_OversizeFlag(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "chart.yaml")
	out := filepath.Join(dir, "chart.png")
	if err := os.WriteFile(in, []byte("data: [[1, 10], [2, 20]]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cmd := newRenderCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{in, "-o", out, "--width", "40000"})
	if err := cmd.Execute(); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("err=%v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("output created: %v", err)
	}
}
