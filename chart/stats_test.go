package chart

import (
	"math"
	"testing"
)

func TestStdDev_Constant(t *testing.T) {
	for _, v := range []float64{0, 1, -3, 0.1, 1e9, 7.3} {
		xs := []float64{v, v, v, v, v, v, v}
		if got := StdDev(xs); got != 0 {
			t.Fatalf("stddev(%v...)=%v", v, got)
		}
	}
}

func TestStdDev_Population(t *testing.T) {
	got := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(got-2) > 1e-12 {
		t.Fatalf("stddev=%v", got)
	}
	if !math.IsNaN(StdDev(nil)) || !math.IsNaN(Mean(nil)) {
		t.Fatalf("empty stats not NaN")
	}
}

func TestCompute_Ranges(t *testing.T) {
	pts, err := Normalize([][2]float64{{1, 10}, {2, 20}, {3, 15}})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	s := Compute(pts)
	if s.Count != 3 {
		t.Fatalf("count=%d", s.Count)
	}
	if s.X != (Range{Min: 1, Max: 3, Valid: true}) || s.Y != (Range{Min: 10, Max: 20, Valid: true}) {
		t.Fatalf("x=%+v y=%+v", s.X, s.Y)
	}
	if math.Abs(s.XStep-math.Sqrt(2.0/3)) > 1e-12 {
		t.Fatalf("xStep=%v", s.XStep)
	}
	if math.Abs(s.YStep-math.Sqrt(50.0/3)) > 1e-12 {
		t.Fatalf("yStep=%v", s.YStep)
	}
	if s.XMean != 2 || s.YMean != 15 {
		t.Fatalf("means=%v,%v", s.XMean, s.YMean)
	}
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil)
	if s.X.Valid || s.Y.Valid {
		t.Fatalf("ranges valid for empty data")
	}
	if s.X.Lo() != 0 || s.Y.Hi() != 0 {
		t.Fatalf("invalid range bounds not zero")
	}
	if !math.IsNaN(s.XStep) || !math.IsNaN(s.YStep) {
		t.Fatalf("steps=%v,%v", s.XStep, s.YStep)
	}
}
