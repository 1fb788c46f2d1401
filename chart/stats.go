package chart

import "math"

// Range is a [Min, Max] interval. It is invalid for an empty data set.
type Range struct {
	Min   float64
	Max   float64
	Valid bool
}

// Lo returns Min, or 0 when the range is invalid.
func (r Range) Lo() float64 {
	if !r.Valid {
		return 0
	}
	return r.Min
}

// Hi returns Max, or 0 when the range is invalid.
func (r Range) Hi() float64 {
	if !r.Valid {
		return 0
	}
	return r.Max
}

func (r *Range) include(v float64) {
	if !r.Valid {
		r.Min, r.Max, r.Valid = v, v, true
		return
	}
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
}

// Stats holds the ranges and descriptive statistics of a data set.
//
// XStep and YStep are the population standard deviations of keys and values;
// they double as the default gridline spacing on each axis.
type Stats struct {
	Count int
	X     Range
	Y     Range
	XMean float64
	YMean float64
	XStep float64
	YStep float64
}

// Compute derives ranges and statistics from a canonical point sequence.
// An empty sequence yields invalid ranges and NaN statistics.
func Compute(pts []DataPoint) Stats {
	s := Stats{Count: len(pts)}
	if len(pts) == 0 {
		nan := math.NaN()
		s.XMean, s.YMean, s.XStep, s.YStep = nan, nan, nan, nan
		return s
	}

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		k := p.Key.Float64()
		xs[i] = k
		ys[i] = p.Value
		s.X.include(k)
		s.Y.include(p.Value)
	}

	s.XMean = Mean(xs)
	s.YMean = Mean(ys)
	s.XStep = stdDevAround(xs, s.XMean)
	s.YStep = stdDevAround(ys, s.YMean)
	return s
}

// Mean returns the arithmetic mean, NaN for an empty slice.
// The running form keeps the mean of a constant sequence exact.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var m float64
	for i, x := range xs {
		m += (x - m) / float64(i+1)
	}
	return m
}

// StdDev returns the population standard deviation, NaN for an empty slice.
func StdDev(xs []float64) float64 {
	return stdDevAround(xs, Mean(xs))
}

func stdDevAround(xs []float64, mean float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}
