// Package testutil provides shared test helpers for building time series.
package testutil

import (
	"math"
	"time"

	"github.com/tidelab/oceanqc/pkg/types"
)

// Base is the reference start time for generated series.
var Base = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

// NewSeries builds a series with samples spaced evenly from Base.
func NewSeries(name string, step time.Duration, values ...float64) types.Series {
	s := types.Series{
		Name:       name,
		Timestamps: make([]time.Time, len(values)),
		Values:     append([]float64(nil), values...),
	}
	for i := range values {
		s.Timestamps[i] = Base.Add(time.Duration(i) * step)
	}
	return s
}

// NewSeriesAt builds a series with samples at the given second offsets from
// Base. offsets and values must have the same length.
func NewSeriesAt(name string, offsets []int, values []float64) types.Series {
	if len(offsets) != len(values) {
		panic("testutil: offsets and values must have the same length")
	}
	s := types.Series{
		Name:       name,
		Timestamps: make([]time.Time, len(values)),
		Values:     append([]float64(nil), values...),
	}
	for i, off := range offsets {
		s.Timestamps[i] = Base.Add(time.Duration(off) * time.Second)
	}
	return s
}

// Times converts second offsets from Base into timestamps.
func Times(offsets ...int) []time.Time {
	ts := make([]time.Time, len(offsets))
	for i, off := range offsets {
		ts[i] = Base.Add(time.Duration(off) * time.Second)
	}
	return ts
}

// NaN is the missing-value sentinel, aliased for readable test fixtures.
var NaN = math.NaN()
