package qc

import (
	"math"

	"github.com/tidelab/oceanqc/pkg/types"
)

// RateOfChange scores each sample's first difference over elapsed seconds
// against the standard deviation of the whole rate series. The rate is
// undefined for the first sample and wherever either neighboring value is
// missing.
//
// Samples whose absolute rate exceeds StdMultiplier times the global rate
// deviation are PASS; all other defined samples are HIGH_INTEREST. The test
// produces no FAIL tier, and the deviation baseline is global rather than
// rolling; both are documented limitations of the method.
func RateOfChange(series types.Series, params types.RateOfChangeParams) ([]types.Flag, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if series.Len() == 0 {
		return nil, types.ErrEmptyInput
	}

	s := series.Sorted()
	rate := make([]float64, s.Len())
	rate[0] = math.NaN()
	for i := 1; i < s.Len(); i++ {
		elapsed := s.Timestamps[i].Sub(s.Timestamps[i-1]).Seconds()
		if elapsed <= 0 || s.IsMissing(i) || s.IsMissing(i-1) {
			rate[i] = math.NaN()
			continue
		}
		rate[i] = (s.Values[i] - s.Values[i-1]) / elapsed
	}

	threshold := params.StdMultiplier * populationStd(rate)

	flags := make([]types.Flag, s.Len())
	for i := range flags {
		switch {
		case s.IsMissing(i) || math.IsNaN(rate[i]):
			flags[i] = types.FlagMissingData
		case math.Abs(rate[i]) > threshold:
			flags[i] = types.FlagPass
		default:
			flags[i] = types.FlagHighInterest
		}
	}
	return flags, nil
}

// populationStd ignores NaN entries; it is NaN when no rate is defined.
func populationStd(values []float64) float64 {
	var sum float64
	var n int
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	mean := sum / float64(n)
	var ss float64
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n))
}
