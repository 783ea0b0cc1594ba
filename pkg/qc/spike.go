package qc

import (
	"math"

	"github.com/tidelab/oceanqc/internal/window"
	"github.com/tidelab/oceanqc/pkg/types"
)

// Spike flags samples that deviate sharply from a local straight-line
// reference. The reference for each sample is the mean of the first and last
// values of the centered window of width 2*SpikeHalfWindow+1; the deviation
// is scored against a centered rolling standard deviation of width
// 2*StdHalfWindow+1 (shrinking at the edges, two samples minimum).
//
// Per sample, with dev = |value - reference|:
//
//	dev <  LowMultiplier*std                      -> PASS
//	LowMultiplier*std <= dev <= HighMultiplier*std -> HIGH_INTEREST
//	dev >  HighMultiplier*std                      -> FAIL
//
// The boundary inclusivity above governs classification at equality and is
// part of the contract. MISSING_DATA marks samples whose value or reference
// is undefined; a defined sample whose local deviation cannot be computed is
// NOT_EVALUATED instead.
func Spike(series types.Series, params types.SpikeParams) ([]types.Flag, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if series.Len() == 0 {
		return nil, types.ErrEmptyInput
	}

	s := series.Sorted()
	ref := window.Midpoints(s.Values, params.SpikeHalfWindow)
	sd := window.Std(s.Values, 2*params.StdHalfWindow+1, true, 2)

	flags := make([]types.Flag, s.Len())
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsNaN(ref[i]) {
			flags[i] = types.FlagMissingData
			continue
		}
		if math.IsNaN(sd[i]) {
			flags[i] = types.FlagNotEvaluated
			continue
		}

		dev := math.Abs(v - ref[i])
		low := params.LowMultiplier * sd[i]
		high := params.HighMultiplier * sd[i]
		switch {
		case dev < low:
			flags[i] = types.FlagPass
		case dev > high:
			flags[i] = types.FlagFail
		default:
			flags[i] = types.FlagHighInterest
		}
	}
	return flags, nil
}
