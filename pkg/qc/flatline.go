package qc

import (
	"github.com/tidelab/oceanqc/internal/window"
	"github.com/tidelab/oceanqc/pkg/types"
)

// FlatLine flags runs of samples with suspiciously little variability, the
// signature of a stuck or resting instrument. Two trailing rolling standard
// deviations are computed, over windows of width 2*SuspectHalfWindow+1 and
// 2*FailHalfWindow+1. Overrides apply in order, last write wins:
//
//  1. SUSPECT where the suspect-window deviation <= MaxAllowedStd.
//  2. FAIL where the fail-window deviation <= MaxAllowedStd; the longer
//     window confirms a flatter run and is scored worse.
//  3. Samples matching neither are PASS.
//  4. Missing samples are MISSING_DATA regardless.
//
// Edge fill follows params.MinPeriods (default: a window must be fully
// populated before its deviation is defined).
func FlatLine(series types.Series, params types.FlatLineParams) ([]types.Flag, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if series.Len() == 0 {
		return nil, types.ErrEmptyInput
	}

	s := series.Sorted()
	suspectStd := window.Std(s.Values, 2*params.SuspectHalfWindow+1, false, params.MinPeriods)
	failStd := window.Std(s.Values, 2*params.FailHalfWindow+1, false, params.MinPeriods)

	flags := make([]types.Flag, s.Len())
	for i := range flags {
		if suspectStd[i] <= params.MaxAllowedStd {
			flags[i] = types.FlagSuspect
		}
		if failStd[i] <= params.MaxAllowedStd {
			flags[i] = types.FlagFail
		}
		if flags[i] == types.FlagNotEvaluated {
			flags[i] = types.FlagPass
		}
		if s.IsMissing(i) {
			flags[i] = types.FlagMissingData
		}
	}
	return flags, nil
}
