package qc

import (
	"github.com/tidelab/oceanqc/pkg/types"
)

// GrossRange verifies that samples fall within the limits defined by the
// sensor manufacturer and, optionally, a tighter operator-defined range.
//
// The baseline is PASS inside [sensorMin, sensorMax] and FAIL outside. When
// an operator bound is set and differs from the matching sensor bound, the
// band between them narrows to SUSPECT. The band is closed at the operator
// bound: PASS requires the value strictly inside the operator range, so a
// value exactly at an operator bound is SUSPECT. MISSING_DATA is applied
// last and overrides everything.
func GrossRange(series types.Series, params types.GrossRangeParams) ([]types.Flag, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if series.Len() == 0 {
		return nil, types.ErrEmptyInput
	}

	s := series.Sorted()
	flags := make([]types.Flag, s.Len())
	for i, v := range s.Values {
		if s.IsMissing(i) {
			flags[i] = types.FlagMissingData
			continue
		}

		if v < params.SensorMin || v > params.SensorMax {
			flags[i] = types.FlagFail
			continue
		}
		flags[i] = types.FlagPass

		if params.OperatorMin != nil && *params.OperatorMin != params.SensorMin && v <= *params.OperatorMin {
			flags[i] = types.FlagSuspect
		}
		if params.OperatorMax != nil && *params.OperatorMax != params.SensorMax && v >= *params.OperatorMax {
			flags[i] = types.FlagSuspect
		}
	}
	return flags, nil
}
