package period

import (
	"math"
	"sort"
	"time"

	"github.com/tidelab/oceanqc/pkg/qc"
	"github.com/tidelab/oceanqc/pkg/types"
)

// Stops extracts the stationary dwells of a lowered instrument from its
// cable-length series: the complement of the profile state, where the
// flat-line test scores the series as anything but PASS. Each dwell records
// the ceiling of the median cable length payed out over the interval, and
// its boundaries are expanded outward by the configured buffer.
//
// A series that never rests yields no stops and no error.
func Stops(cableLength types.Series, params types.StopParams) ([]types.Stop, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	flags, err := qc.FlatLine(cableLength, params.FlatLine)
	if err != nil {
		return nil, err
	}
	s := cableLength.Sorted()

	var resting []time.Time
	for i, f := range flags {
		if f != types.FlagPass {
			resting = append(resting, s.Timestamps[i])
		}
	}
	if len(resting) == 0 {
		return nil, nil
	}

	periods, err := Split(resting, time.Duration(params.MinGapSeconds)*time.Second)
	if err != nil {
		return nil, err
	}

	buffer := time.Duration(params.BufferSeconds) * time.Second
	stops := make([]types.Stop, 0, len(periods))
	for _, p := range periods {
		w := s.Window(p.Begin, p.End)
		var out int
		if m := median(w.Values); !math.IsNaN(m) {
			out = int(math.Ceil(m))
		}
		stops = append(stops, types.Stop{
			Period:         p.Expand(buffer),
			CableLengthOut: out,
		})
	}
	return stops, nil
}

// median ignores NaN entries; it is NaN for an all-missing window.
func median(values []float64) float64 {
	defined := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			defined = append(defined, v)
		}
	}
	if len(defined) == 0 {
		return math.NaN()
	}
	sort.Float64s(defined)
	n := len(defined)
	if n%2 == 0 {
		return (defined[n/2-1] + defined[n/2]) / 2
	}
	return defined[n/2]
}
