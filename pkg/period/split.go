// Package period partitions time series into contiguous temporal segments:
// gap-delimited periods, instrument profiles and instrument stops.
package period

import (
	"sort"
	"time"

	"github.com/tidelab/oceanqc/pkg/types"
)

// endBackoff trims each period's end to 30 seconds before the next period's
// begin so a period never bleeds into its successor.
const endBackoff = 30 * time.Second

// Split partitions the distinct timestamps of a series into maximal runs
// where consecutive timestamps are no more than minGap apart. A difference
// strictly greater than minGap marks a break: the timestamp after the gap
// starts a new period. Each period ends 30 seconds before the next period's
// begin (the last runs to the series maximum); periods left without samples
// by that back-off are discarded. When no break is found, a single period
// spans the full range.
//
// The returned periods are non-overlapping and ordered by begin time.
func Split(timestamps []time.Time, minGap time.Duration) ([]types.Period, error) {
	if len(timestamps) == 0 {
		return nil, types.ErrEmptyInput
	}

	ts := make([]time.Time, len(timestamps))
	copy(ts, timestamps)
	sort.Slice(ts, func(a, b int) bool { return ts[a].Before(ts[b]) })
	ts = dedupe(ts)

	starts := []time.Time{ts[0]}
	for i := 1; i < len(ts); i++ {
		if ts[i].Sub(ts[i-1]) > minGap {
			starts = append(starts, ts[i])
		}
	}

	var periods []types.Period
	for k, begin := range starts {
		end := ts[len(ts)-1]
		if k < len(starts)-1 {
			cutoff := starts[k+1].Add(-endBackoff)
			var found bool
			end, found = lastAtOrBefore(ts, begin, cutoff)
			if !found {
				continue
			}
		}
		periods = append(periods, types.Period{Begin: begin, End: end})
	}

	if len(periods) == 0 {
		periods = []types.Period{{Begin: ts[0], End: ts[len(ts)-1]}}
	}
	return periods, nil
}

// lastAtOrBefore returns the latest timestamp in [begin, cutoff].
func lastAtOrBefore(ts []time.Time, begin, cutoff time.Time) (time.Time, bool) {
	var last time.Time
	var found bool
	for _, t := range ts {
		if t.Before(begin) {
			continue
		}
		if t.After(cutoff) {
			break
		}
		last, found = t, true
	}
	return last, found
}

func dedupe(ts []time.Time) []time.Time {
	out := ts[:1]
	for _, t := range ts[1:] {
		if !t.Equal(out[len(out)-1]) {
			out = append(out, t)
		}
	}
	return out
}
