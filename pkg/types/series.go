package types

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Series is an ordered sequence of (timestamp, value) observations for one
// named variable. Values use NaN as the missing-data sentinel. Callers are
// not required to pre-sort; every operation works on a sorted copy and never
// mutates the caller's slices.
type Series struct {
	Name       string
	Timestamps []time.Time
	Values     []float64
}

// Len returns the number of samples in the series.
func (s Series) Len() int {
	return len(s.Values)
}

// IsMissing reports whether the sample at index i carries the missing sentinel.
func (s Series) IsMissing(i int) bool {
	return math.IsNaN(s.Values[i])
}

// Sorted returns a copy of the series ordered by ascending timestamp.
func (s Series) Sorted() Series {
	idx := make([]int, s.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return s.Timestamps[idx[a]].Before(s.Timestamps[idx[b]])
	})

	out := Series{
		Name:       s.Name,
		Timestamps: make([]time.Time, s.Len()),
		Values:     make([]float64, s.Len()),
	}
	for i, j := range idx {
		out.Timestamps[i] = s.Timestamps[j]
		out.Values[i] = s.Values[j]
	}
	return out
}

// Copy returns a deep copy of the series.
func (s Series) Copy() Series {
	out := Series{
		Name:       s.Name,
		Timestamps: make([]time.Time, s.Len()),
		Values:     make([]float64, s.Len()),
	}
	copy(out.Timestamps, s.Timestamps)
	copy(out.Values, s.Values)
	return out
}

// Window returns a copy of the samples whose timestamps fall within
// [begin, end], inclusive on both ends. The receiver must be sorted.
func (s Series) Window(begin, end time.Time) Series {
	out := Series{Name: s.Name}
	for i, ts := range s.Timestamps {
		if ts.Before(begin) {
			continue
		}
		if ts.After(end) {
			break
		}
		out.Timestamps = append(out.Timestamps, ts)
		out.Values = append(out.Values, s.Values[i])
	}
	return out
}

// AlignedWith verifies that two series cover the same timestamps in the same
// order. It returns ErrMisalignedInput (wrapped) when lengths or timestamps
// differ.
func (s Series) AlignedWith(other Series) error {
	if s.Len() != other.Len() {
		return fmt.Errorf("%w: series %q has %d samples, %q has %d",
			ErrMisalignedInput, s.Name, s.Len(), other.Name, other.Len())
	}
	for i := range s.Timestamps {
		if !s.Timestamps[i].Equal(other.Timestamps[i]) {
			return fmt.Errorf("%w: timestamp mismatch at index %d: %s vs %s",
				ErrMisalignedInput, i, s.Timestamps[i], other.Timestamps[i])
		}
	}
	return nil
}

// MaskFlags returns a copy of the series with values set to NaN wherever the
// corresponding flag is in the bad set. The flag slice must align 1:1 with
// the series.
func (s Series) MaskFlags(flags []Flag, bad ...Flag) (Series, error) {
	if len(flags) != s.Len() {
		return Series{}, fmt.Errorf("%w: %d flags for %d samples",
			ErrMisalignedInput, len(flags), s.Len())
	}
	out := s.Copy()
	for i, f := range flags {
		for _, b := range bad {
			if f == b {
				out.Values[i] = math.NaN()
				break
			}
		}
	}
	return out, nil
}
