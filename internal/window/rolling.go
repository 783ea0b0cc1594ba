// Package window implements rolling-window statistics over sample slices.
// Missing samples are NaN and are skipped inside a window; a statistic that
// cannot be computed is itself NaN so callers can translate it into the flag
// taxonomy.
package window

import "math"

// Std computes a rolling population standard deviation over windows of the
// given width. Centered windows span [i-width/2, i+width/2]; trailing windows
// span [i-width+1, i]. Windows are clipped at the series boundaries.
//
// minPeriods is the edge-fill convention: the number of non-NaN samples a
// window must hold before the deviation is defined. Zero (or any value
// greater than width) requires a fully populated window. A deviation needs at
// least two samples regardless.
func Std(values []float64, width int, centered bool, minPeriods int) []float64 {
	floor := minPeriods
	if floor <= 0 || floor > width {
		floor = width
	}
	if floor < 2 {
		floor = 2
	}

	out := make([]float64, len(values))
	for i := range values {
		lo, hi := bounds(i, width, centered, len(values))

		var sum float64
		var n int
		for j := lo; j <= hi; j++ {
			if math.IsNaN(values[j]) {
				continue
			}
			sum += values[j]
			n++
		}
		if n < floor || n < 2 {
			out[i] = math.NaN()
			continue
		}
		mean := sum / float64(n)
		var ss float64
		for j := lo; j <= hi; j++ {
			if math.IsNaN(values[j]) {
				continue
			}
			d := values[j] - mean
			ss += d * d
		}
		out[i] = math.Sqrt(ss / float64(n))
	}
	return out
}

// Midpoints computes, for each sample, the mean of the first and last values
// of the centered window [i-halfWindow, i+halfWindow]: a straight-line
// interpolation across the window, independent of the sample itself. The
// result is NaN where the window extends past a series boundary or where
// either endpoint is missing.
func Midpoints(values []float64, halfWindow int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		lo, hi := i-halfWindow, i+halfWindow
		if lo < 0 || hi >= len(values) {
			out[i] = math.NaN()
			continue
		}
		out[i] = (values[lo] + values[hi]) / 2
	}
	return out
}

func bounds(i, width int, centered bool, n int) (int, int) {
	var lo, hi int
	if centered {
		half := width / 2
		lo, hi = i-half, i+half
	} else {
		lo, hi = i-width+1, i
	}
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi
}
