// Package qc implements QARTOD-style quality-control tests over time series.
//
// Every test sorts its input by timestamp, returns a flag slice aligned 1:1
// with the sorted samples and never mutates the caller's series. Flags are
// assigned through explicit override rules: a baseline classification first,
// narrowing tiers next, and MISSING_DATA last, which is absolute.
package qc
