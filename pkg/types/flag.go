// Package types defines the public domain types for the oceanqc quality-control core.
package types

// Flag is the ordinal quality classification assigned to one observation.
// The numeric order 0 < 1 < 2 < 3 < 4 reads as increasing severity for human
// interpretation only; tests combine flags through explicit override rules,
// never by numeric comparison. MISSING_DATA (9) is an out-of-band marker,
// not a severity level.
type Flag int8

// Flag values enumerate the possible per-sample test outcomes.
const (
	FlagNotEvaluated Flag = 0
	FlagPass         Flag = 1
	FlagHighInterest Flag = 2
	FlagSuspect      Flag = 3
	FlagFail         Flag = 4
	FlagMissingData  Flag = 9
)

// String returns the canonical name of the flag for logs and reports.
func (f Flag) String() string {
	switch f {
	case FlagNotEvaluated:
		return "NOT_EVALUATED"
	case FlagPass:
		return "PASS"
	case FlagHighInterest:
		return "HIGH_INTEREST"
	case FlagSuspect:
		return "SUSPECT"
	case FlagFail:
		return "FAIL"
	case FlagMissingData:
		return "MISSING_DATA"
	default:
		return "UNKNOWN"
	}
}

// TestName identifies one of the built-in quality-control tests.
type TestName string

// TestName values enumerate the built-in tests.
const (
	TestLocation     TestName = "location"
	TestGrossRange   TestName = "gross_range"
	TestSpike        TestName = "spike"
	TestFlatLine     TestName = "flat_line"
	TestRateOfChange TestName = "rate_of_change"
)
