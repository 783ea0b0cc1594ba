package types

import "math"

// GrossRangeParams configures the gross range test. Sensor bounds are the
// absolute limits the instrument can report; operator bounds, when set,
// define a tighter range whose violation is only SUSPECT.
type GrossRangeParams struct {
	SensorMin   float64  `yaml:"sensorMin" json:"sensorMin"`
	SensorMax   float64  `yaml:"sensorMax" json:"sensorMax"`
	OperatorMin *float64 `yaml:"operatorMin,omitempty" json:"operatorMin,omitempty"`
	OperatorMax *float64 `yaml:"operatorMax,omitempty" json:"operatorMax,omitempty"`
}

// Validate checks bounds for finiteness and ordering.
func (p GrossRangeParams) Validate() error {
	if !isFinite(p.SensorMin) || !isFinite(p.SensorMax) {
		return newConfigError("sensor bounds", "must be finite")
	}
	if p.SensorMin > p.SensorMax {
		return newConfigError("sensorMin", "must not exceed sensorMax")
	}
	if p.OperatorMin != nil && !isFinite(*p.OperatorMin) {
		return newConfigError("operatorMin", "must be finite")
	}
	if p.OperatorMax != nil && !isFinite(*p.OperatorMax) {
		return newConfigError("operatorMax", "must be finite")
	}
	return nil
}

// SpikeParams configures the spike test. The reference value for each sample
// interpolates across a window of width 2*SpikeHalfWindow+1; local
// variability is a centered rolling standard deviation over a window of
// width 2*StdHalfWindow+1.
type SpikeParams struct {
	SpikeHalfWindow int     `yaml:"spikeHalfWindow" json:"spikeHalfWindow"`
	StdHalfWindow   int     `yaml:"stdHalfWindow" json:"stdHalfWindow"`
	LowMultiplier   float64 `yaml:"lowMultiplier" json:"lowMultiplier"`
	HighMultiplier  float64 `yaml:"highMultiplier" json:"highMultiplier"`
}

// DefaultSpikeParams returns the standard spike test configuration.
func DefaultSpikeParams() SpikeParams {
	return SpikeParams{
		SpikeHalfWindow: 1,
		StdHalfWindow:   15,
		LowMultiplier:   3,
		HighMultiplier:  5,
	}
}

// Validate checks window sizes and multipliers.
func (p SpikeParams) Validate() error {
	if p.SpikeHalfWindow < 1 {
		return newConfigError("spikeHalfWindow", "must be at least 1")
	}
	if p.StdHalfWindow < 0 {
		return newConfigError("stdHalfWindow", "must not be negative")
	}
	if !isFinite(p.LowMultiplier) || !isFinite(p.HighMultiplier) {
		return newConfigError("multipliers", "must be finite")
	}
	return nil
}

// FlatLineParams configures the flat-line test. Windows are trailing; a
// sample is scored against the variability of the run ending at it.
// MinPeriods sets the edge-fill convention: 0 requires a fully populated
// window before the rolling deviation is defined, any positive value allows
// shrunken windows with at least that many samples.
type FlatLineParams struct {
	MaxAllowedStd     float64 `yaml:"maxAllowedStd" json:"maxAllowedStd"`
	FailHalfWindow    int     `yaml:"failHalfWindow" json:"failHalfWindow"`
	SuspectHalfWindow int     `yaml:"suspectHalfWindow" json:"suspectHalfWindow"`
	MinPeriods        int     `yaml:"minPeriods,omitempty" json:"minPeriods,omitempty"`
}

// DefaultFlatLineParams returns the standard flat-line configuration.
func DefaultFlatLineParams() FlatLineParams {
	return FlatLineParams{
		MaxAllowedStd:     0,
		FailHalfWindow:    5,
		SuspectHalfWindow: 3,
	}
}

// Validate checks window sizes and the deviation ceiling.
func (p FlatLineParams) Validate() error {
	if p.FailHalfWindow < 1 {
		return newConfigError("failHalfWindow", "must be at least 1")
	}
	if p.SuspectHalfWindow < 1 {
		return newConfigError("suspectHalfWindow", "must be at least 1")
	}
	if p.MinPeriods < 0 {
		return newConfigError("minPeriods", "must not be negative")
	}
	if !isFinite(p.MaxAllowedStd) || p.MaxAllowedStd < 0 {
		return newConfigError("maxAllowedStd", "must be finite and non-negative")
	}
	return nil
}

// RateOfChangeParams configures the rate-of-change test.
type RateOfChangeParams struct {
	StdMultiplier float64 `yaml:"stdMultiplier" json:"stdMultiplier"`
}

// DefaultRateOfChangeParams returns the standard rate-of-change configuration.
func DefaultRateOfChangeParams() RateOfChangeParams {
	return RateOfChangeParams{StdMultiplier: 2}
}

// Validate checks the multiplier.
func (p RateOfChangeParams) Validate() error {
	if !isFinite(p.StdMultiplier) {
		return newConfigError("stdMultiplier", "must be finite")
	}
	return nil
}

// ProfileParams configures profile extraction. BufferSeconds expands each
// profile outward to recover edges trimmed by the flat-line window effect.
type ProfileParams struct {
	Direction     Direction      `yaml:"direction" json:"direction"`
	BufferSeconds int            `yaml:"bufferSeconds" json:"bufferSeconds"`
	MinGapSeconds int            `yaml:"minGapSeconds" json:"minGapSeconds"`
	FlatLine      FlatLineParams `yaml:"flatLine" json:"flatLine"`
}

// DefaultProfileParams returns the standard profile extraction configuration.
func DefaultProfileParams() ProfileParams {
	fl := DefaultFlatLineParams()
	fl.MaxAllowedStd = 0.02
	return ProfileParams{
		Direction:     DirectionAll,
		BufferSeconds: 10,
		MinGapSeconds: 180,
		FlatLine:      fl,
	}
}

// Validate checks the direction filter, the buffer, the gap and the nested
// flat-line parameters.
func (p ProfileParams) Validate() error {
	switch p.Direction {
	case DirectionAll, DirectionUp, DirectionDown:
	default:
		return newConfigError("direction", `must be "all", "up" or "down"`)
	}
	if p.BufferSeconds < 0 {
		return newConfigError("bufferSeconds", "must not be negative")
	}
	if p.MinGapSeconds <= 0 {
		return newConfigError("minGapSeconds", "must be positive")
	}
	return p.FlatLine.Validate()
}

// StopParams configures stop extraction.
type StopParams struct {
	BufferSeconds int            `yaml:"bufferSeconds" json:"bufferSeconds"`
	MinGapSeconds int            `yaml:"minGapSeconds" json:"minGapSeconds"`
	FlatLine      FlatLineParams `yaml:"flatLine" json:"flatLine"`
}

// DefaultStopParams returns the standard stop extraction configuration.
func DefaultStopParams() StopParams {
	fl := DefaultFlatLineParams()
	fl.MaxAllowedStd = 0.01
	return StopParams{
		BufferSeconds: 10,
		MinGapSeconds: 60,
		FlatLine:      fl,
	}
}

// Validate checks the buffer, the gap and the nested flat-line parameters.
func (p StopParams) Validate() error {
	if p.BufferSeconds < 0 {
		return newConfigError("bufferSeconds", "must not be negative")
	}
	if p.MinGapSeconds <= 0 {
		return newConfigError("minGapSeconds", "must be positive")
	}
	return p.FlatLine.Validate()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
