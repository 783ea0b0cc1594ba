package types

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the quality-control core. Configuration and
// alignment errors fail fast before any computation; missing-data conditions
// are absorbed into the Flag taxonomy instead of being raised.
var (
	// ErrEmptyInput is returned when an input series has zero samples.
	ErrEmptyInput = errors.New("input series has no samples")

	// ErrMisalignedInput is returned when paired series differ in length or
	// timestamps, or when a flag slice does not align with its series.
	ErrMisalignedInput = errors.New("input series are not aligned")
)

// ConfigError reports an invalid test parameter: a negative or zero-width
// window, or a non-finite multiplier or threshold. It is never silently
// clamped.
type ConfigError struct {
	Param  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config invalid: %s %s", e.Param, e.Reason)
}

func newConfigError(param, reason string) *ConfigError {
	return &ConfigError{Param: param, Reason: reason}
}
