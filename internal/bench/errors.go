package bench

import (
	"errors"
	"fmt"
)

// ConfigErrorCode identifies an invalid configuration. The numeric value is
// the process exit status reported for it.
type ConfigErrorCode int

const (
	// ErrCodePrecUnder: precision below zero.
	ErrCodePrecUnder ConfigErrorCode = 1
	// ErrCodePrecOver: precision above the element type's significant digits.
	ErrCodePrecOver ConfigErrorCode = 2
	// ErrCodeAvgUnder: trial count below one.
	ErrCodeAvgUnder ConfigErrorCode = 3
	// ErrCodeFillRandUnder: negative random fill length.
	ErrCodeFillRandUnder ConfigErrorCode = 4
	// ErrCodeFillForwardUnder: negative forward fill length.
	ErrCodeFillForwardUnder ConfigErrorCode = 5
	// ErrCodeFillBackwardUnder: negative backward fill length.
	ErrCodeFillBackwardUnder ConfigErrorCode = 6
	// ErrCodeAlgEmpty: an exclusion entry is missing.
	ErrCodeAlgEmpty ConfigErrorCode = 7
	// ErrCodeAlgInvalid: an algorithm name matches nothing declared.
	ErrCodeAlgInvalid ConfigErrorCode = 8
)

// ConfigError is returned before any algorithm runs.
type ConfigError struct {
	Code    ConfigErrorCode
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// IsConfigError reports whether err wraps a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// InternalError reports an unexpected failure while running an algorithm,
// such as a panic inside the sort.
type InternalError struct {
	Algorithm string
	Cause     string
}

func (e *InternalError) Error() string {
	if e.Algorithm != "" {
		return fmt.Sprintf("internal error in %s: %s", e.Algorithm, e.Cause)
	}
	return "internal error: " + e.Cause
}

// IsInternalError reports whether err wraps an InternalError.
func IsInternalError(err error) bool {
	var ie *InternalError
	return errors.As(err, &ie)
}
