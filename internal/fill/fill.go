// Package fill generates benchmark input lists.
package fill

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/roach88/sortbench/internal/bench"
)

// Random returns n values drawn from r. Integers are uniform on the closed
// range [lower, upper]; floats are uniform on [lower, upper).
func Random[E bench.Number](n int64, lower, upper E, r *rand.Rand) ([]E, error) {
	if err := checkLength(n, bench.ErrCodeFillRandUnder, "fill-rand"); err != nil {
		return nil, err
	}
	if upper < lower {
		return nil, fmt.Errorf("random fill bounds are inverted: lower %v > upper %v", lower, upper)
	}

	out := make([]E, n)
	switch any(lower).(type) {
	case float32, float64:
		lo, hi := float64(lower), float64(upper)
		for i := range out {
			out[i] = E(lo + r.Float64()*(hi-lo))
		}
	default:
		lo := int64(lower)
		span := uint64(int64(upper)-lo) + 1
		for i := range out {
			var off uint64
			if span == 0 {
				// [lower, upper] covers all 2^64 values.
				off = r.Uint64()
			} else {
				off = r.Uint64N(span)
			}
			out[i] = E(lo + int64(off))
		}
	}
	return out, nil
}

// Forward returns 0, inc, 2*inc, ... (n values).
func Forward[E bench.Number](n int64, inc E) ([]E, error) {
	if err := checkLength(n, bench.ErrCodeFillForwardUnder, "fill-forward"); err != nil {
		return nil, err
	}
	return count(n, inc), nil
}

// Backward returns the Forward sequence reversed, ending at 0.
func Backward[E bench.Number](n int64, inc E) ([]E, error) {
	if err := checkLength(n, bench.ErrCodeFillBackwardUnder, "fill-backward"); err != nil {
		return nil, err
	}
	out := count(n, inc)
	slices.Reverse(out)
	return out, nil
}

func count[E bench.Number](n int64, inc E) []E {
	out := make([]E, 0, n)
	var v E
	for i := int64(0); i < n; i++ {
		out = append(out, v)
		v += inc
	}
	return out
}

// Lengths checks the random, forward and backward lengths in that order,
// whether or not the corresponding fill is used.
func Lengths(random, forward, backward int64) error {
	if err := checkLength(random, bench.ErrCodeFillRandUnder, "fill-rand"); err != nil {
		return err
	}
	if err := checkLength(forward, bench.ErrCodeFillForwardUnder, "fill-forward"); err != nil {
		return err
	}
	return checkLength(backward, bench.ErrCodeFillBackwardUnder, "fill-backward")
}

func checkLength(n int64, code bench.ConfigErrorCode, field string) error {
	if n >= 0 {
		return nil
	}
	return &bench.ConfigError{
		Code:    code,
		Field:   field,
		Message: fmt.Sprintf("'--%s' must be >= 0", field),
	}
}
