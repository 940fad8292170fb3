package bench

import "fmt"

// Number is the set of element types a session can sort.
type Number interface {
	int | int32 | int64 | float32 | float64
}

// Config is the immutable run configuration.
type Config struct {
	// Precision is the number of fractional digits printed for
	// floating-point elements. Integer elements ignore it.
	Precision int `json:"precision"`

	// Delimiter follows every printed element, the last one included.
	Delimiter string `json:"delimiter"`

	// Quiet suppresses the "Before:" list and every sorted list.
	Quiet bool `json:"quiet"`

	// ShowTime adds the CPU time (or average) to each report line.
	ShowTime bool `json:"show_time"`

	// Trials is how many times every selected algorithm runs (>= 1).
	Trials int64 `json:"trials"`
}

// DefaultConfig returns the defaults for element type E.
func DefaultConfig[E Number]() Config {
	return Config{
		Precision: MaxPrecision[E](),
		Delimiter: " ",
		Trials:    1,
	}
}

// MaxPrecision returns the number of significant decimal digits needed to
// round-trip E: 17 for float64, 9 for float32, 0 for integers.
func MaxPrecision[E Number]() int {
	var zero E
	switch any(zero).(type) {
	case float64:
		return 17
	case float32:
		return 9
	default:
		return 0
	}
}

// Validate checks the configuration for element type E.
func Validate[E Number](c Config) error {
	if c.Precision < 0 {
		return &ConfigError{
			Code:    ErrCodePrecUnder,
			Field:   "prec",
			Message: "'--prec' cannot be < 0",
		}
	}
	if max := MaxPrecision[E](); c.Precision > max {
		return &ConfigError{
			Code:    ErrCodePrecOver,
			Field:   "prec",
			Message: fmt.Sprintf("'--prec' cannot be greater than the data type's precision (%d)", max),
		}
	}
	if c.Trials <= 0 {
		return &ConfigError{
			Code:    ErrCodeAvgUnder,
			Field:   "avg",
			Message: "'--avg' cannot be <= 0",
		}
	}
	return nil
}
