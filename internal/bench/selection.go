package bench

import (
	"fmt"
	"slices"
	"strings"
)

// Selection decides which algorithms run in each trial.
//
// An algorithm runs iff (All || it is enabled) && its name is not in Except.
type Selection struct {
	All     bool     `json:"all"`
	Enabled []string `json:"enabled,omitempty"`
	Except  []string `json:"except,omitempty"`
}

// Validate rejects empty or unknown names in Except and unknown names in
// Enabled. An Except entry that looks like a flag ("--x") means the option
// lost its argument.
func (s Selection) Validate() error {
	for _, name := range s.Except {
		if name == "" || strings.HasPrefix(name, "--") {
			return &ConfigError{
				Code:    ErrCodeAlgEmpty,
				Field:   "alg-except",
				Message: "the required argument for option '--alg-except' is missing",
			}
		}
		if !IsKnown(name) {
			return &ConfigError{
				Code:    ErrCodeAlgInvalid,
				Field:   "alg-except",
				Message: fmt.Sprintf("the argument ('%s') for option '--alg-except' is invalid", name),
			}
		}
	}
	for _, name := range s.Enabled {
		if !IsKnown(name) {
			return &ConfigError{
				Code:    ErrCodeAlgInvalid,
				Field:   "alg",
				Message: fmt.Sprintf("unknown algorithm %q", name),
			}
		}
	}
	return nil
}

// apply sets the Enabled flag of every listed algorithm.
func (s Selection) apply(algs []Algorithm) {
	for i := range algs {
		if slices.Contains(s.Enabled, algs[i].Name) {
			algs[i].Enabled = true
		}
	}
}

// Selects reports whether a runs under this selection.
func (s Selection) Selects(a Algorithm) bool {
	return (s.All || a.Enabled) && !slices.Contains(s.Except, a.Name)
}

// Selected returns the short names this selection runs, in declared order.
func (s Selection) Selected() []string {
	algs := Declared()
	s.apply(algs)
	var names []string
	for _, a := range algs {
		if s.Selects(a) {
			names = append(names, a.Name)
		}
	}
	return names
}
