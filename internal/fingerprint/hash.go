package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/roach88/sortbench/internal/bench"
)

// Digest domains. The version suffix leaves room for changing the encoding
// later.
const (
	DomainInput    = "sortbench/input/v1"
	DomainSettings = "sortbench/settings/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Input returns the digest of a canonical input list of the given element
// type. Values are encoded with the shortest representation that
// round-trips, so digests do not depend on print precision.
func Input[E bench.Number](elementType string, values []E) (string, error) {
	rendered := make([]string, len(values))
	for i, v := range values {
		rendered[i] = exact(v)
	}

	canonical, err := MarshalCanonical(map[string]any{
		"element_type": elementType,
		"length":       len(values),
		"values":       rendered,
	})
	if err != nil {
		return "", fmt.Errorf("fingerprint input: %w", err)
	}
	return hashWithDomain(DomainInput, canonical), nil
}

// Settings returns the digest of everything besides the input that shapes a
// run's report: print precision, delimiter, quiet and time flags, the trial
// count and the algorithms selected, in report order.
func Settings(cfg bench.Config, algorithms []string) (string, error) {
	if algorithms == nil {
		algorithms = []string{}
	}
	canonical, err := MarshalCanonical(map[string]any{
		"algorithms": algorithms,
		"delimiter":  cfg.Delimiter,
		"precision":  cfg.Precision,
		"quiet":      cfg.Quiet,
		"show_time":  cfg.ShowTime,
		"trials":     cfg.Trials,
	})
	if err != nil {
		return "", fmt.Errorf("fingerprint settings: %w", err)
	}
	return hashWithDomain(DomainSettings, canonical), nil
}

func exact[E bench.Number](v E) string {
	switch x := any(v).(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	}
	return bench.FormatValue(v, 0)
}
