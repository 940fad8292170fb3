package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/sortbench/internal/bench"
)

// createTestStore opens a fresh database under t.TempDir().
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var testEpoch = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// createTestRun creates a run created offset seconds after testEpoch.
func createTestRun(id string, offset int) Run {
	return Run{
		ID:           id,
		InputHash:    "hash-" + id,
		SettingsHash: "settings-" + id,
		ElementType:  "float",
		InputLen:     10,
		Trials:       2,
		CreatedAt:    testEpoch.Add(time.Duration(offset) * time.Second),
	}
}

func createTestResult(alg string, total float64) bench.Result {
	return bench.Result{
		Algorithm:      alg,
		Label:          alg + " label",
		Trials:         2,
		TotalSeconds:   total,
		AverageSeconds: total / 2,
	}
}
