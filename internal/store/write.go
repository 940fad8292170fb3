package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roach88/sortbench/internal/bench"
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Run describes one benchmark session.
type Run struct {
	ID           string    `json:"id"`
	InputHash    string    `json:"input_hash"`
	SettingsHash string    `json:"settings_hash"`
	ElementType  string    `json:"element_type"`
	InputLen     int64     `json:"input_len"`
	Trials       int64     `json:"trials"`
	CreatedAt    time.Time `json:"created_at"`
}

// WriteRun inserts a run record into the store.
// Uses ON CONFLICT(id) DO NOTHING for idempotency.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	if run.ID == "" {
		return errors.New("write run: empty run ID")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, input_hash, settings_hash, element_type, input_len, trials, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.InputHash,
		run.SettingsHash,
		run.ElementType,
		run.InputLen,
		run.Trials,
		run.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	return nil
}

// WriteResult inserts one algorithm's result for a run.
//
// Uses ON CONFLICT DO NOTHING: an algorithm reports at most once per run, so
// a second write for the same (run, algorithm) is silently ignored.
//
// The run referenced by runID must exist (foreign key constraint).
func (s *Store) WriteResult(ctx context.Context, runID string, seq int64, r bench.Result) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results
		(run_id, seq, algorithm, label, total_seconds, average_seconds)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		runID,
		seq,
		r.Algorithm,
		r.Label,
		r.TotalSeconds,
		r.AverageSeconds,
	)
	if err != nil {
		return fmt.Errorf("write result %s: %w", r.Algorithm, err)
	}

	return nil
}
