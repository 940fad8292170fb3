package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/roach88/sortbench/internal/bench"
)

// Entry is a stored result together with the run it belongs to.
type Entry struct {
	Run    Run          `json:"run"`
	Seq    int64        `json:"seq"`
	Result bench.Result `json:"result"`
}

// Filter narrows ListResults.
type Filter struct {
	// RunID keeps only results of this run when non-empty.
	RunID string
	// Algorithm keeps only results for this short name when non-empty.
	Algorithm string
	// Limit keeps only the most recent Limit results when positive.
	Limit int
}

// ListResults returns stored results ordered by run (oldest first) and then
// by report order within the run.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) ListResults(ctx context.Context, f Filter) ([]Entry, error) {
	limit := -1
	if f.Limit > 0 {
		limit = f.Limit
	}

	// Newest first so LIMIT keeps the most recent rows; reversed below.
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.input_hash, r.settings_hash, r.element_type, r.input_len, r.trials, r.created_at,
		       res.seq, res.algorithm, res.label, res.total_seconds, res.average_seconds
		FROM results res
		JOIN runs r ON res.run_id = r.id
		WHERE (? = '' OR res.run_id = ?)
		  AND (? = '' OR res.algorithm = ?)
		ORDER BY r.created_at DESC, r.id COLLATE BINARY DESC, res.seq DESC
		LIMIT ?
	`, f.RunID, f.RunID, f.Algorithm, f.Algorithm, limit)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}

	slices.Reverse(entries)
	return entries, nil
}

// ReadRun returns the run with the given ID.
// Returns found=false if no such run exists.
func (s *Store) ReadRun(ctx context.Context, id string) (run Run, found bool, err error) {
	var created string
	err = s.db.QueryRowContext(ctx, `
		SELECT id, input_hash, settings_hash, element_type, input_len, trials, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.InputHash, &run.SettingsHash, &run.ElementType, &run.InputLen, &run.Trials, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, fmt.Errorf("read run %s: %w", id, err)
	}

	run.CreatedAt, err = time.Parse(timeLayout, created)
	if err != nil {
		return Run{}, false, fmt.Errorf("read run %s: parse created_at: %w", id, err)
	}
	return run, true, nil
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var (
		e       Entry
		created string
	)
	err := rows.Scan(
		&e.Run.ID, &e.Run.InputHash, &e.Run.SettingsHash, &e.Run.ElementType, &e.Run.InputLen, &e.Run.Trials, &created,
		&e.Seq, &e.Result.Algorithm, &e.Result.Label, &e.Result.TotalSeconds, &e.Result.AverageSeconds,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("scan result: %w", err)
	}

	e.Run.CreatedAt, err = time.Parse(timeLayout, created)
	if err != nil {
		return Entry{}, fmt.Errorf("scan result: parse created_at: %w", err)
	}
	e.Result.Trials = e.Run.Trials
	return e, nil
}
