package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/roach88/sortbench/internal/bench"
)

// Recorder persists a session's results under one run. It implements
// bench.Recorder.
type Recorder struct {
	store *Store
	runID string

	mu  sync.Mutex
	seq int64
}

var _ bench.Recorder = (*Recorder)(nil)

// BeginRun writes run and returns a Recorder for its results. When run.ID is
// empty, gen supplies one.
func (s *Store) BeginRun(ctx context.Context, gen RunIDGenerator, run Run) (*Recorder, error) {
	if run.ID == "" {
		run.ID = gen.Generate()
	}
	if err := s.WriteRun(ctx, run); err != nil {
		return nil, fmt.Errorf("begin run: %w", err)
	}
	return &Recorder{store: s, runID: run.ID}, nil
}

// RunID returns the ID results are stored under.
func (r *Recorder) RunID() string {
	return r.runID
}

// Record stores res with the next sequence number in the run.
func (r *Recorder) Record(ctx context.Context, res bench.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	return r.store.WriteResult(ctx, r.runID, r.seq, res)
}
