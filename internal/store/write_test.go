package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sortbench/internal/bench"
	"github.com/roach88/sortbench/internal/testutil"
)

func TestWriteRun_Basic(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run := createTestRun("run-1", 0)
	require.NoError(t, s.WriteRun(ctx, run))

	got, found, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, run.InputHash, got.InputHash)
	assert.Equal(t, run.SettingsHash, got.SettingsHash)
	assert.Equal(t, run.ElementType, got.ElementType)
	assert.Equal(t, run.InputLen, got.InputLen)
	assert.Equal(t, run.Trials, got.Trials)
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", got.CreatedAt, run.CreatedAt)
}

func TestWriteRun_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run := createTestRun("run-1", 0)
	require.NoError(t, s.WriteRun(ctx, run))

	changed := run
	changed.InputHash = "other"
	require.NoError(t, s.WriteRun(ctx, changed))

	got, _, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run.InputHash, got.InputHash, "first write wins")
}

func TestWriteRun_EmptyID(t *testing.T) {
	s := createTestStore(t)
	err := s.WriteRun(context.Background(), createTestRun("", 0))
	assert.Error(t, err)
}

func TestWriteRun_RejectsZeroTrials(t *testing.T) {
	s := createTestStore(t)
	run := createTestRun("run-1", 0)
	run.Trials = 0
	assert.Error(t, s.WriteRun(context.Background(), run))
}

func TestReadRun_NotFound(t *testing.T) {
	s := createTestStore(t)
	_, found, err := s.ReadRun(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestWriteResult_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.WriteRun(ctx, createTestRun("run-1", 0)))

	require.NoError(t, s.WriteResult(ctx, "run-1", 1, createTestResult(bench.AlgBubbleSort, 0.5)))
	require.NoError(t, s.WriteResult(ctx, "run-1", 2, createTestResult(bench.AlgBubbleSort, 9)))

	entries, err := s.ListResults(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 0.5, entries[0].Result.TotalSeconds)
	assert.Equal(t, int64(1), entries[0].Seq)
}

func TestWriteResult_ForeignKeyViolation(t *testing.T) {
	s := createTestStore(t)
	err := s.WriteResult(context.Background(), "no-such-run", 1, createTestResult(bench.AlgHeapSort, 1))
	assert.Error(t, err)
}

func TestBeginRun_RecordsInOrder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	rec, err := s.BeginRun(ctx, testutil.NewFixedRunIDGenerator("run-fixed"), createTestRun("", 0))
	require.NoError(t, err)
	assert.Equal(t, "run-fixed", rec.RunID())

	require.NoError(t, rec.Record(ctx, createTestResult(bench.AlgMergeSort, 3)))
	require.NoError(t, rec.Record(ctx, createTestResult(bench.AlgQuickSort, 1)))

	entries, err := s.ListResults(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, bench.AlgMergeSort, entries[0].Result.Algorithm)
	assert.Equal(t, int64(1), entries[0].Seq)
	assert.Equal(t, bench.AlgQuickSort, entries[1].Result.Algorithm)
	assert.Equal(t, int64(2), entries[1].Seq)
	assert.Equal(t, "run-fixed", entries[1].Run.ID)
}

func TestBeginRun_KeepsExplicitID(t *testing.T) {
	s := createTestStore(t)
	rec, err := s.BeginRun(context.Background(), testutil.NewFixedRunIDGenerator(""), createTestRun("explicit", 0))
	require.NoError(t, err)
	assert.Equal(t, "explicit", rec.RunID())
}

func TestUUIDv7Generator_Unique(t *testing.T) {
	var gen UUIDv7Generator
	a, b := gen.Generate(), gen.Generate()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b, "UUIDv7 values sort by creation time")
}
