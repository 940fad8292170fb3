package bench

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sortbench/internal/sorts"
	"github.com/roach88/sortbench/internal/testutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestSession builds a session with a step clock, a seeded generator and
// a buffer for the report.
func newTestSession[E Number](t *testing.T, cfg Config, sel Selection, input []E, step time.Duration) (*Session[E], *bytes.Buffer, *testutil.StepClock) {
	t.Helper()
	buf := &bytes.Buffer{}
	clock := testutil.NewStepClock(step)
	s, err := NewSession(cfg, sel, input,
		WithOutput(buf),
		WithClock(clock),
		WithLogger(quietLogger()),
		WithRand(rand.New(rand.NewPCG(1, 1))),
	)
	require.NoError(t, err)
	return s, buf, clock
}

func assertGolden(t *testing.T, name string, got []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, got)
}

func TestSession_InsertionSingleTrial(t *testing.T) {
	cfg := Config{Precision: 0, Delimiter: " ", ShowTime: true, Trials: 1}
	sel := Selection{Enabled: []string{AlgInsertionSort}}

	s, buf, _ := newTestSession(t, cfg, sel, []int64{3, 1, 2}, time.Millisecond)
	require.NoError(t, s.Run(context.Background()))

	assertGolden(t, "insertion_single_trial", buf.Bytes())
}

func TestSession_AllExceptQuietAverage(t *testing.T) {
	cfg := Config{Precision: 2, Delimiter: " ", Quiet: true, ShowTime: true, Trials: 3}
	sel := Selection{All: true, Except: []string{AlgBogosort, AlgPermutationSort}}

	s, buf, _ := newTestSession(t, cfg, sel, []float64{2.5, -1, 0}, 2*time.Millisecond)
	require.NoError(t, s.Run(context.Background()))

	assertGolden(t, "all_except_quiet_average", buf.Bytes())
}

func TestSession_FloatPrecisionNoTime(t *testing.T) {
	cfg := Config{Precision: 3, Delimiter: ", ", Trials: 1}
	sel := Selection{Enabled: []string{AlgMergeSort}}

	s, buf, _ := newTestSession(t, cfg, sel, []float64{1.5, -0.25}, time.Millisecond)
	require.NoError(t, s.Run(context.Background()))

	assertGolden(t, "float_precision_no_time", buf.Bytes())
}

func TestSession_EndToEndInsertion(t *testing.T) {
	cfg := Config{Precision: 0, Delimiter: " ", Trials: 1}
	s, _, _ := newTestSession(t, cfg, Selection{Enabled: []string{AlgInsertionSort}}, []int64{3, 1, 2}, time.Millisecond)

	idx := indexOf(t, s, AlgInsertionSort)
	sorted, _, err := s.runOne(context.Background(), idx, 0)
	require.NoError(t, err)

	assert.Equal(t, "1 2 3 ", FormatSequence(sorted, cfg.Precision, cfg.Delimiter))
}

func TestSession_AllEqualInputTerminates(t *testing.T) {
	cfg := Config{Precision: 0, Delimiter: " ", Quiet: true, Trials: 1}
	s, _, _ := newTestSession(t, cfg, Selection{All: true}, []int64{5, 5, 5}, time.Microsecond)

	for i, alg := range s.Algorithms() {
		sorted, _, err := s.runOne(context.Background(), i, 0)
		require.NoError(t, err, alg.Name)
		assert.Equal(t, []int64{5, 5, 5}, sorted, alg.Name)
	}
}

func TestSession_CanonicalInputNeverMutated(t *testing.T) {
	input := []int64{9, 4, 7, 1, 8, 2}
	original := append([]int64(nil), input...)

	cfg := Config{Precision: 0, Delimiter: " ", Quiet: true, Trials: 4}
	sel := Selection{All: true, Except: []string{AlgBogosort}}
	s, _, _ := newTestSession(t, cfg, sel, input, time.Microsecond)

	for trial := int64(0); trial < 3; trial++ {
		for i, alg := range s.Algorithms() {
			if !sel.Selects(alg) {
				continue
			}
			sorted, _, err := s.runOne(context.Background(), i, trial)
			require.NoError(t, err)
			assert.Equal(t, []int64{1, 2, 4, 7, 8, 9}, sorted, alg.Name)
		}
	}
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, original, input)
	assert.Equal(t, original, s.Input())
}

func TestSession_SelectionAllWithExclusions(t *testing.T) {
	cfg := Config{Precision: 0, Delimiter: " ", Quiet: true, Trials: 1}
	sel := Selection{All: true, Except: []string{AlgQuickSort, AlgHeapSort}}
	s, buf, _ := newTestSession(t, cfg, sel, []int64{2, 1}, time.Microsecond)

	want := []string{
		AlgBogosort, AlgBubbleSort, AlgCocktailSort, AlgGnomeSort,
		AlgInsertionSort, AlgMergeSort, AlgPermutationSort, AlgSelectionSort,
	}
	assert.Equal(t, want, s.Selected())

	require.NoError(t, s.Run(context.Background()))
	var got []string
	for _, r := range s.Results() {
		got = append(got, r.Algorithm)
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 8, strings.Count(buf.String(), "\n"))
}

func TestSession_SelectionIndividual(t *testing.T) {
	cfg := Config{Precision: 0, Delimiter: " ", Quiet: true, Trials: 1}
	sel := Selection{Enabled: []string{AlgMergeSort, AlgBubbleSort}}
	s, _, _ := newTestSession(t, cfg, sel, []int64{2, 1}, time.Microsecond)

	// Declared order wins over the order flags were given in.
	assert.Equal(t, []string{AlgBubbleSort, AlgMergeSort}, s.Selected())
}

func TestSession_AveragingReportsOnce(t *testing.T) {
	cfg := Config{Precision: 0, Delimiter: " ", Quiet: true, ShowTime: true, Trials: 5}
	sel := Selection{Enabled: []string{AlgSelectionSort}}
	s, buf, clock := newTestSession(t, cfg, sel, []int64{3, 2, 1}, time.Millisecond)

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, 10, clock.Reads(), "two clock reads per trial")
	assert.Equal(t, "Selection Sort:   Average CPU time: 0.001000 s\n", buf.String())

	algs := s.Algorithms()
	sum := algs[indexOf(t, s, AlgSelectionSort)].Sum
	assert.InDelta(t, 0.005, sum, 1e-12)

	results := s.Results()
	require.Len(t, results, 1)
	assert.Equal(t, int64(5), results[0].Trials)
	assert.InDelta(t, 0.001, results[0].AverageSeconds, 1e-12)
}

func TestSession_SubResolutionIsZero(t *testing.T) {
	cfg := Config{Precision: 0, Delimiter: " ", Quiet: true, ShowTime: true, Trials: 1}
	buf := &bytes.Buffer{}
	clock := testutil.NewStepClock(500 * time.Nanosecond).WithResolution(time.Microsecond)

	s, err := NewSession(cfg, Selection{Enabled: []string{AlgHeapSort}}, []int64{1},
		WithOutput(buf), WithClock(clock), WithLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, "Heap Sort:        CPU time: 0.000000 s\n", buf.String())
}

func TestSession_PanicBecomesInternalError(t *testing.T) {
	cfg := Config{Precision: 0, Delimiter: " ", Quiet: true, Trials: 3}
	s, buf, _ := newTestSession(t, cfg, Selection{Enabled: []string{AlgQuickSort}}, []int64{2, 1}, time.Microsecond)
	s.dispatch[AlgQuickSort] = func([]int64, sorts.Less[int64]) { panic("boom") }

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.True(t, IsInternalError(err))
	assert.Contains(t, err.Error(), "quick-sort")
	assert.Empty(t, buf.String())
}

type recordingRecorder struct {
	results []Result
	err     error
}

func (r *recordingRecorder) Record(_ context.Context, res Result) error {
	r.results = append(r.results, res)
	return r.err
}

func TestSession_RecorderReceivesResults(t *testing.T) {
	rec := &recordingRecorder{}
	cfg := Config{Precision: 0, Delimiter: " ", Quiet: true, Trials: 2}
	sel := Selection{Enabled: []string{AlgBubbleSort, AlgGnomeSort}}

	s, err := NewSession(cfg, sel, []int64{3, 1, 2},
		WithOutput(io.Discard),
		WithClock(testutil.NewStepClock(time.Millisecond)),
		WithLogger(quietLogger()),
		WithRecorder(rec))
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))

	require.Len(t, rec.results, 2)
	assert.Equal(t, AlgBubbleSort, rec.results[0].Algorithm)
	assert.Equal(t, AlgGnomeSort, rec.results[1].Algorithm)
	assert.InDelta(t, 0.002, rec.results[0].TotalSeconds, 1e-12)
}

func TestSession_RecorderErrorStopsRun(t *testing.T) {
	rec := &recordingRecorder{err: errors.New("disk full")}
	cfg := Config{Precision: 0, Delimiter: " ", Quiet: true, Trials: 1}

	s, err := NewSession(cfg, Selection{All: true, Except: []string{AlgBogosort}}, []int64{1, 2},
		WithOutput(io.Discard), WithLogger(quietLogger()), WithRecorder(rec))
	require.NoError(t, err)

	err = s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Len(t, rec.results, 1)
}

func TestSession_CancelledContext(t *testing.T) {
	cfg := Config{Precision: 0, Delimiter: " ", Quiet: true, Trials: 1}
	s, buf, _ := newTestSession(t, cfg, Selection{All: true}, []int64{2, 1}, time.Microsecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestNewSession_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		sel  Selection
		code ConfigErrorCode
	}{
		{"negative precision", Config{Precision: -1, Trials: 1}, Selection{}, ErrCodePrecUnder},
		{"precision too high", Config{Precision: 18, Trials: 1}, Selection{}, ErrCodePrecOver},
		{"zero trials", Config{Precision: 2, Trials: 0}, Selection{}, ErrCodeAvgUnder},
		{"unknown exclusion", Config{Trials: 1}, Selection{All: true, Except: []string{"nope"}}, ErrCodeAlgInvalid},
		{"missing exclusion", Config{Trials: 1}, Selection{All: true, Except: []string{"--alg-all"}}, ErrCodeAlgEmpty},
		{"unknown enabled", Config{Trials: 1}, Selection{Enabled: []string{"shell-sort"}}, ErrCodeAlgInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSession(tt.cfg, tt.sel, []float64{1})
			require.Error(t, err)

			var ce *ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.code, ce.Code)
			assert.True(t, IsConfigError(err))
		})
	}
}

func TestNewSession_IntegerPrecision(t *testing.T) {
	_, err := NewSession(Config{Precision: 1, Trials: 1}, Selection{}, []int64{1})
	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ErrCodePrecOver, ce.Code)

	_, err = NewSession(Config{Precision: 0, Trials: 1}, Selection{}, []int64{1})
	assert.NoError(t, err)
}

func indexOf[E Number](t *testing.T, s *Session[E], name string) int {
	t.Helper()
	for i, a := range s.Algorithms() {
		if a.Name == name {
			return i
		}
	}
	t.Fatalf("algorithm %s not declared", name)
	return -1
}
