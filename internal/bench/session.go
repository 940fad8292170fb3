package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/roach88/sortbench/internal/sorts"
)

// Result is the reported outcome of one algorithm over a whole session.
type Result struct {
	Algorithm      string  `json:"algorithm"`
	Label          string  `json:"label"`
	Trials         int64   `json:"trials"`
	TotalSeconds   float64 `json:"total_seconds"`
	AverageSeconds float64 `json:"average_seconds"`
}

// Recorder receives every Result as soon as it is reported.
// Implemented by store.Recorder.
type Recorder interface {
	Record(ctx context.Context, r Result) error
}

type settings struct {
	out      io.Writer
	clock    CPUClock
	logger   *slog.Logger
	recorder Recorder
	rng      *rand.Rand
}

// Option configures a Session.
type Option func(*settings)

// WithOutput sets where reports are written (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// WithClock replaces the process CPU clock.
func WithClock(c CPUClock) Option {
	return func(s *settings) { s.clock = c }
}

// WithLogger sets the diagnostic logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithRecorder forwards every reported Result to r.
func WithRecorder(r Recorder) Option {
	return func(s *settings) { s.recorder = r }
}

// WithRand sets the generator bogosort shuffles with. The session shares it
// across every trial; by default it is seeded non-deterministically.
func WithRand(r *rand.Rand) Option {
	return func(s *settings) { s.rng = r }
}

// Session is one benchmark run over a canonical input.
//
// The session owns the accumulated sums; they start at zero and are never
// reset. Run is meant to be called once.
type Session[E Number] struct {
	settings

	cfg        Config
	sel        Selection
	input      []E
	algorithms []Algorithm
	dispatch   map[string]sorts.Func[E]
	less       sorts.Less[E]
	width      int
	results    []Result
}

// NewSession validates cfg and sel and prepares a session over a private
// copy of input.
func NewSession[E Number](cfg Config, sel Selection, input []E, opts ...Option) (*Session[E], error) {
	if err := Validate[E](cfg); err != nil {
		return nil, err
	}
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	st := settings{
		out:    os.Stdout,
		clock:  ProcessClock(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&st)
	}
	if st.rng == nil {
		st.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	algs := Declared()
	sel.apply(algs)

	return &Session[E]{
		settings:   st,
		cfg:        cfg,
		sel:        sel,
		input:      slices.Clone(input),
		algorithms: algs,
		dispatch:   Dispatch[E](st.rng),
		less:       sorts.Ascending[E](),
		width:      labelWidth(algs),
	}, nil
}

// Run executes every trial and writes the reports.
func (s *Session[E]) Run(ctx context.Context) error {
	s.logger.Info("benchmark starting",
		"elements", len(s.input),
		"trials", s.cfg.Trials,
		"algorithms", s.Selected(),
	)

	if !s.cfg.Quiet {
		s.write("Before:\n" + FormatSequence(s.input, s.cfg.Precision, s.cfg.Delimiter))
	}

	for trial := int64(0); trial < s.cfg.Trials; trial++ {
		for i := range s.algorithms {
			if !s.sel.Selects(s.algorithms[i]) {
				continue
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, _, err := s.runOne(ctx, i, trial); err != nil {
				return err
			}
		}
	}

	if !s.cfg.Quiet {
		s.write("\n")
	}

	s.logger.Info("benchmark finished", "reports", len(s.results))
	return nil
}

// runOne sorts a fresh clone of the input with algorithm i, adds the
// elapsed CPU time to its sum and reports when trial is the last one.
func (s *Session[E]) runOne(ctx context.Context, i int, trial int64) ([]E, float64, error) {
	alg := &s.algorithms[i]
	sortFn, ok := s.dispatch[alg.Name]
	if !ok {
		return nil, 0, &InternalError{Algorithm: alg.Name, Cause: "no sort registered"}
	}

	work := slices.Clone(s.input)
	secs, err := s.measure(alg.Name, sortFn, work)
	if err != nil {
		return nil, 0, err
	}
	alg.Sum += secs

	s.logger.Debug("sort finished",
		"algorithm", alg.Name,
		"trial", trial+1,
		"of", s.cfg.Trials,
		"seconds", secs,
	)

	if !s.reports(trial) {
		return work, secs, nil
	}

	s.write(s.reportLine(*alg, work, secs))

	res := Result{
		Algorithm:      alg.Name,
		Label:          alg.Label,
		Trials:         s.cfg.Trials,
		TotalSeconds:   alg.Sum,
		AverageSeconds: alg.Sum / float64(s.cfg.Trials),
	}
	s.results = append(s.results, res)

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, res); err != nil {
			return work, secs, fmt.Errorf("record %s: %w", alg.Name, err)
		}
	}
	return work, secs, nil
}

// measure times fn on work. A panic inside the sort becomes an InternalError.
func (s *Session[E]) measure(name string, fn sorts.Func[E], work []E) (secs float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &InternalError{Algorithm: name, Cause: fmt.Sprint(r)}
		}
	}()

	start := s.clock.Now()
	fn(work, s.less)
	end := s.clock.Now()
	return elapsed(s.clock, start, end), nil
}

// reports reports whether trial prints: the only trial, or the last one.
func (s *Session[E]) reports(trial int64) bool {
	return s.cfg.Trials == 1 || trial == s.cfg.Trials-1
}

// Selected returns the short names that run in each trial, in order.
func (s *Session[E]) Selected() []string {
	return s.sel.Selected()
}

// Algorithms returns a snapshot of the descriptors and their sums.
func (s *Session[E]) Algorithms() []Algorithm {
	return slices.Clone(s.algorithms)
}

// Results returns the reported results in report order.
func (s *Session[E]) Results() []Result {
	return slices.Clone(s.results)
}

// Input returns a copy of the canonical input.
func (s *Session[E]) Input() []E {
	return slices.Clone(s.input)
}
