package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/gops/agent"
	"github.com/spf13/cobra"

	"github.com/roach88/sortbench/internal/bench"
	"github.com/roach88/sortbench/internal/fill"
	"github.com/roach88/sortbench/internal/fingerprint"
	"github.com/roach88/sortbench/internal/profile"
	"github.com/roach88/sortbench/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions

	Profile string
	Type    string
	Quiet   bool
	Time    bool
	Prec    int
	Avg     int64
	Delim   string

	List          []string
	FillRand      int64
	RandLower     string
	RandUpper     string
	FillForward   int64
	FillBackward  int64
	FillIncrement string

	AlgAll    bool
	AlgExcept []string
	Algs      map[string]*bool

	Database string
	Gops     bool

	// RunIDGenerator overrides stored run IDs (for testing).
	// If nil, defaults to store.UUIDv7Generator.
	RunIDGenerator store.RunIDGenerator

	// Clock overrides the process CPU clock (for testing).
	Clock bench.CPUClock

	// Rand overrides the random source for fills and bogosort (for testing).
	Rand *rand.Rand

	// Now overrides the stored run timestamp (for testing).
	Now func() time.Time

	// set holds every option given on the command line or by the profile.
	set map[string]bool
	// enable lists algorithms a profile turns on.
	enable []string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(&RunOptions{RootOptions: rootOpts})
}

// newRunCommand binds the run flags to opts, keeping any test hooks set on it.
func newRunCommand(opts *RunOptions) *cobra.Command {
	opts.Algs = make(map[string]*bool)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sort one input list with the selected algorithms",
		Long: `Sort one input list with every selected algorithm and report the result.

The input comes from --list, or is generated with --fill-rand (the default,
10 values in [-10, 10]), --fill-forward or --fill-backward. Each selected
algorithm sorts its own copy of the same input, --avg times; the report
shows the sorted list and, with --time, the CPU time or its average.

Options may also come from a YAML or CUE profile; flags given on the
command line override the profile.

Examples:
  sortbench run --alg-all --alg-except bogosort,permutation-sort --time
  sortbench run --type int --list 5,3,9,1 --alg-quick-sort --alg-merge-sort
  sortbench run --profile bench.yaml --avg 20 --quiet --db results.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(opts, cmd)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.StringVar(&opts.Profile, "profile", "", "load options from a YAML or CUE profile")
	flags.StringVar(&opts.Type, "type", profile.TypeFloat, "element type (float|int)")
	flags.BoolVar(&opts.Quiet, "quiet", false, "disable printing sorted lists")
	flags.BoolVar(&opts.Time, "time", false, "print CPU time for each algorithm")
	flags.IntVar(&opts.Prec, "prec", 0, "fractional digits printed for floats (unset: 17 for float, 0 for int)")
	flags.Int64Var(&opts.Avg, "avg", 1, "rerun sorting a specified number of times on the same list")
	flags.StringVar(&opts.Delim, "delim", " ", "delimiter printed after every list element")

	flags.StringSliceVar(&opts.List, flagList, nil, "input a list of values")
	flags.Int64Var(&opts.FillRand, flagFillRand, 10, "fill the list with random numbers")
	flags.StringVar(&opts.RandLower, flagRandLower, "-10", "lower bound for '--fill-rand'")
	flags.StringVar(&opts.RandUpper, flagRandUpper, "10", "upper bound for '--fill-rand'")
	flags.Int64Var(&opts.FillForward, flagFillForward, 0, "fill the list with incrementing numbers")
	flags.Int64Var(&opts.FillBackward, flagFillBackward, 0, "fill the list with decrementing numbers")
	flags.StringVar(&opts.FillIncrement, flagFillIncrement, "1", "increment used with '--fill-forward' and '--fill-backward'")

	flags.BoolVar(&opts.AlgAll, flagAlgAll, false, "use all available algorithms")
	flags.StringSliceVar(&opts.AlgExcept, flagAlgExcept, nil, "algorithms to leave out when using '--alg-all'")
	for _, a := range bench.Declared() {
		enabled := new(bool)
		opts.Algs[a.Name] = enabled
		flags.BoolVar(enabled, algFlag(a.Name), false, "use "+a.Name)
	}

	flags.StringVar(&opts.Database, "db", "", "store results in this SQLite database")
	flags.BoolVar(&opts.Gops, "gops", false, "start a gops diagnostics agent while running")

	cmd.SetFlagErrorFunc(flagError)

	return cmd
}

// flagError reports a missing '--alg-except' argument with its own code.
func flagError(cmd *cobra.Command, err error) error {
	if err.Error() == "flag needs an argument: --"+flagAlgExcept {
		return errExceptMissing()
	}
	return err
}

func errExceptMissing() error {
	return &bench.ConfigError{
		Code:    bench.ErrCodeAlgEmpty,
		Field:   flagAlgExcept,
		Message: "the required argument for option '--alg-except' is missing",
	}
}

func runBenchmark(opts *RunOptions, cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	if err := opts.resolve(cmd); err != nil {
		return err
	}

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, stopping after the current sort", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if opts.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			logger.Warn("gops agent not started", "error", err)
		} else {
			defer agent.Close()
			logger.Debug("gops agent listening")
		}
	}

	switch opts.Type {
	case profile.TypeFloat:
		return execute(ctx, cmd, opts, logger, parseFloat)
	case profile.TypeInt:
		return execute(ctx, cmd, opts, logger, parseInt)
	default:
		return fmt.Errorf("invalid type %q: must be %q or %q", opts.Type, profile.TypeFloat, profile.TypeInt)
	}
}

// RunSummary is the JSON payload of a finished run.
type RunSummary struct {
	RunID        string         `json:"run_id,omitempty"`
	ElementType  string         `json:"element_type"`
	InputHash    string         `json:"input_hash"`
	SettingsHash string         `json:"settings_hash"`
	InputLen     int            `json:"input_len"`
	Trials       int64          `json:"trials"`
	Algorithms   []string       `json:"algorithms"`
	Results      []bench.Result `json:"results"`
}

// execute validates the options for element type E, builds the input and
// runs the session.
func execute[E bench.Number](ctx context.Context, cmd *cobra.Command, opts *RunOptions, logger *slog.Logger, parse func(string) (E, error)) error {
	raw, err := parseValues(opts, parse)
	if err != nil {
		return err
	}

	cfg := opts.config(bench.DefaultConfig[E]())
	if err := bench.Validate[E](cfg); err != nil {
		return err
	}

	if err := opts.checkConflicts(fillConflicts); err != nil {
		return err
	}
	if err := fill.Lengths(opts.FillRand, opts.FillForward, opts.FillBackward); err != nil {
		return err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	input, err := buildInput(opts, raw, rng)
	if err != nil {
		return err
	}

	if err := opts.checkConflicts(opts.algConflicts()); err != nil {
		return err
	}
	if err := opts.checkExcept(); err != nil {
		return err
	}
	sel := opts.selection()
	if err := sel.Validate(); err != nil {
		return err
	}

	hash, err := fingerprint.Input(opts.Type, input)
	if err != nil {
		return err
	}
	settingsHash, err := fingerprint.Settings(cfg, sel.Selected())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		out = io.Discard
	}
	sessionOpts := []bench.Option{
		bench.WithOutput(out),
		bench.WithLogger(logger),
		bench.WithRand(rng),
	}
	if opts.Clock != nil {
		sessionOpts = append(sessionOpts, bench.WithClock(opts.Clock))
	}

	var runID string
	if opts.Database != "" {
		st, err := store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitKnownError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				logger.Error("error closing database", "error", closeErr)
			}
		}()

		rec, err := st.BeginRun(ctx, opts.runIDGenerator(), store.Run{
			InputHash:    hash,
			SettingsHash: settingsHash,
			ElementType:  opts.Type,
			InputLen:     int64(len(input)),
			Trials:       cfg.Trials,
			CreatedAt:    opts.now(),
		})
		if err != nil {
			return WrapExitError(ExitKnownError, "failed to record run", err)
		}
		runID = rec.RunID()
		sessionOpts = append(sessionOpts, bench.WithRecorder(rec))
		logger.Debug("recording results", "db", opts.Database, "run_id", runID)
	}

	session, err := bench.NewSession(cfg, sel, input, sessionOpts...)
	if err != nil {
		return err
	}

	if err := session.Run(ctx); err != nil {
		return err
	}

	if opts.Format == "json" {
		summary := RunSummary{
			RunID:        runID,
			ElementType:  opts.Type,
			InputHash:    hash,
			SettingsHash: settingsHash,
			InputLen:     len(input),
			Trials:       cfg.Trials,
			Algorithms:   session.Selected(),
			Results:      session.Results(),
		}
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(summary)
	}
	return nil
}

func (o *RunOptions) runIDGenerator() store.RunIDGenerator {
	if o.RunIDGenerator != nil {
		return o.RunIDGenerator
	}
	return store.UUIDv7Generator{}
}

func (o *RunOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
