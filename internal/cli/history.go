package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/sortbench/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database  string
	RunID     string // optional - show a single run
	Algorithm string // optional - filter to one algorithm
	Limit     int
}

// HistoryResult is the JSON payload of the history command.
type HistoryResult struct {
	Entries []store.Entry `json:"entries"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored benchmark results",
		Long: `List results stored by 'run --db', grouped by run, oldest first.

Examples:
  sortbench history --db results.db
  sortbench history --db results.db --algorithm quick-sort --limit 20
  sortbench history --db results.db --run 0190f5c2-7b1e-7c3a-9d4e-2f6a8b1c3d5e
  sortbench history --db results.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "only show results of this run")
	cmd.Flags().StringVar(&opts.Algorithm, "algorithm", "", "only show results for this algorithm")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "only show the most recent N results (0 = all)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	newLogger(cmd.ErrOrStderr(), opts.Verbose)

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitKnownError, "failed to open database", err)
	}
	defer st.Close()

	if opts.RunID != "" {
		_, found, err := st.ReadRun(ctx, opts.RunID)
		if err != nil {
			return WrapExitError(ExitKnownError, "failed to read run", err)
		}
		if !found {
			return NewExitError(ExitKnownError, fmt.Sprintf("run %s not found", opts.RunID))
		}
	}

	entries, err := st.ListResults(ctx, store.Filter{
		RunID:     opts.RunID,
		Algorithm: opts.Algorithm,
		Limit:     opts.Limit,
	})
	if err != nil {
		return WrapExitError(ExitKnownError, "failed to list results", err)
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(HistoryResult{Entries: entries})
	}

	outputHistoryText(cmd, entries)
	return nil
}

// outputHistoryText prints one header per run followed by its results.
func outputHistoryText(cmd *cobra.Command, entries []store.Entry) {
	w := cmd.OutOrStdout()

	if len(entries) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	width := 0
	for _, e := range entries {
		if n := len(e.Result.Label); n > width {
			width = n
		}
	}

	current := ""
	for _, e := range entries {
		if e.Run.ID != current {
			if current != "" {
				fmt.Fprintln(w)
			}
			current = e.Run.ID
			fmt.Fprintf(w, "Run %s (%s)\n", e.Run.ID, e.Run.CreatedAt.UTC().Format(time.RFC3339))
			fmt.Fprintf(w, "  Input: %d %s values, %s\n", e.Run.InputLen, e.Run.ElementType, shortHash(e.Run.InputHash))
			fmt.Fprintf(w, "  Trials: %d, settings %s\n", e.Run.Trials, shortHash(e.Run.SettingsHash))
		}
		fmt.Fprintf(w, "  %-*s total %.6f s  average %.6f s\n",
			width, e.Result.Label, e.Result.TotalSeconds, e.Result.AverageSeconds)
	}
}

// shortHash truncates a digest for display.
func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
