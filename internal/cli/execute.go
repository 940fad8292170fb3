package cli

import (
	"context"
	"io"
)

// Execute runs the CLI with args and returns the process exit code. Errors
// are reported on stderr, or as a JSON error response on stdout when
// --format json is in effect.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	format := "text"
	if f := cmd.PersistentFlags().Lookup("format"); f != nil && isValidFormat(f.Value.String()) {
		format = f.Value.String()
	}
	formatter := &OutputFormatter{Format: format, Writer: stdout, ErrWriter: stderr}
	_ = formatter.Error(err)

	return GetExitCode(err)
}
