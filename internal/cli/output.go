package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/sortbench/internal/bench"
)

// Exit codes for CLI commands. Invalid configurations exit with their
// bench.ConfigErrorCode (1-8).
const (
	ExitSuccess       = 0  // Successful execution, including --help
	ExitKnownError    = 9  // Any other reported error (conflicting options, I/O, ...)
	ExitInternalError = 10 // Unexpected failure inside an algorithm
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps an error to the process exit status.
//
//   - nil: ExitSuccess
//   - *ExitError: its Code
//   - *bench.ConfigError: its numeric Code
//   - *bench.InternalError: ExitInternalError
//   - anything else: ExitKnownError
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var configErr *bench.ConfigError
	if errors.As(err, &configErr) {
		return int(configErr.Code)
	}

	if bench.IsInternalError(err) {
		return ExitInternalError
	}

	return ExitKnownError
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    int    `json:"code"`              // process exit code
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		encoder := json.NewEncoder(f.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(err error) error {
	code := GetExitCode(err)
	if f.Format == "json" {
		resp := CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: err.Error(),
			},
		}
		var configErr *bench.ConfigError
		if errors.As(err, &configErr) {
			resp.Error.Details = map[string]string{"option": configErr.Field}
		}
		return json.NewEncoder(f.Writer).Encode(resp)
	}

	fmt.Fprintf(f.GetErrWriter(), "error: %v\n", err)
	return nil
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
