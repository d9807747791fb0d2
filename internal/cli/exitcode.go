package cli

import (
	"github.com/cockroachdb/errors"
)

// Process exit codes.
const (
	ExitCodeOK = 0
	// ExitCodeLintFailed means the run found errors or too many warnings.
	ExitCodeLintFailed = 1
	// ExitCodeFatal covers configuration, usage and runtime errors.
	ExitCodeFatal = 2
)

// ErrLintFailed is returned when the lint report itself explains the failure.
var ErrLintFailed = errors.New("lint failed")

// exitCoder wraps an error and specifies an exit code.
type exitCoder struct {
	cause error
	code  int
}

func (e *exitCoder) Error() string {
	return e.cause.Error()
}

func (e *exitCoder) Cause() error {
	return e.cause
}

func (e *exitCoder) Unwrap() error {
	return e.cause
}

func (e *exitCoder) ExitCode() int {
	return e.code
}

// WithExitCode attaches an exit code to an error.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitCoder{cause: err, code: code}
}

// GetExitCode extracts the exit code from an error chain.
// Returns 0 for nil and ExitCodeFatal for errors without an attached code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitCodeOK
	}

	var ec *exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return ExitCodeFatal
}
