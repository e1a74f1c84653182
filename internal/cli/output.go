package cli

import (
	"errors"
	"fmt"

	"github.com/geekmdtravis/geekmd-calc/internal/calculator"
	"github.com/geekmdtravis/geekmd-calc/internal/report"
)

// Process exit codes.
const (
	ExitSuccess      = 0
	ExitRejected     = 1 // clinical input refused by a calculator or unreportable
	ExitCommandError = 2 // flags, config or files
)

// ExitError tags a failure with the exit code main should use.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError returns a bare ExitError.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError prefixes err with message and tags it with code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode picks the exit code for err. An explicit ExitError wins;
// calculator errors and unreportable risks count as rejected input.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var calcErr *calculator.CalcError
	if errors.As(err, &calcErr) || errors.Is(err, report.ErrNonFiniteRisk) {
		return ExitRejected
	}
	return ExitCommandError
}
