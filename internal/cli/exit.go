package cli

import (
	"context"
	"errors"

	"github.com/vk/treeweight/internal/app"
	"github.com/vk/treeweight/internal/source"
)

// Exit codes.
const (
	CodeRejected = 1
	CodeUsage    = 2
	CodeLoad     = 3

	// CodeInterrupted follows the shell convention for SIGINT.
	CodeInterrupted = 130
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// ToExitError maps an error returned by App.Run to its exit code. The
// user-facing result has already been written, so Message carries the
// detail for stderr.
func ToExitError(err error) *ExitError {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	code := 1
	switch {
	case errors.Is(err, source.ErrMissingSource), errors.Is(err, source.ErrFailedToLoad):
		code = CodeLoad
	case errors.Is(err, app.ErrInputRejected):
		code = CodeRejected
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		code = CodeInterrupted
	}
	return &ExitError{Code: code, Message: err.Error()}
}
