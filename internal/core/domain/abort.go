package domain

import (
	"errors"
	"fmt"
)

// AbortError terminates the current invocation with a user-facing message and exit code.
// An empty Message aborts silently, leaving the diagnostics to whatever already ran.
type AbortError struct {
	Message string
	Code    int
}

// Abort returns an AbortError. A code of zero or less is replaced by 1.
func Abort(message string, code int) error {
	if code <= 0 {
		code = 1
	}
	return &AbortError{Message: message, Code: code}
}

func (e *AbortError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("aborted with exit code %d", e.Code)
	}
	return e.Message
}

// ExitError reports that a process ran to completion with a non-zero exit code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode extracts the exit code carried by err.
// It returns 0 for nil, the code of an AbortError or ExitError in the chain, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var abortErr *AbortError
	if errors.As(err, &abortErr) {
		return abortErr.Code
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}
