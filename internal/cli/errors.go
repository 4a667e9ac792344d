// Package cli holds the cobra plumbing shared by the calculator binaries:
// typed usage and parse errors, strict positional parsing, exit codes and
// runtime setup (config, logging, telemetry).
package cli

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// UsageError reports an invocation the user must correct, such as a wrong
// number of positional arguments or an unknown flag.
type UsageError struct {
	Err    error
	Reason string
}

func (e *UsageError) Error() string {
	if e.Reason == "" && e.Err != nil {
		return e.Err.Error()
	}

	return e.Reason
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError formats a UsageError.
func NewUsageError(format string, args ...any) *UsageError {
	return &UsageError{Reason: fmt.Sprintf(format, args...)}
}

// ParseError reports a positional argument that is not a valid number.
type ParseError struct {
	Name     string
	Value    string
	Err      error
	Position int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("argument %d (%s): cannot parse %q as a number: %v", e.Position, e.Name, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Kind classifies err for metrics and logs: "usage", "parse" or "domain".
func Kind(err error) string {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return "usage"
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return "parse"
	}

	return "domain"
}
