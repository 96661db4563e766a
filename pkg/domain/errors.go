package domain

import "fmt"

// UnknownToolError reports an invocation naming a tool that is not in the
// catalogue. It is a caller mistake, not a system fault.
type UnknownToolError struct {
	Tool string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool '%s'", e.Tool)
}

// ValidationError reports a missing required parameter, an action outside
// its enumerated set, or a constraint violation. When a validation error is
// produced the backend is never contacted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// TransportError wraps any fault reaching the backend: connection failures,
// non-2xx statuses and malformed response bodies. It is produced at the
// gateway boundary so that no raw transport error propagates further up.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
