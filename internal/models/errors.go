package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCancelled is returned when the user backs out of a prompt or input ends.
var ErrCancelled = errors.New("operation cancelled")

// AccessError reports a directory that could not be listed or an entry that
// could not be stat-ed during a walk. It is a diagnostic: walks continue.
type AccessError struct {
	Op   string // "list", "stat" or "cycle"
	Path string // Path of the node that failed
	Err  error  // Underlying error (optional)
}

// Error implements the error interface for AccessError.
func (e *AccessError) Error() string {
	var sb strings.Builder
	switch e.Op {
	case "list":
		sb.WriteString(fmt.Sprintf("cannot access %s", e.Path))
	case "stat":
		sb.WriteString(fmt.Sprintf("cannot read: %s", e.Path))
	case "cycle":
		sb.WriteString(fmt.Sprintf("skipping directory cycle at %s", e.Path))
	default:
		sb.WriteString(fmt.Sprintf("%s %s", e.Op, e.Path))
	}
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error for error wrapping support.
func (e *AccessError) Unwrap() error {
	return e.Err
}

// IOError reports a failed read, write or delete on a selected path.
type IOError struct {
	Op   string // "read", "write", "delete", "lock"
	Path string
	Err  error
}

// Error implements the error interface for IOError.
func (e *IOError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s failed", e.Op, e.Path)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError wraps err as an IOError. A nil err yields nil.
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// RangeError reports a user-supplied line index outside [Min, Max].
type RangeError struct {
	Value int
	Min   int
	Max   int
}

// Error implements the error interface for RangeError.
func (e *RangeError) Error() string {
	if e.Max < e.Min {
		return fmt.Sprintf("line %d is out of range: document is empty", e.Value)
	}
	return fmt.Sprintf("line %d is out of range, expected %d-%d", e.Value, e.Min, e.Max)
}

// EmptyInputError reports a blank answer to a prompt that requires a value.
type EmptyInputError struct {
	Field string // e.g. "file name", "keyword"
}

// Error implements the error interface for EmptyInputError.
func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("no %s provided", e.Field)
}

// IsIOError reports whether err is or wraps an IOError.
func IsIOError(err error) bool {
	var target *IOError
	return errors.As(err, &target)
}

// IsRangeError reports whether err is or wraps a RangeError.
func IsRangeError(err error) bool {
	var target *RangeError
	return errors.As(err, &target)
}

// IsEmptyInput reports whether err is or wraps an EmptyInputError.
func IsEmptyInput(err error) bool {
	var target *EmptyInputError
	return errors.As(err, &target)
}
