package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNodeNotFound = errors.New("node not found")
	ErrInvalidEdge  = errors.New("invalid edge")
)

// GraphError provides structured error information for store operations.
type GraphError struct {
	Op    string // Operation that failed (e.g., "AddEdge")
	Word  string // Primary word involved
	Other string // Second word for edge operations
	Cause error  // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.Other != "" {
		return fmt.Sprintf("%s (%q, %q): %v", e.Op, e.Word, e.Other, e.Cause)
	}
	if e.Word != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Word, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// InvalidEdgeError creates the error returned when an edge is attempted
// between endpoints that are not both present in the store.
func InvalidEdgeError(op, word, other string) error {
	return &GraphError{Op: op, Word: word, Other: other, Cause: ErrInvalidEdge}
}

// IsInvalidEdge reports whether err is an invalid-edge error.
func IsInvalidEdge(err error) bool {
	return errors.Is(err, ErrInvalidEdge)
}
