package enquiry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("enquiry not found")
	// ErrDuplicate marks unique-constraint violations across the case tables.
	ErrDuplicate = errors.New("duplicate record")
)

// ValidationError is a field-level rejection, surfaced verbatim to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + " " + e.Message }

// ConflictError reports an illegal status transition against the state the
// record is already in.
type ConflictError struct {
	Current Status
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("enquiry already %s", strings.ToLower(string(e.Current)))
}

// ReferenceError names a foreign reference that does not resolve.
type ReferenceError struct {
	Reference string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("invalid reference: %s", e.Reference)
}
