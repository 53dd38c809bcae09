// Package utils provides low-level helpers shared by the SOR codec:
// error wrapping and the bounds-checked byte cursor.
package utils

import "fmt"

// SorError represents a structured codec error: a human context string
// plus the underlying cause, plus an optional byte offset into the
// input being parsed. Offset is nil when the failure isn't anchored to
// a specific position (e.g. a write-side error); it is non-nil for
// read-side failures the assembler can pin to a computed block offset.
// Callers such as a CLI driver surface the offset alongside the
// message, per spec.md §7 ("failures surface the error kind and offset
// where available").
type SorError struct {
	Context string
	Cause   error
	Offset  *int
}

// Error implements the error interface, including the offset only when
// one was recorded.
func (e *SorError) Error() string {
	if e.Offset != nil {
		return fmt.Sprintf("%s (at offset %d): %v", e.Context, *e.Offset, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Context, e.Cause)
}

// Unwrap provides compatibility with errors.Is/errors.As.
func (e *SorError) Unwrap() error {
	return e.Cause
}

// WrapError creates a contextual error with no associated offset.
// Returns nil if cause is nil, so call sites can wrap unconditionally
// after an `if err != nil` check further up.
func WrapError(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &SorError{Context: context, Cause: cause}
}

// WrapErrorAt creates a contextual error anchored to a byte offset in
// the input, for failures the assembler can pin to a specific block
// (a missing map, an identifier mismatch at a computed offset).
// Returns nil if cause is nil.
func WrapErrorAt(context string, cause error, offset int) error {
	if cause == nil {
		return nil
	}
	return &SorError{Context: context, Cause: cause, Offset: &offset}
}
