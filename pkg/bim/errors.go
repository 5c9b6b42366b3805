package bim

import (
	"context"
	"errors"
	"fmt"
)

// ValidationError rejects an input before any decoding starts: wrong
// file extension or a file above the size ceiling. No partial state
// exists when it is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// ParseError means the byte stream could not be decoded, or the decoded
// geometry is missing the per-vertex identifier attribute. The whole
// load fails and the registry is left untouched.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse model: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EmptyModelError means decoding succeeded but no component survived
// per-id filtering.
type EmptyModelError struct{}

func (e *EmptyModelError) Error() string {
	return "model contains no components"
}

// PropertyLookupError is a per-id metadata failure. It never fails a
// load; the decoder counts it and skips the id.
type PropertyLookupError struct {
	ID  int32
	Err error
}

func (e *PropertyLookupError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("no recognizable properties for id %d", e.ID)
	}
	return fmt.Sprintf("property lookup failed for id %d: %v", e.ID, e.Err)
}

func (e *PropertyLookupError) Unwrap() error {
	return e.Err
}

// UserReport maps a whole-load failure to a title and message suitable
// for direct display.
func UserReport(err error) (title, message string) {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return "Invalid file", validation.Reason
	}
	var parse *ParseError
	if errors.As(err, &parse) {
		return "Unreadable model", "The file could not be decoded as a building model."
	}
	var empty *EmptyModelError
	if errors.As(err, &empty) {
		return "Empty model", "The file decoded successfully but contains no building components."
	}
	if errors.Is(err, context.Canceled) {
		return "Load cancelled", "The model load was cancelled."
	}
	return "Load failed", err.Error()
}
