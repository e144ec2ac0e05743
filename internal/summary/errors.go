package summary

import (
	"errors"
	"fmt"
)

// ErrDuplicateBlock is returned by the registry under the RejectDuplicates
// policy when a log carries more than one block of a unique kind.
var ErrDuplicateBlock = errors.New("duplicate block of a unique kind")

// StructuralError reports a log whose response block is present but lacks a
// core anchor field. It aborts report assembly: every other metric is keyed
// against the response status, so no meaningful partial report exists.
//
// Design decision: this is a typed error rather than a sentinel because the
// caller needs the offending field to show useful guidance, and errors.As
// lets the CLI distinguish it from I/O failures.
type StructuralError struct {
	// Field is the name of the missing or unparsable field.
	Field string

	// Reason describes what was wrong with the field.
	Reason string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("log appears incomplete: response field %q %s", e.Field, e.Reason)
}
