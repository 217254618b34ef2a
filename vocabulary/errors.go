// Package vocabulary defines the strong id types, enums, and small value
// types shared by every layer of the editable-circuit core.
package vocabulary

import "errors"

// Sentinel errors wrapped by every fallible operation in this module. Callers
// should use errors.Is against these rather than matching message text.
var (
	// ErrInvalidArgument marks a precondition violation on the arguments
	// passed to an operation (e.g. a Part with begin >= end).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStateViolation marks an operation that would break an invariant of
	// the receiver (e.g. a second input on a SegmentTree).
	ErrStateViolation = errors.New("state violation")

	// ErrNotFound marks a lookup against an id or key that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrLayoutFull marks id-space exhaustion.
	ErrLayoutFull = errors.New("layout full")
)
