package ptnet

import "errors"

var (
	// ErrInvalidReference is returned when a reference is not a member of the net.
	ErrInvalidReference = errors.New("reference is not present in the net")

	// ErrDuplicateArc is returned when the arc already exists on both endpoints.
	ErrDuplicateArc = errors.New("arc already exists")

	// ErrInconsistentState means an arc was recorded on one endpoint only. The
	// net was corrupted by an earlier bug and is not repaired.
	ErrInconsistentState = errors.New("net is in an inconsistent state")

	ErrOverflow  = errors.New("token count overflow")
	ErrUnderflow = errors.New("cannot remove more tokens than available")

	// ErrIO wraps failures of the output sink during export.
	ErrIO = errors.New("export i/o failure")
)
