package task

import (
	"errors"
	"fmt"
)

// Error kinds reported by the store. Conditions the interface defines as
// no-ops (completing or removing an unknown label, loading a state file
// that does not exist) are returned as result data, not as errors.
var (
	// ErrInvalidArgument indicates a rejected input: an empty label, an
	// unrecognized priority value, or an unknown list or view token.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateLabel indicates an add was rejected because the label is
	// already present in one of the lists. Non-fatal: the rest of the
	// batch still applies.
	ErrDuplicateLabel = errors.New("duplicate label")

	// ErrCorruptState indicates a state file that exists but cannot be
	// loaded. The in-memory lists are left untouched.
	ErrCorruptState = errors.New("corrupt state file")
)

// PriorityError reports a priority value that is neither a known level
// name nor an in-range rank.
type PriorityError struct {
	Value string
}

func (e *PriorityError) Error() string {
	return fmt.Sprintf("invalid priority %q (want low, medium, high or a rank 1-3)", e.Value)
}

func (e *PriorityError) Unwrap() error { return ErrInvalidArgument }

// DuplicateError reports an add entry rejected because its label already
// exists in the to-do or done list.
type DuplicateError struct {
	Label string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("task %q already exists", e.Label)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicateLabel }

// CorruptStateError reports why the state file at Path failed to load.
type CorruptStateError struct {
	Path   string
	Reason error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt state file %s: %v", e.Path, e.Reason)
}

func (e *CorruptStateError) Unwrap() error { return ErrCorruptState }
