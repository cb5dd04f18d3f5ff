package outline

import (
	"errors"
	"fmt"
)

// ValidationError reports a slide that cannot be committed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid slide: %s: %s", e.Field, e.Reason)
}

// MalformedOutlineError reports an outline payload whose top-level shape is
// wrong. Nothing is committed when it is returned.
type MalformedOutlineError struct {
	Reason string
	Err    error
}

func (e *MalformedOutlineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed outline: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed outline: %s", e.Reason)
}

func (e *MalformedOutlineError) Unwrap() error { return e.Err }

// History sentinels. Both report without changing any state.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)
