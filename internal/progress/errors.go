package progress

import "errors"

var (
	// ErrInvalidUpdate indicates a patch that would corrupt the progress
	// invariants. The update is rejected atomically: no field is applied.
	ErrInvalidUpdate = errors.New("invalid progress update")
)
