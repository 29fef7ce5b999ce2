package probe

import "errors"

var (
	// ErrInvalidTarget indicates a target failed validation.
	ErrInvalidTarget = errors.New("probe: invalid target")
)
