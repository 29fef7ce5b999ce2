package retry

import "errors"

var (
	// ErrInvalidPolicy indicates a retry policy failed validation.
	ErrInvalidPolicy = errors.New("retry: invalid policy")
)
