package registry

import "errors"

var (
	// ErrEmptyRegistry indicates a registry with no targets.
	ErrEmptyRegistry = errors.New("registry: no targets defined")

	// ErrDuplicateTarget indicates two targets share a name.
	ErrDuplicateTarget = errors.New("registry: duplicate target name")
)
