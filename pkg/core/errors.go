package core

import "errors"

// Common errors.
var (
	// ErrNotFound signals that target resolution matched nothing. It is
	// always returned wrapped with a description of the unresolved target.
	ErrNotFound = errors.New("target not found")
)
