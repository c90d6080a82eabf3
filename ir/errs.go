package ir

import "errors"

var (
	// ErrCycle is returned by the checked traversals when a container
	// is reached again while it is still being descended.
	ErrCycle = errors.New("cyclic structure")

	ErrUnsupported = errors.New("unsupported value")
)
