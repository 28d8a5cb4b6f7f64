package samplestar

import "errors"

var (
	// ErrOutOfBounds indicates start or goal falls outside the belief grid.
	ErrOutOfBounds = errors.New("samplestar: start/goal out of bounds")
	// ErrInvalidEpoch indicates a non-positive rollout count.
	ErrInvalidEpoch = errors.New("samplestar: epoch must be > 0")
	// ErrInvalidKernel indicates a kernel with an even side length, which
	// has no well-defined center cell.
	ErrInvalidKernel = errors.New("samplestar: kernel must have odd width and height")
)
