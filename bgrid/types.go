package bgrid

import "errors"

// Sentinel errors for bgrid package operations.
var (
	// ErrInvalidDimensions indicates a non-positive width or height was requested.
	ErrInvalidDimensions = errors.New("bgrid: width and height must be positive")

	// ErrOutOfBounds indicates a coordinate outside [0, Width) x [0, Height) was addressed.
	ErrOutOfBounds = errors.New("bgrid: coordinate out of bounds")
)

// padding is the number of extra rows and columns of bits stored on every
// side of the addressable grid. A padding of 2 guarantees that any 4- or
// 8-neighbor of an in-bounds cell (offset by at most 1 in any direction)
// always lands on a valid, pre-allocated bit, with one spare ring to spare.
const padding = 2
