package belief

import (
	"errors"

	"github.com/samplestar-go/samplestar/gridcoord"
)

// Sentinel errors for belief package operations.
var (
	// ErrInvalidDimensions indicates a non-positive width or height was requested.
	ErrInvalidDimensions = errors.New("belief: width and height must be positive")

	// ErrDimensionMismatch indicates two grids/matrices of incompatible size were combined.
	ErrDimensionMismatch = errors.New("belief: dimension mismatch")

	// ErrOutOfBounds indicates a coordinate outside the grid's logical region was addressed.
	ErrOutOfBounds = errors.New("belief: coordinate out of bounds")
)

// NearestThreshold is the belief-state value above which a cell is treated
// as passable for get-value purposes; at or below it the cell reads as
// blocked.
const NearestThreshold float32 = 0.5

// AdjacentSample pairs a neighbor cell with the weight contributed by a
// single realization of it — always 1, matching the original's
// `(node, 1)` accumulation per sampled neighbor.
type AdjacentSample struct {
	Cell   gridcoord.Cell
	Weight int
}
