// Package matrixutil provides a generic dense matrix, used by the belief
// grid (a matrix of Kalman nodes), the visibility kernel (a matrix of
// bools), and the raycast adjacency kernel (a matrix of optional floats).
//
// This is the generalization of the teacher's row-major Dense matrix (a
// float64-only adjacency matrix, not part of this module) to an arbitrary
// cell type, since the belief grid and visibility
// kernel need matrices of Kalman nodes and bools rather than float64
// weights.
package matrixutil

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("matrixutil: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrixutil: index out of bounds")

// Matrix is a row-major dense grid of T, stored in a flat backing slice for
// cache-friendly access. Width is the number of columns (x extent), Height
// is the number of rows (y extent).
type Matrix[T any] struct {
	Width, Height int
	Data          []T
}

// New allocates a Width x Height matrix with every entry at T's zero value.
// Stage 1 (Validate): width and height must be > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
func New[T any](width, height int) (Matrix[T], error) {
	if width <= 0 || height <= 0 {
		return Matrix[T]{}, ErrInvalidDimensions
	}

	return Matrix[T]{Width: width, Height: height, Data: make([]T, width*height)}, nil
}

// Shape returns (Width, Height).
func (m Matrix[T]) Shape() (int, int) {
	return m.Width, m.Height
}

// indexOf computes the flat offset for (x, y), or ErrIndexOutOfBounds.
func (m Matrix[T]) indexOf(x, y int) (int, error) {
	if x < 0 || x >= m.Width {
		return 0, fmt.Errorf("matrixutil: x=%d: %w", x, ErrIndexOutOfBounds)
	}
	if y < 0 || y >= m.Height {
		return 0, fmt.Errorf("matrixutil: y=%d: %w", y, ErrIndexOutOfBounds)
	}

	return y*m.Width + x, nil
}

// At retrieves the element at (x, y), with a bounds check.
func (m Matrix[T]) At(x, y int) (T, error) {
	idx, err := m.indexOf(x, y)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.Data[idx], nil
}

// Set assigns v at (x, y), with a bounds check.
func (m Matrix[T]) Set(x, y int, v T) error {
	idx, err := m.indexOf(x, y)
	if err != nil {
		return err
	}
	m.Data[idx] = v

	return nil
}

// Get retrieves the element at (x, y) without a bounds check. Callers must
// already know (x, y) is in range; used in hot loops (convolution, belief
// updates) where the caller has already iterated 0..Width/0..Height.
func (m Matrix[T]) Get(x, y int) T {
	return m.Data[y*m.Width+x]
}

// SetUnchecked assigns v at (x, y) without a bounds check.
func (m Matrix[T]) SetUnchecked(x, y int, v T) {
	m.Data[y*m.Width+x] = v
}

// Clone returns a deep copy of m.
func (m Matrix[T]) Clone() Matrix[T] {
	data := make([]T, len(m.Data))
	copy(data, m.Data)

	return Matrix[T]{Width: m.Width, Height: m.Height, Data: data}
}

// Fill sets every entry of m to v.
func (m Matrix[T]) Fill(v T) {
	for i := range m.Data {
		m.Data[i] = v
	}
}
