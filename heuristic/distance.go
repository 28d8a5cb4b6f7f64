package heuristic

import (
	"math"

	"github.com/samplestar-go/samplestar/gridcoord"
)

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Manhattan is the admissible heuristic for 4-connectivity unit-cost grids.
func Manhattan(a, b gridcoord.Cell) int64 {
	return int64(absInt(a.X-b.X) + absInt(a.Y-b.Y))
}

// Chebyshev is the admissible heuristic for 8-connectivity grids where
// diagonal and orthogonal steps cost the same.
func Chebyshev(a, b gridcoord.Cell) int64 {
	dx, dy := absInt(a.X-b.X), absInt(a.Y-b.Y)
	if dx > dy {
		return int64(dx)
	}
	return int64(dy)
}

// Euclidean is the straight-line distance between a and b.
func Euclidean(a, b gridcoord.Cell) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// sqrt2 is the cost of a single diagonal step.
const sqrt2 = 1.4142135623730951

// Octile is the admissible heuristic for 8-connectivity grids where a
// diagonal step costs sqrt(2) and an orthogonal step costs 1.
func Octile(a, b gridcoord.Cell) float64 {
	dx, dy := absInt(a.X-b.X), absInt(a.Y-b.Y)
	min, max := dx, dy
	if dx > dy {
		min, max = dy, dx
	}
	return float64(min)*sqrt2 + float64(max-min)
}
