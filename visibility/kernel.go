package visibility

import (
	"github.com/samplestar-go/samplestar/gridcoord"
	"github.com/samplestar-go/samplestar/matrixutil"
)

// Kernel computes the (2r+1)x(2r+1) visibility kernel around center: cast 8r
// rays from center to every cell on the perimeter of the square of radius r,
// marking every cell each ray passes through as visible. The result is in
// kernel-local coordinates — kernel cell (i,j) corresponds to world cell
// (center.X-r+i, center.Y-r+j).
//
// Adapted from original_source/src/fov/fieldofvision.rs::raycasting, which
// collects ray cells into a HashSet; here the matrix is the set, since every
// cast cell is already bounded to the kernel's own coordinate space.
func Kernel(center gridcoord.Cell, r int, passable, inBounds func(gridcoord.Cell) bool) matrixutil.Matrix[bool] {
	size := 2*r + 1
	out, _ := matrixutil.New[bool](size, size)
	if r <= 0 {
		out.SetUnchecked(r, r, true)
		return out
	}

	mark := func(c gridcoord.Cell) {
		i := c.X - center.X + r
		j := c.Y - center.Y + r
		if i >= 0 && i < size && j >= 0 && j < size {
			out.SetUnchecked(i, j, true)
		}
	}

	for i := 0; i < 2*r; i++ {
		for _, target := range [4]gridcoord.Cell{
			{X: center.X - r + i, Y: center.Y - r},
			{X: center.X + r, Y: center.Y - r + i},
			{X: center.X + r - i, Y: center.Y + r},
			{X: center.X - r, Y: center.Y + r - i},
		} {
			for _, c := range Bresenham(center, target, passable, inBounds) {
				mark(c)
			}
		}
	}

	return out
}
