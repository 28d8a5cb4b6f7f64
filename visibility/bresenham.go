package visibility

import "github.com/samplestar-go/samplestar/gridcoord"

// Bresenham casts an integer line from a toward b, inclusive of both
// endpoints when the line is fully in bounds and unobstructed. Cells are
// emitted in order from a outward.
//
// inBounds is checked before a candidate cell is emitted: if it reports
// false, casting stops without emitting that cell. visible is checked after
// emission: if it reports false, casting stops having already emitted the
// blocking cell — the blocking cell itself is visible, cells strictly
// beyond it are not.
//
// Adapted from original_source/src/fov/linedrawing.rs::bresenham, which
// combines bounds and passability into a single visibility_check closure;
// here they are split per their distinct stop semantics.
func Bresenham(a, b gridcoord.Cell, visible, inBounds func(gridcoord.Cell) bool) []gridcoord.Cell {
	x0, y0, x1, y1 := a.X, a.Y, b.X, b.Y

	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0, x1, y1 = y0, x0, y1, x1
	}

	sign := 1
	if x0 > x1 {
		sign, x0, x1 = -1, -x0, -x1
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	ystep := 1
	if y0 >= y1 {
		ystep = -1
	}
	error := dx / 2
	y := y0

	var line []gridcoord.Cell
	for x := x0; x <= x1; x++ {
		var c gridcoord.Cell
		if steep {
			c = gridcoord.Cell{X: y, Y: sign * x}
		} else {
			c = gridcoord.Cell{X: sign * x, Y: y}
		}

		if !inBounds(c) {
			break
		}
		line = append(line, c)
		if !visible(c) {
			break
		}

		error -= dy
		if error < 0 {
			y += ystep
			error += dx
		}
	}

	return line
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
