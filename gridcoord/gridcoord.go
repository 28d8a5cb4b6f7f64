// Package gridcoord defines the shared (x,y) cell coordinate used across the
// Sample-Star subsystems, plus precomputed 4- and 8-connectivity neighbor
// offsets. All public APIs in this module use (x, y) ordering, per the data
// model: x is the column, y is the row.
package gridcoord

// Cell is a single grid coordinate. x ∈ [0, W), y ∈ [0, H) for an in-bounds
// cell, but Cell itself carries no bounds information — it is a plain value.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Offsets4 lists the four orthogonal neighbor offsets: N, E, S, W.
var Offsets4 = [4]Cell{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// Offsets8 lists the eight neighbor offsets including diagonals, starting
// from N and proceeding clockwise.
var Offsets8 = [8]Cell{
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
}

// Neighbors4 returns the four orthogonal neighbors of c, in Offsets4 order.
func Neighbors4(c Cell) [4]Cell {
	var out [4]Cell
	for i, d := range Offsets4 {
		out[i] = c.Add(d.X, d.Y)
	}
	return out
}

// Neighbors8 returns the eight neighbors of c (orthogonal + diagonal), in
// Offsets8 order.
func Neighbors8(c Cell) [8]Cell {
	var out [8]Cell
	for i, d := range Offsets8 {
		out[i] = c.Add(d.X, d.Y)
	}
	return out
}
