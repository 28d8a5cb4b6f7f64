package bgrid

import (
	"github.com/kelindar/bitmap"

	"github.com/samplestar-go/samplestar/gridcoord"
)

// Grid is a padded, bit-packed 2D occupancy grid: Width x Height addressable
// cells, each one bit, backed by a bitmap.Bitmap sized to include a
// padding-cell border on every side.
type Grid struct {
	Width, Height int

	padWidth, padHeight int
	bits                bitmap.Bitmap
}

// New allocates a Width x Height grid with every cell initially clear.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	padWidth := width + 2*padding
	padHeight := height + 2*padding
	g := &Grid{
		Width:     width,
		Height:    height,
		padWidth:  padWidth,
		padHeight: padHeight,
	}
	g.bits.Grow(uint32(padWidth*padHeight) - 1)

	return g, nil
}

// index maps a cell, which may extend up to padding cells beyond the
// addressable grid, to its bit position in the padded bitmap.
func (g *Grid) index(x, y int) uint32 {
	return uint32((y+padding)*g.padWidth + (x + padding))
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Set assigns the occupancy bit of an in-bounds cell.
func (g *Grid) Set(c gridcoord.Cell, value bool) error {
	if !g.inBounds(c.X, c.Y) {
		return ErrOutOfBounds
	}
	g.setUnchecked(c.X, c.Y, value)
	return nil
}

func (g *Grid) setUnchecked(x, y int, value bool) {
	idx := g.index(x, y)
	if value {
		g.bits.Set(idx)
	} else {
		g.bits.Remove(idx)
	}
}

// Get reports the occupancy bit of an in-bounds cell.
func (g *Grid) Get(c gridcoord.Cell) (bool, error) {
	if !g.inBounds(c.X, c.Y) {
		return false, ErrOutOfBounds
	}
	return g.GetUnchecked(c), nil
}

// GetUnchecked reports the occupancy bit of a cell that may extend up to
// padding cells beyond the addressable grid; such cells always read false,
// since only Set ever writes a bit and Set rejects out-of-bounds cells.
func (g *Grid) GetUnchecked(c gridcoord.Cell) bool {
	return g.bits.Contains(g.index(c.X, c.Y))
}

// CountOnes returns the number of set cells in the grid. Padding bits are
// never set, so counting the whole backing bitmap is equivalent to counting
// only the addressable cells.
func (g *Grid) CountOnes() int {
	return g.bits.Count()
}

// Invert flips every addressable cell's occupancy bit in place. Padding
// cells are left untouched.
func (g *Grid) Invert() {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.setUnchecked(x, y, !g.GetUnchecked(gridcoord.Cell{X: x, Y: y}))
		}
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		Width:     g.Width,
		Height:    g.Height,
		padWidth:  g.padWidth,
		padHeight: g.padHeight,
		bits:      g.bits.Clone(),
	}
	return clone
}

// Adjacent returns the in-bounds 4- or 8-neighbors of c whose occupancy bit
// is set.
func (g *Grid) Adjacent(c gridcoord.Cell, diagonal bool) []gridcoord.Cell {
	var offsets []gridcoord.Cell
	if diagonal {
		ns := gridcoord.Neighbors8(c)
		offsets = ns[:]
	} else {
		ns := gridcoord.Neighbors4(c)
		offsets = ns[:]
	}

	result := make([]gridcoord.Cell, 0, len(offsets))
	for _, n := range offsets {
		if g.inBounds(n.X, n.Y) && g.GetUnchecked(n) {
			result = append(result, n)
		}
	}
	return result
}
