package belief

import (
	"github.com/samplestar-go/samplestar/gridcoord"
	"github.com/samplestar-go/samplestar/matrixutil"
	"github.com/samplestar-go/samplestar/visibility"
)

// covEntry is one cell of an adjacency kernel: a measurement covariance to
// apply, or Skip if this cell should not be updated.
type covEntry struct {
	value float32
	skip  bool
}

// adjacencyKernel wraps kernel as covariance entries, then pins the center
// and its four orthogonal neighbors to covariance 0 (a perfectly trusted
// measurement) — the agent's own cell and its immediate neighbors are
// always directly observed, regardless of what the supplied kernel says.
//
// Adapted from
// original_source/src/domains/samplegrids/samplegrid2d.rs::adjacency_kernel.
func adjacencyKernel(kernel matrixutil.Matrix[float32]) matrixutil.Matrix[covEntry] {
	out, _ := matrixutil.New[covEntry](kernel.Width, kernel.Height)
	for y := 0; y < kernel.Height; y++ {
		for x := 0; x < kernel.Width; x++ {
			out.SetUnchecked(x, y, covEntry{value: kernel.Get(x, y)})
		}
	}

	dx, dy := kernel.Width/2, kernel.Height/2
	pin := func(x, y int) {
		if x >= 0 && x < kernel.Width && y >= 0 && y < kernel.Height {
			out.SetUnchecked(x, y, covEntry{value: 0})
		}
	}
	pin(dx, dy)
	pin(max0(dx-1), dy)
	pin(dx, max0(dy-1))
	pin(dx+1, dy)
	pin(dx, dy+1)

	return out
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// updateKernel applies every non-skipped entry of kernel, centered at c, to
// the corresponding belief node.
func (g *Grid) updateKernel(c gridcoord.Cell, kernel matrixutil.Matrix[covEntry]) {
	ox := c.X - kernel.Width/2
	oy := c.Y - kernel.Height/2
	for j := 0; j < kernel.Height; j++ {
		for i := 0; i < kernel.Width; i++ {
			entry := kernel.Get(i, j)
			if entry.skip {
				continue
			}
			target := gridcoord.Cell{X: ox + i, Y: oy + j}
			if !g.inBounds(target) {
				continue
			}
			g.UpdateNode(target, entry.value)
		}
	}
}

// RaycastUpdate updates every node visible from c (per the kernel's radius)
// with kernel's measurement covariances, skipping cells occluded from c.
//
// Adapted from
// original_source/src/domains/samplegrids/samplegrid2d.rs::raycast_update.
func (g *Grid) RaycastUpdate(c gridcoord.Cell, kernel matrixutil.Matrix[float32]) {
	adj := adjacencyKernel(kernel)
	visible := visibility.Kernel(c, kernel.Width/2, g.GetValue, g.inBounds)
	for y := 0; y < adj.Height; y++ {
		for x := 0; x < adj.Width; x++ {
			if !visible.Get(x, y) {
				entry := adj.Get(x, y)
				entry.skip = true
				adj.SetUnchecked(x, y, entry)
			}
		}
	}
	g.updateKernel(c, adj)
}
