package belief_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samplestar-go/samplestar/belief"
	"github.com/samplestar-go/samplestar/gridcoord"
	"github.com/samplestar-go/samplestar/matrixutil"
)

func TestRaycastUpdatePinsCenterAndNeighbors(t *testing.T) {
	g := buildGrid(t, []string{
		".@..",
		".@.@",
		".@.@",
	})
	// simulate a grid that has been blurred: every passable cell sits at an
	// uncertain 0.6 rather than a confident 1.0.
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := gridcoord.Cell{X: x, Y: y}
			if g.StateAt(c) == 1.0 {
				require.NoError(t, setState(g, c, 0.6))
			}
		}
	}

	kernel, err := matrixutil.New[float32](5, 5)
	require.NoError(t, err)
	kernel.Fill(0)

	g.RaycastUpdate(gridcoord.Cell{X: 0, Y: 0}, kernel)

	assert.Equal(t, float32(1.0), g.StateAt(gridcoord.Cell{X: 0, Y: 0}))
	assert.Equal(t, float32(1.0), g.StateAt(gridcoord.Cell{X: 0, Y: 1}))
	assert.Equal(t, float32(0.0), g.StateAt(gridcoord.Cell{X: 1, Y: 0}))
	assert.Equal(t, float32(0.6), g.StateAt(gridcoord.Cell{X: 2, Y: 0}))
}

// setState pokes a node's state directly without touching ground truth,
// simulating a post-blur belief that has drifted from a hard 0/1 reading.
func setState(g *belief.Grid, c gridcoord.Cell, state float32) error {
	n, err := g.NodeAt(c)
	if err != nil {
		return err
	}
	n.State = state
	return g.PokeNode(c, n)
}
