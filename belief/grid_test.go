package belief_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samplestar-go/samplestar/belief"
	"github.com/samplestar-go/samplestar/bgrid"
	"github.com/samplestar-go/samplestar/gridcoord"
	"github.com/samplestar-go/samplestar/matrixutil"
)

func deterministicRNG(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewSource(42))
}

func buildGrid(t *testing.T, rows []string) *belief.Grid {
	t.Helper()
	width := len(rows[0])
	height := len(rows)
	g, err := belief.New(width, height)
	require.NoError(t, err)
	for y, row := range rows {
		for x, r := range row {
			if r == '.' {
				require.NoError(t, g.SetValue(gridcoord.Cell{X: x, Y: y}, true))
			}
		}
	}
	return g
}

func TestSetGetValueRoundTrip(t *testing.T) {
	g := buildGrid(t, []string{
		".....",
		"@@.@.",
		".@.@.",
	})
	assert.True(t, g.GetValue(gridcoord.Cell{X: 0, Y: 0}))
	assert.InDelta(t, float32(1.0), g.StateAt(gridcoord.Cell{X: 0, Y: 0}), 1e-6)
	assert.InDelta(t, float32(0.0), g.StateAt(gridcoord.Cell{X: 0, Y: 1}), 1e-6)
}

func TestBlurMatchesGaussianConvolution(t *testing.T) {
	g := buildGrid(t, []string{
		"@....",
		"@@...",
		"@@@..",
		"@@@..",
		"@@...",
	})
	g.Blur(matrixutil.GaussianKernel(3, 1.0))

	want := []float32{
		0.19895503, 0.60209, 0.9248864, 1.0, 1.0,
		0.07511361, 0.32279643, 0.6772036, 0.9248864, 1.0,
		0.0, 0.07511361, 0.39791006, 0.801045, 1.0,
		0.0, 0.07511361, 0.39791006, 0.801045, 1.0,
		0.0, 0.19895503, 0.60209, 0.9248864, 1.0,
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			assert.InDelta(t, want[y*g.Width+x], g.StateAt(gridcoord.Cell{X: x, Y: y}), 1e-5, "cell (%d,%d)", x, y)
		}
	}
}

func TestSampleAllCountsOccupiedCells(t *testing.T) {
	g, err := belief.New(8, 8)
	require.NoError(t, err)
	pin := func(x, y int) {
		require.NoError(t, g.SetValue(gridcoord.Cell{X: x, Y: y}, true))
	}
	pin(0, 0)
	pin(2, 4)
	pin(1, 6)

	scratch, err := bgrid.New(8, 8)
	require.NoError(t, err)
	rng := deterministicRNG(t)
	g.SampleAll(scratch, rng)
	assert.Equal(t, 3, scratch.CountOnes())
}

func TestSampleAdjacentOnlyPassableIncluded(t *testing.T) {
	g, err := belief.New(4, 4)
	require.NoError(t, err)
	require.NoError(t, g.SetValue(gridcoord.Cell{X: 1, Y: 0}, true))
	require.NoError(t, g.SetValue(gridcoord.Cell{X: 0, Y: 1}, false))

	scratch, _ := bgrid.New(4, 4)
	sampledBefore, _ := bgrid.New(4, 4)
	rng := deterministicRNG(t)

	out := g.SampleAdjacent(scratch, sampledBefore, rng, gridcoord.Cell{X: 0, Y: 0})
	// (1,0) has state 1 and always samples passable; (0,1) has state 0 and
	// never does; the other two neighbors are out of bounds.
	require.Len(t, out, 1)
	assert.Equal(t, gridcoord.Cell{X: 1, Y: 0}, out[0].Cell)
	for _, s := range out {
		assert.Equal(t, 1, s.Weight)
	}
}
