package samplestar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samplestar-go/samplestar/belief"
	"github.com/samplestar-go/samplestar/gridcoord"
	"github.com/samplestar-go/samplestar/matrixutil"
	"github.com/samplestar-go/samplestar/samplestar"
	"github.com/samplestar-go/samplestar/stats"
)

func openBelief(t *testing.T, width, height int) *belief.Grid {
	t.Helper()
	g, err := belief.New(width, height)
	require.NoError(t, err)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			require.NoError(t, g.SetValue(gridcoord.Cell{X: x, Y: y}, true))
		}
	}
	return g
}

func TestNewLoopRejectsOutOfBoundsEndpoints(t *testing.T) {
	g := openBelief(t, 3, 3)
	kernel, err := matrixutil.New[float32](5, 5)
	require.NoError(t, err)

	_, err = samplestar.NewLoop(g,
		samplestar.Start(gridcoord.Cell{X: 10, Y: 10}),
		samplestar.Goal(gridcoord.Cell{X: 1, Y: 1}),
		samplestar.Epoch(5),
		samplestar.Kernel(kernel),
	)
	assert.ErrorIs(t, err, samplestar.ErrOutOfBounds)
}

func TestNewLoopRejectsEvenKernel(t *testing.T) {
	g := openBelief(t, 3, 3)
	kernel, err := matrixutil.New[float32](4, 4)
	require.NoError(t, err)

	_, err = samplestar.NewLoop(g,
		samplestar.Start(gridcoord.Cell{X: 0, Y: 0}),
		samplestar.Goal(gridcoord.Cell{X: 1, Y: 1}),
		samplestar.Epoch(5),
		samplestar.Kernel(kernel),
	)
	assert.ErrorIs(t, err, samplestar.ErrInvalidKernel)
}

func TestSampleStarSmokeTestReachesGoal(t *testing.T) {
	g := openBelief(t, 5, 5)
	kernel, err := matrixutil.New[float32](5, 5)
	require.NoError(t, err)
	kernel.Fill(0)

	start := gridcoord.Cell{X: 0, Y: 0}
	goal := gridcoord.Cell{X: 4, Y: 4}
	loop, err := samplestar.NewLoop(g,
		samplestar.Start(start),
		samplestar.Goal(goal),
		samplestar.Epoch(10),
		samplestar.Kernel(kernel),
		samplestar.Bag(stats.NewBag(nil, nil)),
		samplestar.Seed(42),
	)
	require.NoError(t, err)

	ctx := context.Background()
	done := false
	for i := 0; i < 10 && !done; i++ {
		done, err = loop.Step(ctx)
		require.NoError(t, err)
	}

	assert.Equal(t, goal, loop.FinalPath[len(loop.FinalPath)-1])
	assert.LessOrEqual(t, len(loop.FinalPath), 9)
}

func TestSampleStarFinalPathStartsAtStart(t *testing.T) {
	g := openBelief(t, 4, 4)
	kernel, err := matrixutil.New[float32](3, 3)
	require.NoError(t, err)

	start := gridcoord.Cell{X: 0, Y: 0}
	goal := gridcoord.Cell{X: 3, Y: 3}
	loop, err := samplestar.NewLoop(g,
		samplestar.Start(start),
		samplestar.Goal(goal),
		samplestar.Epoch(6),
		samplestar.Kernel(kernel),
		samplestar.Seed(7),
	)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		done, err := loop.Step(ctx)
		require.NoError(t, err)
		if done {
			break
		}
	}

	assert.Equal(t, start, loop.FinalPath[0])
	for i := 1; i < len(loop.FinalPath); i++ {
		prev, cur := loop.FinalPath[i-1], loop.FinalPath[i]
		dx, dy := prev.X-cur.X, prev.Y-cur.Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		assert.LessOrEqual(t, dx+dy, 1, "consecutive final-path cells must be 4-neighbors or equal")
	}
}
