package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samplestar-go/samplestar/belief"
	"github.com/samplestar-go/samplestar/gridcoord"
	"github.com/samplestar-go/samplestar/pathstore"
	"github.com/samplestar-go/samplestar/stats"
)

func TestBagBuiltinAccumulators(t *testing.T) {
	b := stats.NewBag(nil, nil)
	b.Add(stats.IdxPaths, 3)
	b.Add(stats.IdxExp, 10)
	b.Add(stats.IdxAvgLen, 4)

	assert.Equal(t, float32(3), b.Get(stats.IdxPaths))
	assert.Equal(t, float32(10), b.Get(stats.IdxExp))
	assert.Equal(t, float32(4), b.Get(stats.IdxAvgLen))
}

func TestBagPathHooksAverageOverPathLength(t *testing.T) {
	hook := stats.NamedPathHook{
		Name: "SumX",
		Hook: func(g *belief.Grid, node gridcoord.Cell) float32 { return float32(node.X) },
	}
	b := stats.NewBag([]stats.NamedPathHook{hook}, nil)

	path := []gridcoord.Cell{{X: 0, Y: 0}, {X: 2, Y: 0}}
	b.RunPathStats(nil, path)

	// (0/2 + 2/2) = 1.0
	rendered := b.Render()
	assert.Contains(t, rendered, "SumX: 1.00")
}

func TestBagCollatePathStatsDividesByEpochs(t *testing.T) {
	b := stats.NewBag(nil, nil)
	b.Add(stats.IdxExp, 20)
	b.Add(stats.IdxAvgLen, 8)
	b.CollatePathStats(4)

	assert.Equal(t, float32(5), b.Get(stats.IdxExp))
	assert.Equal(t, float32(2), b.Get(stats.IdxAvgLen))
}

func TestBagCollatePathStatsLeavesSumsWhenZeroEpochs(t *testing.T) {
	b := stats.NewBag(nil, nil)
	b.Add(stats.IdxExp, 20)
	b.CollatePathStats(0)
	assert.Equal(t, float32(20), b.Get(stats.IdxExp))
}

func TestBagStepHooks(t *testing.T) {
	hook := stats.NamedStepHook{
		Name: "Candidates",
		Hook: func(store pathstore.Store, adjacent []gridcoord.Cell) float32 { return float32(len(adjacent)) },
	}
	b := stats.NewBag(nil, []stats.NamedStepHook{hook})
	b.RunStepStats(nil, []gridcoord.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}})
	assert.Contains(t, b.Render(), "Candidates: 2.00")
}

func TestBagClearResetsAllAccumulators(t *testing.T) {
	b := stats.NewBag(nil, nil)
	b.Add(stats.IdxPaths, 5)
	b.Clear()
	assert.Equal(t, float32(0), b.Get(stats.IdxPaths))
}
