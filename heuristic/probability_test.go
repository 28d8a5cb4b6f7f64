package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samplestar-go/samplestar/belief"
	"github.com/samplestar-go/samplestar/gridcoord"
	"github.com/samplestar-go/samplestar/heuristic"
)

func buildBelief(t *testing.T, rows []string) *belief.Grid {
	t.Helper()
	width, height := len(rows[0]), len(rows)
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

func TestProbabilityToGoalRanksCloserCellsLower(t *testing.T) {
	g := buildBelief(t, []string{"..."})
	goal := gridcoord.Cell{X: 2, Y: 0}
	h := heuristic.ProbabilityToGoal(g, goal)

	atGoal := h(goal)
	oneAway := h(gridcoord.Cell{X: 1, Y: 0})
	twoAway := h(gridcoord.Cell{X: 0, Y: 0})

	assert.Less(t, atGoal, oneAway)
	assert.Less(t, oneAway, twoAway)
}

func TestProbabilityToGoalWorstRanksBlockedCell(t *testing.T) {
	g := buildBelief(t, []string{".@."})
	goal := gridcoord.Cell{X: 0, Y: 0}
	h := heuristic.ProbabilityToGoal(g, goal)

	assert.Equal(t, int64(math.MaxInt64/2), h(gridcoord.Cell{X: 1, Y: 0}))
}
