package pathstore

import "github.com/samplestar-go/samplestar/gridcoord"

// Store is the common interface both concrete stores satisfy. It is not
// safe for unsynchronized concurrent use: the control loop in package
// samplestar guards both stores and its statistics bag with one shared
// mutex, and a rollout touches the stores only inside that one locked
// section (a possible fallback Reinitialize, then one conditional AddPath).
type Store interface {
	AddPath(path []gridcoord.Cell, weight int64)
	Get(c gridcoord.Cell) int64
	NextNode(candidates []gridcoord.Cell) (gridcoord.Cell, bool)
	Len() int
	Reinitialize()
}

// WeightFunc transforms a path's whole-path weight into the per-visit
// contribution AccStore adds to each cell on that path.
type WeightFunc func(weight int64) int64

// CellHeuristic ranks a single cell; GreedyStore uses one to score the
// first cell of whichever path it last kept.
type CellHeuristic func(c gridcoord.Cell) int64

// CountWeight is the default AccStore contribution: every visit counts as
// exactly one, regardless of the path's weight argument.
func CountWeight(int64) int64 { return 1 }
