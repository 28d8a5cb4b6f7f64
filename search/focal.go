package search

import (
	"container/heap"
	"math/rand"

	"github.com/samplestar-go/samplestar/gridcoord"
)

// FocalCalc maps the open list's current minimum f to a bound: every open
// node with f <= FocalCalc(fMin) is eligible for the focal list. Must be
// monotone non-decreasing and satisfy FocalCalc(f) >= f.
type FocalCalc func(fMin int64) int64

// NewWeightedFocalCalc returns a FocalCalc implementing the common
// suboptimality-bound search: admit any node within a factor of weight of
// the best known f. weight must be >= 1.0; weight == 1.0 degenerates to
// plain A* (only nodes tied for fMin are ever eligible).
func NewWeightedFocalCalc(weight float64) FocalCalc {
	if weight < 1.0 {
		weight = 1.0
	}
	return func(fMin int64) int64 {
		return int64(float64(fMin) * weight)
	}
}

// FocalSearch runs bounded semi-admissible search: among open nodes whose f
// falls within focalCalc(fMin) of the best known f, expand the one
// minimizing focalHeuristic rather than strictly the lowest f. This lets a
// second-priority heuristic (e.g. "prefer the more confidently passable
// cell") break ties among near-optimal candidates instead of insertion
// order.
//
// Falls back to a best-effort path, ranked by heuristic, if the open list
// empties before isGoal fires — same contract as AStar.
//
// Adapted from original_source/src/search/focalsearch.rs. The reference
// implementation buckets the open list by f in a sorted map so the focal
// window can be read off directly; this port keeps a single f-ordered heap
// and re-derives the eligible window each iteration by draining entries
// with f <= the current bound, which is simpler to reason about at grid
// scale and has no bearing on the search's result.
func FocalSearch(expander Expander, start gridcoord.Cell, isGoal GoalPredicate, heuristic, focalHeuristic Heuristic, focalCalc FocalCalc, rng *rand.Rand) Result {
	f := newFrontier(start)
	closed := map[gridcoord.Cell]bool{}

	open := &openHeap{}
	heap.Init(open)
	heap.Push(open, &openItem{cell: start, f: heuristic(start), tiebreak: rng.Uint32()})

	for open.Len() > 0 {
		// Discard stale/closed entries sitting at the top before reading fMin.
		for open.Len() > 0 {
			top := (*open)[0]
			if closed[top.cell] || top.f != f.g[top.cell]+heuristic(top.cell) {
				heap.Pop(open)
				continue
			}
			break
		}
		if open.Len() == 0 {
			break
		}

		fMin := (*open)[0].f
		bound := focalCalc(fMin)

		// Drain every eligible (non-stale) entry into a temporary window,
		// pick the one minimizing focalHeuristic, push the rest back.
		var window []*openItem
		for open.Len() > 0 && (*open)[0].f <= bound {
			e := heap.Pop(open).(*openItem)
			if closed[e.cell] || e.f != f.g[e.cell]+heuristic(e.cell) {
				continue
			}
			window = append(window, e)
		}
		if len(window) == 0 {
			continue
		}

		best := window[0]
		bestH := focalHeuristic(best.cell)
		for _, e := range window[1:] {
			if h := focalHeuristic(e.cell); h < bestH || (h == bestH && e.f < best.f) {
				best, bestH = e, h
			}
		}
		for _, e := range window {
			if e != best {
				heap.Push(open, e)
			}
		}

		node := best.cell
		closed[node] = true

		if isGoal(node) {
			return Result{Path: f.path(node), Cost: f.g[node]}
		}

		for _, e := range expander(node) {
			if closed[e.To] {
				continue
			}
			if newG, improved := f.relax(node, e.To, e.Cost); improved {
				heap.Push(open, &openItem{cell: e.To, f: newG + heuristic(e.To), tiebreak: rng.Uint32()})
			}
		}
	}

	return f.bestEffort(heuristic)
}
