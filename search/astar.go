package search

import (
	"container/heap"
	"math/rand"

	"github.com/samplestar-go/samplestar/gridcoord"
)

// AStar runs best-effort A* from start: pop the lowest f = g + h node, stop
// as soon as isGoal fires, relax its neighbors, repeat. h must be admissible
// (never overestimate true remaining cost) for the result to be optimal
// when isGoal does fire. If the open list empties first, it returns the
// path to whichever expanded node minimizes bestEffort instead — a second,
// independent ranking that need not be admissible (package heuristic's
// ProbabilityToGoal, for instance, is not) since it only ever orders a
// fallback, never the open list itself — rather than failing; callers never
// have to handle a "no path" case.
//
// rng supplies the per-push tiebreak; callers that need deterministic,
// reproducible runs (every rollout in package samplestar does) should pass
// an RNG derived from a fixed seed via rngutil.
//
// Adapted from original_source/src/search/astar.rs::a_star.
func AStar(expander Expander, start gridcoord.Cell, isGoal GoalPredicate, h, bestEffort Heuristic, rng *rand.Rand) Result {
	f := newFrontier(start)
	closed := map[gridcoord.Cell]bool{}

	open := &openHeap{}
	heap.Init(open)
	heap.Push(open, &openItem{cell: start, f: h(start), tiebreak: rng.Uint32()})

	for open.Len() > 0 {
		item := heap.Pop(open).(*openItem)
		node := item.cell

		if closed[node] {
			continue
		}
		// Stale lazy-decrease-key entry: a cheaper push for this node
		// already happened, so this one no longer reflects f.g[node].
		if item.f != f.g[node]+h(node) {
			continue
		}
		closed[node] = true

		if isGoal(node) {
			return Result{Path: f.path(node), Cost: f.g[node]}
		}

		for _, e := range expander(node) {
			if closed[e.To] {
				continue
			}
			if newG, improved := f.relax(node, e.To, e.Cost); improved {
				heap.Push(open, &openItem{cell: e.To, f: newG + h(e.To), tiebreak: rng.Uint32()})
			}
		}
	}

	return f.bestEffort(bestEffort)
}
