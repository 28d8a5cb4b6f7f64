package heuristic

import (
	"container/heap"
	"math"

	"github.com/samplestar-go/samplestar/belief"
	"github.com/samplestar-go/samplestar/gridcoord"
)

// hopScale is the factor scaled_probability is multiplied by before the hop
// count is folded in, so the packed int64 orders lexicographically by
// (scaled_probability, hop_count) exactly as the pair would. Grids explored
// by a single rollout never approach this many hops.
const hopScale = 1_000_000

// probNode is the accumulated cost to reach a cell from the goal: the
// summed -log2(state) of every edge taken (accum), and the hop count.
type probNode struct {
	accum float64
	hops  int64
}

func less(a, b probNode) bool {
	if a.accum != b.accum {
		return a.accum < b.accum
	}
	return a.hops < b.hops
}

type probItem struct {
	cell gridcoord.Cell
	node probNode
}

type probHeap []*probItem

func (h probHeap) Len() int            { return len(h) }
func (h probHeap) Less(i, j int) bool  { return less(h[i].node, h[j].node) }
func (h probHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *probHeap) Push(x any)         { *h = append(*h, x.(*probItem)) }
func (h *probHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// edgeCost is -log2(state): 0 for a certainly-passable neighbor, +Inf for a
// certainly-blocked one (log2(0) = -Inf).
func edgeCost(state float32) float64 {
	return -math.Log2(float64(state))
}

// unreachableRank is returned for a cell the pass never reaches (or whose
// accumulated edge cost is +Inf, i.e. passes through a certainly-blocked
// cell). It is kept at MaxInt64/2 rather than MaxInt64 itself: this value
// feeds pathstore.GreedyStore's stored weight and visualize's weight-sum
// normalization, and a sentinel with no headroom left below MaxInt64 would
// overflow to negative the moment anything adds to it.
const unreachableRank = math.MaxInt64 / 2

// ProbabilityToGoal runs an A*-like pass from goal over every in-bounds
// cell of g's belief grid (4-connectivity, edge cost -log2(target state)),
// then returns a ranking function over reached cells: lower is better,
// ordered lexicographically by (scaled accumulated probability, hop count).
// Cells the pass never reaches (goal unreachable even ignoring belief,
// impossible on a grid with in-bounds neighbors, but guarded regardless),
// or whose accumulated cost is +Inf, rank worst via unreachableRank.
//
// This is a standalone pass rather than a reuse of package search's engine:
// the cost domain here is a float accumulator plus a hop count, ordered
// lexicographically, not the int64 g+h the generic engine assumes, and the
// traversal runs unconditionally to exhaustion (no goal predicate) since
// every reachable cell needs a ranking, not just one target.
//
// Adapted from original_source/src/heuristics/probability.rs::compute_probability.
func ProbabilityToGoal(g *belief.Grid, goal gridcoord.Cell) func(gridcoord.Cell) int64 {
	best := map[gridcoord.Cell]probNode{goal: {0, 0}}
	visited := map[gridcoord.Cell]bool{}

	open := &probHeap{}
	heap.Init(open)
	heap.Push(open, &probItem{cell: goal, node: probNode{0, 0}})

	for open.Len() > 0 {
		item := heap.Pop(open).(*probItem)
		if visited[item.cell] {
			continue
		}
		if item.node != best[item.cell] {
			continue // stale lazy-decrease-key entry
		}
		visited[item.cell] = true

		for _, n := range gridcoord.Neighbors4(item.cell) {
			if !g.InBounds(n) {
				continue
			}
			candidate := probNode{
				accum: item.node.accum + edgeCost(g.StateAt(n)),
				hops:  item.node.hops + 1,
			}
			if old, ok := best[n]; !ok || less(candidate, old) {
				best[n] = candidate
				heap.Push(open, &probItem{cell: n, node: candidate})
			}
		}
	}

	return func(n gridcoord.Cell) int64 {
		node, ok := best[n]
		if !ok || math.IsInf(node.accum, 1) {
			return unreachableRank
		}
		scaled := int64(math.Round(node.accum * 1000))
		return scaled*hopScale + node.hops
	}
}
