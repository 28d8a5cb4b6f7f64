package search

import "github.com/samplestar-go/samplestar/gridcoord"

// Edge is one outgoing transition from a node, with its step cost.
type Edge struct {
	To   gridcoord.Cell
	Cost int64
}

// Expander returns every outgoing edge from node. Called lazily: an
// implementation may realize (sample) a cell the first time it is asked
// about, matching the lazy-sampled rollout expanders in package samplestar.
type Expander func(node gridcoord.Cell) []Edge

// Heuristic estimates remaining cost from node to the goal. AStar takes one
// Heuristic for the open-list key (f = g + h, which must be admissible for
// the result to be optimal) and a second, independently replaceable
// Heuristic used only to rank the best-effort fallback when the open list
// empties before the goal predicate fires, since the fallback ranking (e.g.
// heuristic.ProbabilityToGoal) need not be admissible. FocalSearch has no
// separate fallback slot: it ranks its best-effort fallback with the same
// heuristic that keys its open list.
type Heuristic func(node gridcoord.Cell) int64

// GoalPredicate reports whether node satisfies the search's goal condition.
type GoalPredicate func(node gridcoord.Cell) bool

// Result is the outcome of a best-effort search: always a non-empty Path
// (at minimum, the start node alone), and the accumulated Cost to reach the
// final node on that path.
type Result struct {
	Path []gridcoord.Cell
	Cost int64
}
