package search

import "github.com/samplestar-go/samplestar/gridcoord"

// frontier tracks the g-score, parent pointer, and discovery order of every
// node a search has touched. Shared by AStar and FocalSearch so both engines
// reconstruct paths and pick a best-effort fallback the same way.
//
// Adapted from original_source/src/search/mod.rs::reconstruct_path and
// reconstruct_path_with_cost.
type frontier struct {
	g         map[gridcoord.Cell]int64
	parent    map[gridcoord.Cell]gridcoord.Cell
	hasParent map[gridcoord.Cell]bool
	order     []gridcoord.Cell
	seen      map[gridcoord.Cell]bool
}

func newFrontier(start gridcoord.Cell) *frontier {
	f := &frontier{
		g:         map[gridcoord.Cell]int64{start: 0},
		parent:    map[gridcoord.Cell]gridcoord.Cell{},
		hasParent: map[gridcoord.Cell]bool{start: false},
		order:     []gridcoord.Cell{start},
		seen:      map[gridcoord.Cell]bool{start: true},
	}
	return f
}

// relax offers a candidate cost for reaching `to` via `from`. Returns true
// if the candidate improved on (or introduced) the best known cost.
func (f *frontier) relax(from, to gridcoord.Cell, cost int64) (int64, bool) {
	newG := f.g[from] + cost
	if old, ok := f.g[to]; ok && newG >= old {
		return old, false
	}
	f.g[to] = newG
	f.parent[to] = from
	f.hasParent[to] = true
	if !f.seen[to] {
		f.seen[to] = true
		f.order = append(f.order, to)
	}
	return newG, true
}

// path walks parent pointers from node back to a rootless entry, then
// reverses the result so it reads start -> node.
func (f *frontier) path(node gridcoord.Cell) []gridcoord.Cell {
	var reversed []gridcoord.Cell
	cur := node
	for {
		reversed = append(reversed, cur)
		if !f.hasParent[cur] {
			break
		}
		cur = f.parent[cur]
	}
	path := make([]gridcoord.Cell, len(reversed))
	for i, c := range reversed {
		path[len(reversed)-1-i] = c
	}
	return path
}

// bestEffort picks, among every node the search ever reached, the one
// minimizing rank (first-seen wins ties, for determinism), and returns the
// path and cost to it. Used when the open list empties before the goal
// predicate ever fires. rank is the caller's fallback-ranking heuristic, not
// necessarily the same one that ordered the open list.
func (f *frontier) bestEffort(rank Heuristic) Result {
	best := f.order[0]
	bestH := rank(best)
	for _, c := range f.order[1:] {
		if h := rank(c); h < bestH {
			best, bestH = c, h
		}
	}
	return Result{Path: f.path(best), Cost: f.g[best]}
}
