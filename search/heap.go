package search

import "github.com/samplestar-go/samplestar/gridcoord"

// openItem is one entry of the open list's min-heap: ordered by f ascending,
// with a random tiebreak to decorrelate otherwise-equal keys (two nodes
// reached with the same f would otherwise be ordered by insertion, biasing
// rollouts toward whichever branch happened to expand first).
//
// Adapted from dijkstra/dijkstra.go's nodeItem/nodePQ lazy-decrease-key
// queue: rather than support a decrease-key operation, a cheaper updated
// entry is pushed alongside the stale one, and stale entries are discarded
// when popped.
type openItem struct {
	cell     gridcoord.Cell
	f        int64
	tiebreak uint32
}

type openHeap []*openItem

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].tiebreak < h[j].tiebreak
}

func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap) Push(x any) { *h = append(*h, x.(*openItem)) }

func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
