package pathstore

import "github.com/samplestar-go/samplestar/gridcoord"

// GreedyStore keeps only the single most-recently added path, scored by a
// cell heuristic applied to that path's first cell. This is the `fallback`
// store: while no rollout has yet reached the goal, each failed rollout's
// path overwrites the last, and the heuristic (typically probability-to-
// goal) ranks that rollout's starting move as a tiebreaker.
type GreedyStore struct {
	h      CellHeuristic
	path   []gridcoord.Cell
	weight int64
	paths  int
}

// NewGreedyStore builds a GreedyStore scored by h.
func NewGreedyStore(h CellHeuristic) *GreedyStore {
	return &GreedyStore{h: h}
}

// AddPath overwrites the stored path; the weight argument is ignored in
// favor of h(path[0]), per the store's contract.
func (s *GreedyStore) AddPath(path []gridcoord.Cell, _ int64) {
	s.path = path
	if len(path) > 0 {
		s.weight = s.h(path[0])
	} else {
		s.weight = 0
	}
	s.paths++
}

// Get returns the stored weight if c is the kept path's first cell, else 0.
func (s *GreedyStore) Get(c gridcoord.Cell) int64 {
	if len(s.path) > 0 && s.path[0] == c {
		return s.weight
	}
	return 0
}

// NextNode returns the first candidate equal to the kept path's first cell.
func (s *GreedyStore) NextNode(candidates []gridcoord.Cell) (gridcoord.Cell, bool) {
	if len(s.path) == 0 {
		return gridcoord.Cell{}, false
	}
	target := s.path[0]
	for _, c := range candidates {
		if c == target {
			return c, true
		}
	}
	return gridcoord.Cell{}, false
}

func (s *GreedyStore) Len() int { return s.paths }

func (s *GreedyStore) Reinitialize() {
	s.path = nil
	s.weight = 0
	s.paths = 0
}
