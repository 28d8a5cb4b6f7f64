package pathstore

import "github.com/samplestar-go/samplestar/gridcoord"

// AccStore accumulates Σ h(weight) per cell across every path added since
// the last Reinitialize. NextNode picks the candidate with the largest
// accumulated bucket, which is the store used as `primary`: once at least
// one rollout reaches the goal, cells on more of the successful paths pull
// more weight and win the vote.
type AccStore struct {
	h       WeightFunc
	buckets map[gridcoord.Cell]int64
	paths   int
}

// NewAccStore builds an AccStore with the given per-visit weighting
// function. Pass CountWeight for the default count-store behavior.
func NewAccStore(h WeightFunc) *AccStore {
	if h == nil {
		h = CountWeight
	}
	return &AccStore{h: h, buckets: map[gridcoord.Cell]int64{}}
}

func (s *AccStore) AddPath(path []gridcoord.Cell, weight int64) {
	contribution := s.h(weight)
	for _, c := range path {
		s.buckets[c] += contribution
	}
	s.paths++
}

func (s *AccStore) Get(c gridcoord.Cell) int64 {
	return s.buckets[c]
}

// NextNode returns the candidate with the largest bucket value, breaking
// ties by the earliest position in candidates (deterministic given a
// deterministic candidate order, per the "ties broken arbitrarily but
// deterministically per run" contract).
func (s *AccStore) NextNode(candidates []gridcoord.Cell) (gridcoord.Cell, bool) {
	if len(candidates) == 0 {
		return gridcoord.Cell{}, false
	}
	best := candidates[0]
	bestW := s.buckets[best]
	for _, c := range candidates[1:] {
		if w := s.buckets[c]; w > bestW {
			best, bestW = c, w
		}
	}
	return best, true
}

func (s *AccStore) Len() int { return s.paths }

func (s *AccStore) Reinitialize() {
	s.buckets = map[gridcoord.Cell]int64{}
	s.paths = 0
}
