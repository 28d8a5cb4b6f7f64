package samplestar

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/samplestar-go/samplestar/belief"
	"github.com/samplestar-go/samplestar/bgrid"
	"github.com/samplestar-go/samplestar/gridcoord"
	"github.com/samplestar-go/samplestar/heuristic"
	"github.com/samplestar-go/samplestar/matrixutil"
	"github.com/samplestar-go/samplestar/pathstore"
	"github.com/samplestar-go/samplestar/rngutil"
	"github.com/samplestar-go/samplestar/search"
	"github.com/samplestar-go/samplestar/stats"
)

// Loop holds one problem instance's running state: the shared belief grid,
// the current/previous/goal cells, the two path stores, the statistics
// bag, the fixed admissible heuristic that orders every rollout's A* open
// list, and the replaceable best-effort heuristic the search falls back on
// when a rollout's open list empties before reaching Goal.
//
// The search object itself carries no state across steps beyond that
// best-effort heuristic — package search's AStar is a pure function, so
// "replacing the heuristic" is just assigning a new closure here.
type Loop struct {
	Belief    *belief.Grid
	Previous  gridcoord.Cell
	Current   gridcoord.Cell
	Goal      gridcoord.Cell
	Epoch     int
	Kernel    matrixutil.Matrix[float32]
	FinalPath []gridcoord.Cell
	Stats     *stats.Bag

	primary  *pathstore.AccStore
	fallback *pathstore.GreedyStore

	admissible search.Heuristic
	bestEffort search.Heuristic
	seed       int64
	step       int64
}

// NewLoop builds a Loop ready to Step from Start toward Goal, sampling
// Epoch rollouts per step and folding Kernel's covariances into the belief
// grid on every raycast update, the way dijkstra.Dijkstra(g, Source("A"),
// ...) takes its graph positionally and everything else as options.
//
// Required options (Start, Goal, Epoch, a valid odd-sided Kernel) are
// validated; Bag defaults to a hookless stats.Bag and Seed defaults to
// rngutil.DefaultSeed.
func NewLoop(belief *belief.Grid, opts ...Option) (*Loop, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Bag == nil {
		o.Bag = stats.NewBag(nil, nil)
	}

	if !belief.InBounds(o.Start) || !belief.InBounds(o.Goal) {
		return nil, ErrOutOfBounds
	}
	if o.Epoch <= 0 {
		return nil, ErrInvalidEpoch
	}
	if o.Kernel.Width%2 == 0 || o.Kernel.Height%2 == 0 {
		return nil, ErrInvalidKernel
	}

	l := &Loop{
		Belief:    belief,
		Previous:  o.Start,
		Current:   o.Start,
		Goal:      o.Goal,
		Epoch:     o.Epoch,
		Kernel:    o.Kernel,
		FinalPath: []gridcoord.Cell{o.Start},
		Stats:     o.Bag,
		primary:   pathstore.NewAccStore(nil),
		seed:      o.Seed,
	}
	l.fallback = pathstore.NewGreedyStore(func(c gridcoord.Cell) int64 { return l.bestEffort(c) })
	l.admissible = func(c gridcoord.Cell) int64 { return heuristic.Manhattan(c, o.Goal) }
	l.bestEffort = l.admissible
	return l, nil
}

// rolloutStream packs a step index and a rollout index into the stream
// identifier rngutil.Derive expects, keeping every rollout's RNG
// independent and reproducible given a fixed loop seed.
func rolloutStream(step, rollout int64) uint64 {
	return uint64(step)<<32 | uint64(uint32(rollout))
}

// Step advances the loop by one committed cell. Returns true once Current
// has reached Goal (a no-op step that performs no work). Returns an error
// only if a rollout's context is canceled.
func (l *Loop) Step(ctx context.Context) (bool, error) {
	if l.Current == l.Goal {
		return true, nil
	}

	l.Belief.RaycastUpdate(l.Current, l.Kernel)

	// Replace the best-effort fallback heuristic with probability-to-goal
	// computed against the freshly updated belief, per the control loop's
	// contract: this heuristic backstops a rollout that never reaches the
	// goal. It is not admissible, so it never feeds A*'s open-list key —
	// l.admissible (Manhattan, fixed for the life of the loop) does that.
	l.bestEffort = heuristic.ProbabilityToGoal(l.Belief, l.Goal)

	l.primary.Reinitialize()
	l.fallback.Reinitialize()
	l.Stats.Clear()

	var validPaths atomic.Int64
	var mu sync.Mutex

	width, height := l.Belief.Width, l.Belief.Height
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < l.Epoch; i++ {
		i := int64(i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return l.rollout(i, width, height, &validPaths, &mu)
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	l.Previous = l.Current
	adjacent := l.Belief.Adjacent(l.Current, false)

	l.Stats.Add(stats.IdxPaths, float32(validPaths.Load()))
	l.Stats.CollatePathStats(int(validPaths.Load()))

	var active pathstore.Store = l.fallback
	if validPaths.Load() > 0 {
		active = l.primary
	}
	l.Stats.RunStepStats(active, adjacent)

	next, ok := active.NextNode(adjacent)
	if !ok {
		next = l.Current
	}

	// Bump semantics: the belief's center-cross pinning can lag by one
	// step, so a committed move is checked against ground truth and
	// reverted rather than trusted outright.
	if passable, err := l.Belief.Ground.Get(next); err != nil || !passable {
		next = l.Previous
	}

	l.Current = next
	l.FinalPath = append(l.FinalPath, l.Current)
	l.step++
	return false, nil
}

// rollout runs one Monte-Carlo sample: fresh scratch grids and RNG, a
// lazy-sampled expander over the belief grid, best-effort A* toward Goal,
// then folds the outcome into whichever store/stats state is shared.
func (l *Loop) rollout(index int64, width, height int, validPaths *atomic.Int64, mu *sync.Mutex) error {
	rng := rngutil.Derive(rngutil.FromSeed(l.seed), rolloutStream(l.step, index))

	sampled, err := bgrid.New(width, height)
	if err != nil {
		return err
	}
	sampledBefore, err := bgrid.New(width, height)
	if err != nil {
		return err
	}

	expander := func(n gridcoord.Cell) []search.Edge {
		neighbors := l.Belief.SampleAdjacent(sampled, sampledBefore, rng, n)
		edges := make([]search.Edge, len(neighbors))
		for j, s := range neighbors {
			edges[j] = search.Edge{To: s.Cell, Cost: int64(s.Weight)}
		}
		return edges
	}
	isGoal := func(n gridcoord.Cell) bool { return n == l.Goal }

	result := search.AStar(expander, l.Current, isGoal, l.admissible, l.bestEffort, rng)
	found := len(result.Path) > 0 && result.Path[len(result.Path)-1] == l.Goal

	mu.Lock()
	defer mu.Unlock()

	noValidPaths := validPaths.Load() == 0
	if noValidPaths && found {
		l.fallback.Reinitialize()
		l.Stats.Clear()
	}
	if found {
		validPaths.Add(1)
	}

	l.Stats.RunPathStats(l.Belief, result.Path)
	l.Stats.Add(stats.IdxExp, float32(sampled.CountOnes()))
	l.Stats.Add(stats.IdxAvgLen, float32(result.Cost))

	switch {
	case found:
		l.primary.AddPath(result.Path, result.Cost)
	case noValidPaths:
		// GreedyStore matches candidates against its path's first cell, and
		// the candidates are Current's neighbors, so the rollout's own start
		// cell is dropped: the stored path begins at the rollout's first move.
		l.fallback.AddPath(result.Path[1:], result.Cost)
	}
	return nil
}
