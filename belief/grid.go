package belief

import (
	"math/rand"

	"github.com/samplestar-go/samplestar/bgrid"
	"github.com/samplestar-go/samplestar/gridcoord"
	"github.com/samplestar-go/samplestar/kalman"
	"github.com/samplestar-go/samplestar/matrixutil"
	"github.com/samplestar-go/samplestar/rngutil"
)

// Grid couples a matrix of Kalman belief nodes to a hidden ground-truth
// bit-packed grid. Belief state is the estimated passability of a cell
// (1 = traversable, 0 = blocked); ground truth is mutated only at
// construction and by test harnesses, and read by belief updates.
type Grid struct {
	Width, Height int

	nodes  matrixutil.Matrix[kalman.Node]
	Ground *bgrid.Grid
}

// New allocates a Width x Height belief grid with every node at the default
// (uninformative) Kalman prior and a fully-blocked ground truth.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	nodes, err := matrixutil.New[kalman.Node](width, height)
	if err != nil {
		return nil, err
	}
	nodes.Fill(kalman.New())

	ground, err := bgrid.New(width, height)
	if err != nil {
		return nil, err
	}

	return &Grid{Width: width, Height: height, nodes: nodes, Ground: ground}, nil
}

// NewFromState builds a belief grid whose node states are seeded from an
// initial probability field, paired with an existing ground-truth grid.
func NewFromState(state matrixutil.Matrix[float32], ground *bgrid.Grid) (*Grid, error) {
	if state.Width != ground.Width || state.Height != ground.Height {
		return nil, ErrDimensionMismatch
	}
	nodes, err := matrixutil.New[kalman.Node](state.Width, state.Height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < state.Height; y++ {
		for x := 0; x < state.Width; x++ {
			n := kalman.New()
			n.State = state.Get(x, y)
			nodes.SetUnchecked(x, y, n)
		}
	}
	return &Grid{Width: state.Width, Height: state.Height, nodes: nodes, Ground: ground}, nil
}

func (g *Grid) inBounds(c gridcoord.Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// InBounds reports whether c lies within the grid's logical region. Exposed
// so callers (visibility rays, search expansion) can use it directly as a
// predicate.
func (g *Grid) InBounds(c gridcoord.Cell) bool {
	return g.inBounds(c)
}

// NodeAt returns the Kalman belief node at c.
func (g *Grid) NodeAt(c gridcoord.Cell) (kalman.Node, error) {
	if !g.inBounds(c) {
		return kalman.Node{}, ErrOutOfBounds
	}
	return g.nodes.Get(c.X, c.Y), nil
}

// PokeNode overwrites the belief node at c directly, bypassing the Kalman
// update and ground-truth write that SetValue performs. Intended for tests
// and visualization snapshots that need to seed or inspect raw node state.
func (g *Grid) PokeNode(c gridcoord.Cell, n kalman.Node) error {
	if !g.inBounds(c) {
		return ErrOutOfBounds
	}
	g.nodes.SetUnchecked(c.X, c.Y, n)
	return nil
}

// StateAt returns the belief state (occupancy probability) at c, or 0 if out
// of bounds.
func (g *Grid) StateAt(c gridcoord.Cell) float32 {
	if !g.inBounds(c) {
		return 0
	}
	return g.nodes.Get(c.X, c.Y).State
}

// SetValue writes both the belief state (to 0 or 1) and the ground truth at
// c. This is the construction-time override used when parsing a map
// string: the caller is assumed to be setting ground truth, not merely
// recording an observation.
func (g *Grid) SetValue(c gridcoord.Cell, value bool) error {
	if !g.inBounds(c) {
		return ErrOutOfBounds
	}
	n := g.nodes.Get(c.X, c.Y)
	if value {
		n.State = 1.0
	} else {
		n.State = 0.0
	}
	g.nodes.SetUnchecked(c.X, c.Y, n)
	return g.Ground.Set(c, value)
}

// GetValue reports whether c is in bounds and its belief state exceeds
// NearestThreshold. Note this reads the belief, not the ground truth: a
// rollout's scratch grids are compared against the agent's estimate, never
// against the hidden map directly.
func (g *Grid) GetValue(c gridcoord.Cell) bool {
	return g.inBounds(c) && g.nodes.Get(c.X, c.Y).State > NearestThreshold
}

// Blur convolves the belief state field with kernel using clamp-to-edge
// (Nearest) boundary resolution, then resets every node's covariance to 1.0
// — the blur treats every cell as if freshly, uniformly uncertain again.
func (g *Grid) Blur(kernel matrixutil.Matrix[float32]) {
	state, _ := matrixutil.New[float32](g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			state.SetUnchecked(x, y, g.nodes.Get(x, y).State)
		}
	}
	blurred := matrixutil.Convolve2D(state, kernel, matrixutil.ConvNearest, 0)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.nodes.SetUnchecked(x, y, kalman.Node{State: blurred.Get(x, y), Covariance: kalman.DefaultCovariance})
		}
	}
}

// UpdateNode folds a single measurement into the belief node at c: the
// measurement is the ground truth's value at c (1 = passable, 0 = blocked),
// weighted by measurementCovariance (0 = perfectly trusted).
func (g *Grid) UpdateNode(c gridcoord.Cell, measurementCovariance float32) {
	truth, err := g.Ground.Get(c)
	if err != nil {
		return
	}
	var measurement float32
	if truth {
		measurement = 1
	}
	n := g.nodes.Get(c.X, c.Y)
	n.Update(measurement, measurementCovariance)
	g.nodes.SetUnchecked(c.X, c.Y, n)
}

// sampleCached realizes the belief node at c into a Bernoulli(state) draw,
// writing the outcome into scratch, and returns the outcome.
func (g *Grid) sampleCached(scratch *bgrid.Grid, rng *rand.Rand, c gridcoord.Cell) bool {
	state := g.StateAt(c)
	value := state != 0 && rng.Float32() < state
	_ = scratch.Set(c, value)
	return value
}

// SampleCached is the exported single-cell sampling primitive, for callers
// that manage their own RNG stream.
func (g *Grid) SampleCached(scratch *bgrid.Grid, rng *rand.Rand, c gridcoord.Cell) bool {
	return g.sampleCached(scratch, rng, c)
}

// Sample realizes a single cell with a fresh, seed-derived RNG.
func (g *Grid) Sample(scratch *bgrid.Grid, c gridcoord.Cell) bool {
	return g.sampleCached(scratch, rngutil.FromSeed(0), c)
}

// SampleArea realizes every cell of the width x height rectangle whose
// top-left corner is origin, sharing one RNG stream across the area.
func (g *Grid) SampleArea(scratch *bgrid.Grid, origin gridcoord.Cell, width, height int, rng *rand.Rand) {
	for x := origin.X; x < origin.X+width; x++ {
		for y := origin.Y; y < origin.Y+height; y++ {
			g.sampleCached(scratch, rng, gridcoord.Cell{X: x, Y: y})
		}
	}
}

// SampleAll realizes every cell in the grid.
func (g *Grid) SampleAll(scratch *bgrid.Grid, rng *rand.Rand) {
	g.SampleArea(scratch, gridcoord.Cell{}, g.Width, g.Height, rng)
}

// SampleBasedOnGrid realizes every cell already marked true in sampledBefore
// onto scratch, with fresh draws from rng: the set of realized cells is
// carried over, the earlier outcomes are not.
func (g *Grid) SampleBasedOnGrid(scratch, sampledBefore *bgrid.Grid, rng *rand.Rand) {
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			c := gridcoord.Cell{X: x, Y: y}
			if v, _ := sampledBefore.Get(c); v {
				g.sampleCached(scratch, rng, c)
			}
		}
	}
}

// Adjacent returns the neighbors of c (4- or 8-connectivity per diagonal)
// that are both in bounds and believed passable (GetValue).
func (g *Grid) Adjacent(c gridcoord.Cell, diagonal bool) []gridcoord.Cell {
	var candidates []gridcoord.Cell
	if diagonal {
		n := gridcoord.Neighbors8(c)
		candidates = n[:]
	} else {
		n := gridcoord.Neighbors4(c)
		candidates = n[:]
	}
	out := make([]gridcoord.Cell, 0, len(candidates))
	for _, n := range candidates {
		if g.GetValue(n) {
			out = append(out, n)
		}
	}
	return out
}

// SampleAdjacent lazily realizes the (non-diagonal) neighbors of c: a
// neighbor not yet present in sampledBefore is sampled now and marked
// realized; a neighbor already realized is read back from scratch instead
// of re-sampled. Only neighbors that come out passable are returned, each
// with weight 1.
func (g *Grid) SampleAdjacent(scratch, sampledBefore *bgrid.Grid, rng *rand.Rand, c gridcoord.Cell) []AdjacentSample {
	neighbors := gridcoord.Neighbors4(c)
	out := make([]AdjacentSample, 0, len(neighbors))
	for _, n := range neighbors {
		var passable bool
		if already, err := sampledBefore.Get(n); err == nil && already {
			passable, _ = scratch.Get(n)
		} else if g.inBounds(n) {
			_ = sampledBefore.Set(n, true)
			passable = g.sampleCached(scratch, rng, n)
		} else {
			continue
		}
		if passable {
			out = append(out, AdjacentSample{Cell: n, Weight: 1})
		}
	}
	return out
}
