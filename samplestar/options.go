package samplestar

import (
	"github.com/samplestar-go/samplestar/gridcoord"
	"github.com/samplestar-go/samplestar/matrixutil"
	"github.com/samplestar-go/samplestar/stats"
)

// Options configures NewLoop. Start, Goal, Epoch, and Kernel have no
// sensible default and are validated as required; Bag and Seed fall back
// to a no-hook bag and the deterministic default seed respectively.
//
// Start – the agent's initial cell.
// Goal  – the cell the loop tries to reach.
// Epoch – rollouts sampled per step. Must be > 0.
// Kernel – the raycast/update covariance kernel. Must have odd width and height.
// Bag   – optional statistics accumulator; defaults to stats.NewBag(nil, nil).
// Seed  – RNG seed driving every rollout; 0 selects rngutil.DefaultSeed.
type Options struct {
	Start  gridcoord.Cell
	Goal   gridcoord.Cell
	Epoch  int
	Kernel matrixutil.Matrix[float32]
	Bag    *stats.Bag
	Seed   int64
}

// Option is a functional option for NewLoop.
type Option func(*Options)

// Start sets the agent's initial cell.
func Start(c gridcoord.Cell) Option {
	return func(o *Options) { o.Start = c }
}

// Goal sets the cell the loop tries to reach.
func Goal(c gridcoord.Cell) Option {
	return func(o *Options) { o.Goal = c }
}

// Epoch sets the number of rollouts sampled per step.
func Epoch(n int) Option {
	return func(o *Options) { o.Epoch = n }
}

// Kernel sets the raycast/update covariance kernel.
func Kernel(k matrixutil.Matrix[float32]) Option {
	return func(o *Options) { o.Kernel = k }
}

// Bag attaches a statistics bag the loop updates every step.
func Bag(b *stats.Bag) Option {
	return func(o *Options) { o.Bag = b }
}

// Seed sets the deterministic RNG seed driving every rollout.
func Seed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
