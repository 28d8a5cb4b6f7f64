package stats

import (
	"fmt"

	"github.com/samplestar-go/samplestar/belief"
	"github.com/samplestar-go/samplestar/gridcoord"
	"github.com/samplestar-go/samplestar/pathstore"
)

// Fixed accumulator indices every Bag carries regardless of hooks.
const (
	IdxPaths  = 0
	IdxExp    = 1
	IdxAvgLen = 2
	fixedLen  = 3
)

// PathHook scores a single node of a completed rollout path against the
// belief grid; RunPathStats folds the per-path average into the bag.
type PathHook func(g *belief.Grid, node gridcoord.Cell) float32

// StepHook scores the step's chosen path store against its candidate
// neighbors, once per step rather than once per rollout.
type StepHook func(store pathstore.Store, adjacent []gridcoord.Cell) float32

// NamedPathHook pairs a PathHook with the display name of its accumulator.
type NamedPathHook struct {
	Name string
	Hook PathHook
}

// NamedStepHook pairs a StepHook with the display name of its accumulator.
type NamedStepHook struct {
	Name string
	Hook StepHook
}

// Bag is a flat slice of named float32 accumulators: the three built-ins
// followed by one slot per configured path hook, then one per step hook.
type Bag struct {
	names     []string
	values    []float32
	pathHooks []PathHook
	stepHooks []StepHook
}

// NewBag builds a Bag with the built-in Paths/Exp/AVG Len accumulators plus
// one accumulator per supplied hook, in order.
func NewBag(pathHooks []NamedPathHook, stepHooks []NamedStepHook) *Bag {
	names := []string{"Paths", "Exp", "AVG Len"}
	hooks := make([]PathHook, len(pathHooks))
	for i, h := range pathHooks {
		names = append(names, h.Name)
		hooks[i] = h.Hook
	}
	stepFns := make([]StepHook, len(stepHooks))
	for i, h := range stepHooks {
		names = append(names, h.Name)
		stepFns[i] = h.Hook
	}
	return &Bag{
		names:     names,
		values:    make([]float32, len(names)),
		pathHooks: hooks,
		stepHooks: stepFns,
	}
}

// Add adds val to the accumulator at index (use IdxPaths/IdxExp/IdxAvgLen
// for the built-ins).
func (b *Bag) Add(index int, val float32) {
	b.values[index] += val
}

// Get reads the current value of the accumulator at index.
func (b *Bag) Get(index int) float32 {
	return b.values[index]
}

// RunPathStats folds, for each configured path hook, the average of
// hook(g, node) over every node of path into that hook's accumulator.
func (b *Bag) RunPathStats(g *belief.Grid, path []gridcoord.Cell) {
	if len(path) == 0 {
		return
	}
	n := float32(len(path))
	for i, hook := range b.pathHooks {
		for _, node := range path {
			b.values[fixedLen+i] += hook(g, node) / n
		}
	}
}

// CollatePathStats divides every accumulator from Exp through the last path
// hook (but not Paths itself) by epochs, turning a per-rollout sum into a
// per-rollout average. A non-positive epochs leaves sums untouched rather
// than dividing by zero.
func (b *Bag) CollatePathStats(epochs int) {
	if epochs <= 0 {
		return
	}
	end := fixedLen + len(b.pathHooks)
	for i := IdxExp; i < end; i++ {
		b.values[i] /= float32(epochs)
	}
}

// RunStepStats folds each configured step hook's value, evaluated once
// against the step's chosen path store and its neighbor candidates, into
// that hook's accumulator.
func (b *Bag) RunStepStats(store pathstore.Store, adjacent []gridcoord.Cell) {
	base := fixedLen + len(b.pathHooks)
	for i, hook := range b.stepHooks {
		b.values[base+i] += hook(store, adjacent)
	}
}

// Clear zeroes every accumulator, leaving names and hooks intact.
func (b *Bag) Clear() {
	for i := range b.values {
		b.values[i] = 0
	}
}

// Render formats every accumulator as "name: value" with two decimal
// places, in declaration order.
func (b *Bag) Render() []string {
	out := make([]string, len(b.names))
	for i, name := range b.names {
		out[i] = fmt.Sprintf("%s: %.2f", name, b.values[i])
	}
	return out
}
