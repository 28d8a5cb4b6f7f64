package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samplestar-go/samplestar/belief"
	"github.com/samplestar-go/samplestar/gridcoord"
	"github.com/samplestar-go/samplestar/mapio"
	"github.com/samplestar-go/samplestar/matrixutil"
	"github.com/samplestar-go/samplestar/samplestar"
	"github.com/samplestar-go/samplestar/stats"
	"github.com/samplestar-go/samplestar/visualize"
)

// runOptions carries the flags a single invocation of `samplestar run`
// resolves to, independent of how they were sourced (problems.yaml entry
// vs. command-line overrides).
type runOptions struct {
	problem  Problem
	seed     int64
	vizOut   io.Writer
	logger   func(format string, args ...any)
}

// buildBelief opens the problem's map and pins its start/goal cells to a
// certain prior before blurring, per the driver contract in spec.md §6:
// "forces belief[start].state = 1.0 and belief[goal].state = 1.0 (so the
// endpoints are always passable), Gaussian-blurs the state field".
func buildBelief(p Problem) (*mapioResult, error) {
	text, err := os.ReadFile(p.MapPath)
	if err != nil {
		return nil, fmt.Errorf("cmd/samplestar: reading map %s: %w", p.MapPath, err)
	}
	grid, err := mapio.Load(string(text))
	if err != nil {
		return nil, fmt.Errorf("cmd/samplestar: parsing map %s: %w", p.MapPath, err)
	}

	start := gridcoord.Cell{X: p.StartX, Y: p.StartY}
	goal := gridcoord.Cell{X: p.GoalX, Y: p.GoalY}
	for _, c := range []gridcoord.Cell{start, goal} {
		node, err := grid.NodeAt(c)
		if err != nil {
			return nil, fmt.Errorf("cmd/samplestar: endpoint %v: %w", c, err)
		}
		node.State = 1.0
		if err := grid.PokeNode(c, node); err != nil {
			return nil, err
		}
	}

	kernel := matrixutil.GaussianKernel(p.Kernel, float32(p.Sigma))
	grid.Blur(kernel)

	return &mapioResult{grid: grid, start: start, goal: goal}, nil
}

type mapioResult struct {
	grid  *belief.Grid
	start gridcoord.Cell
	goal  gridcoord.Cell
}

// RunProblem drives the Sample-Star loop for one fully-resolved problem,
// optionally streaming per-step JSON to opts.vizOut, and returns the final
// committed path.
func RunProblem(ctx context.Context, opts runOptions) ([]gridcoord.Cell, error) {
	p := opts.problem.applyDefaults()

	built, err := buildBelief(p)
	if err != nil {
		return nil, err
	}

	updateKernel := matrixutil.GaussianKernel(p.UpdateKernel, float32(p.UpdateSigma))
	bag := stats.NewBag(nil, nil)
	loop, err := samplestar.NewLoop(built.grid,
		samplestar.Start(built.start),
		samplestar.Goal(built.goal),
		samplestar.Epoch(p.Epoch),
		samplestar.Kernel(updateKernel),
		samplestar.Bag(bag),
		samplestar.Seed(opts.seed),
	)
	if err != nil {
		return nil, err
	}

	var sink *visualize.Sink
	if opts.vizOut != nil {
		sink = visualize.NewSink(opts.vizOut)
	}

	for step := 0; step < p.MaxSteps; step++ {
		current := loop.Current
		done, err := loop.Step(ctx)
		if err != nil {
			return nil, fmt.Errorf("cmd/samplestar: step %d: %w", step, err)
		}
		if sink != nil {
			if err := sink.WriteStep(visualize.StepRecord{
				Step:    int64(step),
				Belief:  visualize.BeliefMatrix(loop.Belief),
				Current: current,
				Next:    loop.Current,
				Stats:   bag.Render(),
			}); err != nil {
				return nil, err
			}
		}
		if opts.logger != nil {
			opts.logger("step %d: current=%v stats=%v", step, loop.Current, bag.Render())
		}
		if done {
			break
		}
	}

	if sink != nil {
		if err := sink.WriteFinal(loop.FinalPath); err != nil {
			return nil, err
		}
	}

	return loop.FinalPath, nil
}
