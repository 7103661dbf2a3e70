// Package aco - the colony optimizer loop.
//
// The Colony owns the pheromone field exclusively. Each iteration has a
// read phase (ants construct paths against an immutable field snapshot)
// and a write phase (deposits for successful ants, then one evaporation
// pass), separated by a join barrier. Cancellation is honored at
// iteration boundaries only; the per-ant step ceiling bounds the latency
// of one iteration.
package aco

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/acopath/core"
)

// Colony drives the iteration loop over a graph and heuristic.
// Construct with New; a Colony is reusable for multiple Run calls, with
// pheromone state carrying over between them.
type Colony struct {
	g     *core.Graph
	h     core.Heuristic
	opts  Options
	field *Field
}

// outcome is one ant's completed attempt, collected at the join barrier.
type outcome struct {
	path []core.NodeID
	cost float64
	ok   bool
}

// New validates the inputs and builds a colony with an initialized
// pheromone field.
//
// Errors: ErrNilGraph, ErrNilHeuristic, ErrOptionViolation.
func New(g *core.Graph, h core.Heuristic, opts ...Option) (*Colony, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	field, err := NewField(g, o)
	if err != nil {
		return nil, err
	}

	return &Colony{g: g, h: h, opts: o, field: field}, nil
}

// Options returns the colony's effective configuration.
func (c *Colony) Options() Options { return c.opts }

// Field exposes the pheromone field for inspection. Mutating it outside
// the colony's write phase voids the determinism guarantees.
func (c *Colony) Field() *Field { return c.field }

// Run searches for a low-cost path from start to end.
//
// The returned Result is best-effort: Found=false with Cost=+Inf after
// an exhausted budget is a normal outcome, not an error. Errors are
// limited to input validation and context cancellation; a cancelled run
// returns the best result found so far together with ctx.Err().
//
// Per iteration:
//  1. release AntCount fresh ants (bounded-parallel when Workers > 1);
//  2. join, then deposit for every success under the sanity ceiling and
//     update the global best (strict improvement; ties keep the earlier
//     find);
//  3. evaporate the whole field once;
//  4. stop early when the best path is shorter than EarlyExitLength.
func (c *Colony) Run(ctx context.Context, start, end core.NodeID) (Result, error) {
	best := Result{Cost: math.Inf(1)}

	if !c.g.HasNode(start) || !c.g.HasNode(end) {
		return best, fmt.Errorf("%w: start=%d end=%d", ErrNodeNotFound, start, end)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	for it := 0; it < c.opts.Iterations; it++ {
		select {
		case <-ctx.Done():
			return best, ctx.Err()
		default:
		}

		outcomes := c.runAnts(ctx, it, start, end)

		// Write phase: deposits first, in ant order, then one
		// evaporation pass over the entire field.
		for _, o := range outcomes {
			if !o.ok || len(o.path) >= c.opts.PathCeiling {
				continue
			}
			c.field.Deposit(o.path, o.cost)
			if o.cost < best.Cost {
				best.Path = o.path
				best.Cost = o.cost
				best.Found = true
			}
		}
		c.field.Evaporate(c.opts.EvaporationRate)

		best.Iterations = it + 1
		if best.Found && c.opts.EarlyExitLength > 0 && len(best.Path) < c.opts.EarlyExitLength {
			break
		}
	}

	return best, nil
}

// runAnts executes one read phase: AntCount independent constructions
// against the current field. Each ant owns a derived RNG substream, so
// the set of outcomes is identical whether Workers is 1 or 100.
func (c *Colony) runAnts(ctx context.Context, iteration int, start, end core.NodeID) []outcome {
	outcomes := make([]outcome, c.opts.AntCount)

	runOne := func(i int) {
		a := newAnt(c.g, c.h, c.field, &c.opts, antRNG(c.opts.Seed, iteration, i, c.opts.AntCount))
		ok := a.construct(start, end)
		outcomes[i] = outcome{path: a.path, cost: a.cost, ok: ok}
	}

	if c.opts.Workers <= 1 {
		for i := 0; i < c.opts.AntCount; i++ {
			runOne(i)
		}

		return outcomes
	}

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(c.opts.Workers)
	for i := 0; i < c.opts.AntCount; i++ {
		i := i
		eg.Go(func() error {
			runOne(i)

			return nil
		})
	}
	// Workers never return errors; Wait is the join barrier before the
	// write phase may touch the field.
	_ = eg.Wait()

	return outcomes
}
