// Package reach provides a breadth-first reachability pre-check over a
// core.Graph, used to short-circuit optimizer runs that can never
// succeed. The colony does not depend on it for correctness — only for
// aborting early instead of burning the whole iteration budget.
package reach

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/acopath/core"
)

// Sentinel errors for reachability checks.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("reach: graph is nil")

	// ErrNodeNotFound is returned when start or end is not in the graph.
	ErrNodeNotFound = errors.New("reach: node not found")

	// ErrUnreachableTarget is the preflight abort signal: end cannot be
	// reached from start by any sequence of arcs.
	ErrUnreachableTarget = errors.New("reach: target unreachable from start")
)

// Options holds reachability tunables.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued node.
	Ctx context.Context
}

// Option configures a reachability check via functional arguments.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// defaultOptions returns the baseline configuration.
func defaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// Reachable reports whether end can be reached from start following
// directed arcs. Visits each node at most once.
//
// Complexity: O(V + E) time, O(V) space.
func Reachable(g *core.Graph, start, end core.NodeID, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(start) || !g.HasNode(end) {
		return false, fmt.Errorf("%w: start=%d end=%d", ErrNodeNotFound, start, end)
	}
	if start == end {
		return true, nil
	}

	visited := make([]bool, g.NodeCount())
	queue := make([]core.NodeID, 0, g.NodeCount())
	visited[start] = true
	queue = append(queue, start)

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return false, o.Ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]
		for _, arc := range g.Neighbors(cur) {
			if visited[arc.To] {
				continue
			}
			if arc.To == end {
				return true, nil
			}
			visited[arc.To] = true
			queue = append(queue, arc.To)
		}
	}

	return false, nil
}

// Ensure is the preflight guard: it returns nil when end is reachable
// from start and ErrUnreachableTarget (with node IDs attached) when it
// is not. Validation errors pass through unchanged.
func Ensure(g *core.Graph, start, end core.NodeID, opts ...Option) error {
	ok, err := Reachable(g, start, end, opts...)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s → %s",
			ErrUnreachableTarget, g.IDOf(start), g.IDOf(end))
	}

	return nil
}
