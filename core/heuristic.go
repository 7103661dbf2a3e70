// Package core - goal-distance heuristics.
//
// A Heuristic estimates the remaining distance from a node to the goal.
// It is a pure bias signal: solvers never require it to be accurate or
// even present. Unknown pairs report +Inf, which downstream scoring
// treats as "no bias", never as an error.
package core

import (
	"math"

	"github.com/paulmach/orb/planar"
)

// Heuristic estimates remaining distance toward a goal node.
//
// Contract:
//   - Estimate must be side-effect free and safe for concurrent readers.
//   - Unknown or out-of-range pairs return math.Inf(1); no errors.
//   - Returned values are non-negative.
type Heuristic interface {
	Estimate(from, goal NodeID) float64
}

// EuclideanHeuristic biases search by the straight-line planar distance
// between node coordinates. For road-network-like graphs this is the
// natural admissible goal signal.
type EuclideanHeuristic struct {
	g *Graph
}

// NewEuclideanHeuristic builds a coordinate-based heuristic over g.
// Returns ErrNilGraph for a nil graph. Invalid IDs at Estimate time
// yield +Inf rather than an error.
func NewEuclideanHeuristic(g *Graph) (*EuclideanHeuristic, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &EuclideanHeuristic{g: g}, nil
}

// Estimate returns the planar distance between from and goal,
// or +Inf when either index is out of range.
//
// Complexity: O(1).
func (h *EuclideanHeuristic) Estimate(from, goal NodeID) float64 {
	if !h.g.has(from) || !h.g.has(goal) {
		return math.Inf(1)
	}

	return planar.Distance(h.g.points[from], h.g.points[goal])
}

// TableHeuristic is an explicit (from, goal) → distance lookup, for
// callers that precompute or import goal distances. Absent entries are
// +Inf by contract.
type TableHeuristic struct {
	est map[[2]NodeID]float64
}

// NewTableHeuristic returns an empty lookup table.
func NewTableHeuristic() *TableHeuristic {
	return &TableHeuristic{est: make(map[[2]NodeID]float64)}
}

// Set records the estimated distance from → goal.
// Zero is a legal estimate (from == goal); negative values are rejected
// with ErrNegativeEstimate.
func (t *TableHeuristic) Set(from, goal NodeID, d float64) error {
	if d < 0 {
		return ErrNegativeEstimate
	}
	t.est[[2]NodeID{from, goal}] = d

	return nil
}

// Estimate returns the recorded distance, or +Inf when absent.
//
// Complexity: O(1).
func (t *TableHeuristic) Estimate(from, goal NodeID) float64 {
	if d, ok := t.est[[2]NodeID{from, goal}]; ok {
		return d
	}

	return math.Inf(1)
}
