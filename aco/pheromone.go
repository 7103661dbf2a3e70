// Package aco - the shared pheromone field.
//
// The Field is the single piece of state ants communicate through. Its
// mutation protocol is strict: ants only read (Level) during path
// construction; Deposit and Evaporate run serialized between iterations
// and are owned by the colony.
package aco

import (
	"github.com/katalvlaran/acopath/core"
)

// arcKey identifies a directed arc in the field.
type arcKey struct {
	from core.NodeID
	to   core.NodeID
}

// Field maps every directed arc of a graph to a positive pheromone
// intensity. Invariant: no intensity ever falls below the floor, so
// every arc keeps a non-zero selection probability for the whole run.
type Field struct {
	level map[arcKey]float64

	depositConstant float64
	floor           float64
	longPathLength  int
	longPathShrink  float64
}

// NewField initializes a field over every arc of g at the uniform
// initial intensity from opts. Returns ErrNilGraph for a nil graph and
// ErrOptionViolation for inconsistent pheromone tunables.
//
// Complexity: O(E) time and space.
func NewField(g *core.Graph, opts Options) (*Field, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	f := &Field{
		level:           make(map[arcKey]float64, g.ArcCount()),
		depositConstant: opts.DepositConstant,
		floor:           opts.PheromoneFloor,
		longPathLength:  opts.LongPathLength,
		longPathShrink:  opts.LongPathShrink,
	}
	for n := core.NodeID(0); int(n) < g.NodeCount(); n++ {
		for _, arc := range g.Neighbors(n) {
			f.level[arcKey{from: n, to: arc.To}] = opts.InitialPheromone
		}
	}

	return f, nil
}

// Level returns the intensity of the directed arc u→v. Arcs outside the
// initialized field report the floor, never zero.
//
// Complexity: O(1).
func (f *Field) Level(u, v core.NodeID) float64 {
	if lvl, ok := f.level[arcKey{from: u, to: v}]; ok {
		return lvl
	}

	return f.floor
}

// Evaporate multiplies every intensity by (1 - rate), clamping at the
// floor. rate 0 is a no-op; rate 1 drives the whole field to the floor.
// Applied uniformly once per iteration, not per ant.
//
// Complexity: O(E).
func (f *Field) Evaporate(rate float64) {
	if rate == 0 {
		return
	}
	keep := 1 - rate
	for k, lvl := range f.level {
		lvl *= keep
		if lvl < f.floor {
			lvl = f.floor
		}
		f.level[k] = lvl
	}
}

// Deposit reinforces every consecutive arc of path by amount/cost, where
// the amount is the deposit constant shrunk for abnormally long paths so
// meandering routes cannot out-reinforce short ones. Deposit never
// lowers an intensity; concurrent successful paths within an iteration
// accumulate additively through sequential calls.
//
// Degenerate inputs (paths shorter than one arc, non-positive cost) are
// silently ignored: edge weights are invariant-positive, so a real path
// of length ≥ 1 always has cost > 0.
//
// Complexity: O(len(path)).
func (f *Field) Deposit(path []core.NodeID, cost float64) {
	if len(path) < 2 || cost <= 0 {
		return
	}

	amount := f.depositConstant / cost
	if len(path) > f.longPathLength {
		amount *= f.longPathShrink
	}

	for i := 1; i < len(path); i++ {
		k := arcKey{from: path[i-1], to: path[i]}
		f.level[k] += amount
	}
}

// Arcs returns the number of directed arcs tracked by the field.
func (f *Field) Arcs() int { return len(f.level) }
