// Package core - Graph construction and read API.
//
// Graph is an append-only structure: nodes and arcs may be added, never
// removed. Once handed to a solver it must be treated as read-only; the
// zero-synchronization read API below relies on that protocol.
package core

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Graph is a weighted directed graph over interned nodes with planar
// coordinates. The zero value is not usable; call NewGraph.
//
// Invariants maintained by the mutator methods:
//   - node IDs are unique and non-empty,
//   - every arc weight is strictly positive,
//   - no self-loops and no duplicate directed arcs.
type Graph struct {
	ids    []string          // ids[n] is the raw string ID of node n
	index  map[string]NodeID // raw ID → interned index
	points []orb.Point       // points[n] is the planar coordinate of node n
	adj    [][]Arc           // adj[n] are outgoing arcs of node n
	arcs   int               // total number of directed arcs
}

// NewGraph returns an empty graph ready for node and arc insertion.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]NodeID),
	}
}

// AddNode interns id at coordinate pt and returns its NodeID.
// Returns ErrEmptyNodeID for an empty ID and ErrDuplicateNode when the
// ID was already interned.
//
// Complexity: amortized O(1).
func (g *Graph) AddNode(id string, pt orb.Point) (NodeID, error) {
	if id == "" {
		return InvalidNode, ErrEmptyNodeID
	}
	if _, ok := g.index[id]; ok {
		return InvalidNode, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}

	n := NodeID(len(g.ids))
	g.ids = append(g.ids, id)
	g.points = append(g.points, pt)
	g.adj = append(g.adj, nil)
	g.index[id] = n

	return n, nil
}

// AddArc inserts the directed arc from→to with the given weight.
// Returns ErrNodeNotFound for out-of-range endpoints, ErrSelfLoop when
// from == to, ErrNonPositiveWeight for weight ≤ 0, and ErrDuplicateArc
// when the identical directed arc already exists.
//
// Complexity: O(deg(from)) for the duplicate check.
func (g *Graph) AddArc(from, to NodeID, weight float64) error {
	if !g.has(from) || !g.has(to) {
		return fmt.Errorf("%w: arc %d→%d", ErrNodeNotFound, from, to)
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfLoop, g.ids[from])
	}
	if weight <= 0 {
		return fmt.Errorf("%w: arc %s→%s weight=%g",
			ErrNonPositiveWeight, g.ids[from], g.ids[to], weight)
	}
	for _, a := range g.adj[from] {
		if a.To == to {
			return fmt.Errorf("%w: %s→%s", ErrDuplicateArc, g.ids[from], g.ids[to])
		}
	}

	g.adj[from] = append(g.adj[from], Arc{To: to, Weight: weight})
	g.arcs++

	return nil
}

// Resolve maps a raw string ID back to its interned index.
// The second return is false when the ID is unknown.
func (g *Graph) Resolve(id string) (NodeID, bool) {
	n, ok := g.index[id]
	if !ok {
		return InvalidNode, false
	}

	return n, true
}

// IDOf returns the raw string ID of n, or "" for an out-of-range index.
func (g *Graph) IDOf(n NodeID) string {
	if !g.has(n) {
		return ""
	}

	return g.ids[n]
}

// Point returns the planar coordinate of n. Out-of-range indices yield
// the zero point; callers validating input should use HasNode first.
func (g *Graph) Point(n NodeID) orb.Point {
	if !g.has(n) {
		return orb.Point{}
	}

	return g.points[n]
}

// HasNode reports whether n is a valid interned index of this graph.
func (g *Graph) HasNode(n NodeID) bool { return g.has(n) }

// Neighbors returns the outgoing arcs of n. The returned slice is owned
// by the graph and must not be mutated.
//
// Complexity: O(1).
func (g *Graph) Neighbors(n NodeID) []Arc {
	if !g.has(n) {
		return nil
	}

	return g.adj[n]
}

// Weight looks up the weight of the directed arc u→v.
// The second return is false when the arc does not exist.
//
// Complexity: O(deg(u)).
func (g *Graph) Weight(u, v NodeID) (float64, bool) {
	if !g.has(u) {
		return 0, false
	}
	for _, a := range g.adj[u] {
		if a.To == v {
			return a.Weight, true
		}
	}

	return 0, false
}

// NodeCount returns the number of interned nodes.
func (g *Graph) NodeCount() int { return len(g.ids) }

// ArcCount returns the number of directed arcs.
func (g *Graph) ArcCount() int { return g.arcs }

// PathCost recomputes the total weight of the arcs traversed by path.
// It is the independent consistency check for solver-reported costs:
// a solver cost must equal PathCost of the same sequence.
//
// Returns ErrEmptyPath for an empty sequence, ErrNodeNotFound for an
// out-of-range node, and ErrBrokenPath when two consecutive nodes are
// not connected by an arc. A single-node path has cost 0.
//
// Complexity: O(Σ deg) over the path.
func (g *Graph) PathCost(path []NodeID) (float64, error) {
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}

	var total float64
	for i := 0; i < len(path); i++ {
		if !g.has(path[i]) {
			return 0, fmt.Errorf("%w: path[%d]=%d", ErrNodeNotFound, i, path[i])
		}
		if i == 0 {
			continue
		}
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %s→%s",
				ErrBrokenPath, g.ids[path[i-1]], g.ids[path[i]])
		}
		total += w
	}

	return total, nil
}

// has reports whether n indexes an interned node.
func (g *Graph) has(n NodeID) bool {
	return n >= 0 && int(n) < len(g.ids)
}
