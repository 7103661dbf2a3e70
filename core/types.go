// Package core defines the geometric weighted digraph consumed by every
// acopath solver: interned node identifiers, planar coordinates, and
// strictly positive arc weights.
//
// This file declares NodeID, Arc, the sentinel errors, and the small
// constants shared by the package.
//
// Errors:
//
//	ErrEmptyNodeID       - node ID is the empty string.
//	ErrDuplicateNode     - node ID was already interned.
//	ErrNodeNotFound      - referenced node does not exist.
//	ErrSelfLoop          - arc endpoints are the same node.
//	ErrNonPositiveWeight - arc weight is zero or negative.
//	ErrDuplicateArc      - identical directed arc already present.
//	ErrEmptyPath         - path has fewer than one node.
//	ErrBrokenPath        - consecutive path nodes are not connected.
package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrNilGraph indicates a nil *Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyNodeID indicates that the provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that a node with the same ID was already added.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates an arc whose endpoints coincide.
	// Self-referencing arcs are invalid by contract and must be rejected
	// at ingestion; downstream solvers rely on their absence.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNonPositiveWeight indicates an arc weight ≤ 0. All solver math
	// (cost accumulation, deposit division) assumes strictly positive weights.
	ErrNonPositiveWeight = errors.New("core: arc weight must be positive")

	// ErrDuplicateArc indicates the same directed arc was added twice.
	ErrDuplicateArc = errors.New("core: duplicate arc")

	// ErrNegativeEstimate indicates a negative heuristic distance.
	ErrNegativeEstimate = errors.New("core: heuristic estimate must be non-negative")

	// ErrEmptyPath indicates a path with no nodes.
	ErrEmptyPath = errors.New("core: path is empty")

	// ErrBrokenPath indicates two consecutive path nodes without an arc.
	ErrBrokenPath = errors.New("core: path traverses a missing arc")
)

// NodeID is an interned node index, assigned densely in insertion order.
// Interning keeps hot-path lookups (adjacency, visited sets, pheromone
// keys) on small integers instead of variable-length strings.
type NodeID int32

// InvalidNode is the NodeID returned when a lookup fails.
const InvalidNode NodeID = -1

// Arc is a directed weighted connection to a neighbour node.
// Weight is guaranteed strictly positive by Graph.AddArc.
type Arc struct {
	// To is the interned index of the arc's head.
	To NodeID

	// Weight is the traversal cost of the arc; always > 0.
	Weight float64
}
