// Package core - R-tree spatial index over node coordinates.
//
// The index answers "which graph node is nearest to this raw coordinate"
// for callers whose start/end positions do not come as node IDs (GPS
// fixes, clicked map positions). It is a read-side helper: build it once
// after ingestion, query it freely.
package core

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// pointExtent is the side length of the degenerate rectangle used to
// store a node coordinate in the R-tree; rtreego requires positive extents.
const pointExtent = 1e-9

// rtree fan-out bounds, 2-dimensional planar data.
const (
	rtreeMinBranch = 25
	rtreeMaxBranch = 50
)

// nodeEntry wraps one node for R-tree storage.
type nodeEntry struct {
	id   NodeID
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect { return e.rect }

// SpatialIndex answers nearest-node and region queries over a graph's
// node coordinates.
type SpatialIndex struct {
	tree *rtreego.Rtree
}

// NewSpatialIndex indexes every node of g.
// Returns ErrNilGraph for a nil graph.
//
// Complexity: O(V log V) construction.
func NewSpatialIndex(g *Graph) (*SpatialIndex, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	tree := rtreego.NewTree(2, rtreeMinBranch, rtreeMaxBranch)
	for n := NodeID(0); int(n) < g.NodeCount(); n++ {
		pt := g.points[n]
		rect, err := rtreego.NewRect(
			rtreego.Point{pt.X(), pt.Y()},
			[]float64{pointExtent, pointExtent},
		)
		if err != nil {
			// Only reachable with non-finite coordinates; skip the node.
			continue
		}
		tree.Insert(&nodeEntry{id: n, rect: rect})
	}

	return &SpatialIndex{tree: tree}, nil
}

// Nearest returns the node whose coordinate is closest to pt.
// The second return is false when the index is empty.
//
// Complexity: O(log V) expected.
func (si *SpatialIndex) Nearest(pt orb.Point) (NodeID, bool) {
	hit := si.tree.NearestNeighbor(rtreego.Point{pt.X(), pt.Y()})
	if hit == nil {
		return InvalidNode, false
	}

	return hit.(*nodeEntry).id, true
}

// Within returns all nodes whose coordinates fall inside the axis-aligned
// rectangle spanned by min and max. Order is unspecified.
//
// Complexity: O(log V + k) for k hits.
func (si *SpatialIndex) Within(min, max orb.Point) []NodeID {
	rect, err := rtreego.NewRect(
		rtreego.Point{min.X(), min.Y()},
		[]float64{max.X() - min.X() + pointExtent, max.Y() - min.Y() + pointExtent},
	)
	if err != nil {
		return nil
	}

	hits := si.tree.SearchIntersect(rect)
	out := make([]NodeID, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*nodeEntry).id)
	}

	return out
}
