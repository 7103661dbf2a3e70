// Package exact computes provably shortest paths with Dijkstra's
// algorithm. The stochastic colony never guarantees optimality; this
// package is the baseline it is measured against, both in tests and in
// the CLI's optimality-gap report.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy-decrease-key binary heap.
//   - Space: O(V + E); dense NodeID interning allows slice-backed
//     distance and predecessor tables instead of maps.
package exact

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/acopath/core"
)

// Sentinel errors for shortest-path queries.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("exact: graph is nil")

	// ErrNodeNotFound indicates start or end is not a node of the graph.
	ErrNodeNotFound = errors.New("exact: node not found")
)

// ShortestPath returns the minimum-cost path from start to end and its
// total cost. found is false when no path exists; path is nil and cost
// is +Inf in that case. Arc weights are positive by core.Graph
// construction, so no negative-weight pre-scan is needed.
func ShortestPath(g *core.Graph, start, end core.NodeID) (path []core.NodeID, cost float64, found bool, err error) {
	if g == nil {
		return nil, math.Inf(1), false, ErrNilGraph
	}
	if !g.HasNode(start) || !g.HasNode(end) {
		return nil, math.Inf(1), false, fmt.Errorf("%w: start=%d end=%d", ErrNodeNotFound, start, end)
	}

	n := g.NodeCount()
	dist := make([]float64, n)
	prev := make([]core.NodeID, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = core.InvalidNode
	}
	dist[start] = 0

	pq := nodePQ{{node: start, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		u := item.node
		if done[u] {
			// Stale entry from the lazy-decrease-key scheme.
			continue
		}
		done[u] = true
		if u == end {
			break
		}

		for _, arc := range g.Neighbors(u) {
			nd := dist[u] + arc.Weight
			if nd >= dist[arc.To] {
				continue
			}
			dist[arc.To] = nd
			prev[arc.To] = u
			heap.Push(&pq, nodeItem{node: arc.To, dist: nd})
		}
	}

	if math.IsInf(dist[end], 1) {
		return nil, math.Inf(1), false, nil
	}

	// Walk the predecessor chain back from end; start==end yields the
	// single-node path.
	for at := end; at != core.InvalidNode; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[end], true, nil
}

// nodeItem is one heap entry: a node and its tentative distance.
type nodeItem struct {
	node core.NodeID
	dist float64
}

// nodePQ is a min-heap over tentative distances. Shorter paths found
// later push duplicate entries; stale ones are skipped on pop.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
