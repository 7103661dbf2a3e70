// Package reach_test exercises the BFS pre-check on directed and
// disconnected topologies.
package reach_test

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acopath/core"
	"github.com/katalvlaran/acopath/reach"
)

// chainWithIsland builds A→B→C plus an isolated node Z.
func chainWithIsland(t *testing.T) (*core.Graph, map[string]core.NodeID) {
	t.Helper()
	g := core.NewGraph()
	ids := make(map[string]core.NodeID)
	for i, name := range []string{"A", "B", "C", "Z"} {
		n, err := g.AddNode(name, orb.Point{float64(i), 0})
		require.NoError(t, err)
		ids[name] = n
	}
	require.NoError(t, g.AddArc(ids["A"], ids["B"], 1))
	require.NoError(t, g.AddArc(ids["B"], ids["C"], 1))

	return g, ids
}

func TestReachable(t *testing.T) {
	g, ids := chainWithIsland(t)

	ok, err := reach.Reachable(g, ids["A"], ids["C"])
	require.NoError(t, err)
	require.True(t, ok)

	// Arcs are directed: C cannot walk back to A.
	ok, err = reach.Reachable(g, ids["C"], ids["A"])
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = reach.Reachable(g, ids["A"], ids["Z"])
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = reach.Reachable(g, ids["B"], ids["B"])
	require.NoError(t, err)
	require.True(t, ok)
}

func TestReachable_Validation(t *testing.T) {
	g, ids := chainWithIsland(t)

	_, err := reach.Reachable(nil, 0, 1)
	require.ErrorIs(t, err, reach.ErrNilGraph)

	_, err = reach.Reachable(g, ids["A"], 99)
	require.ErrorIs(t, err, reach.ErrNodeNotFound)
}

func TestReachable_Cancellation(t *testing.T) {
	g, ids := chainWithIsland(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := reach.Reachable(g, ids["A"], ids["Z"], reach.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestEnsure(t *testing.T) {
	g, ids := chainWithIsland(t)

	require.NoError(t, reach.Ensure(g, ids["A"], ids["C"]))

	err := reach.Ensure(g, ids["A"], ids["Z"])
	require.ErrorIs(t, err, reach.ErrUnreachableTarget)
	require.Contains(t, err.Error(), "A")
	require.Contains(t, err.Error(), "Z")
}
