// End-to-end colony tests: convergence on small geometric graphs,
// unreachable targets, determinism across seeds and worker counts, the
// early exit, and input validation.
package aco_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acopath/aco"
	"github.com/katalvlaran/acopath/core"
	"github.com/katalvlaran/acopath/exact"
)

// square builds the unit square A(0,0) B(1,0) C(1,1) D(0,1) with
// bidirectional unit arcs along the edges. The diagonal A→C demands a
// two-arc path of cost 2 via either B or D.
func square(t *testing.T) (*core.Graph, map[string]core.NodeID) {
	t.Helper()
	g := core.NewGraph()

	pts := map[string]orb.Point{
		"A": {0, 0}, "B": {1, 0}, "C": {1, 1}, "D": {0, 1},
	}
	ids := make(map[string]core.NodeID, len(pts))
	for _, name := range []string{"A", "B", "C", "D"} {
		id, err := g.AddNode(name, pts[name])
		require.NoError(t, err)
		ids[name] = id
	}
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		require.NoError(t, g.AddArc(ids[e[0]], ids[e[1]], 1))
		require.NoError(t, g.AddArc(ids[e[1]], ids[e[0]], 1))
	}

	return g, ids
}

// grid builds an n×n lattice with bidirectional unit arcs between
// orthogonal neighbors; node (r,c) sits at point (c,r).
func grid(t *testing.T, n int) (*core.Graph, [][]core.NodeID) {
	t.Helper()
	g := core.NewGraph()

	ids := make([][]core.NodeID, n)
	for r := 0; r < n; r++ {
		ids[r] = make([]core.NodeID, n)
		for c := 0; c < n; c++ {
			id, err := g.AddNode(fmt.Sprintf("n%d_%d", r, c), orb.Point{float64(c), float64(r)})
			require.NoError(t, err)
			ids[r][c] = id
		}
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c+1 < n {
				require.NoError(t, g.AddArc(ids[r][c], ids[r][c+1], 1))
				require.NoError(t, g.AddArc(ids[r][c+1], ids[r][c], 1))
			}
			if r+1 < n {
				require.NoError(t, g.AddArc(ids[r][c], ids[r+1][c], 1))
				require.NoError(t, g.AddArc(ids[r+1][c], ids[r][c], 1))
			}
		}
	}

	return g, ids
}

func euclid(t *testing.T, g *core.Graph) core.Heuristic {
	t.Helper()
	h, err := core.NewEuclideanHeuristic(g)
	require.NoError(t, err)

	return h
}

func TestColony_FindsShortestSquarePath(t *testing.T) {
	g, ids := square(t)

	c, err := aco.New(g, euclid(t, g), aco.WithSeed(7))
	require.NoError(t, err)

	res, err := c.Run(context.Background(), ids["A"], ids["C"])
	require.NoError(t, err)
	require.True(t, res.Found)
	require.InDelta(t, 2.0, res.Cost, 1e-9)
	require.Len(t, res.Path, 3)
	require.Equal(t, ids["A"], res.Path[0])
	require.Equal(t, ids["C"], res.Path[2])

	// The reported cost matches an independent recomputation.
	cost, err := g.PathCost(res.Path)
	require.NoError(t, err)
	require.InDelta(t, cost, res.Cost, 1e-9)
}

func TestColony_UnreachableTargetExhaustsBudget(t *testing.T) {
	g, ids := square(t)
	island, err := g.AddNode("island", orb.Point{50, 50})
	require.NoError(t, err)

	c, err := aco.New(g, euclid(t, g),
		aco.WithAntCount(3),
		aco.WithIterations(4),
		aco.WithStepCeiling(60),
		aco.WithStagnationThreshold(5),
		aco.WithEscapeBudget(5),
	)
	require.NoError(t, err)

	res, err := c.Run(context.Background(), ids["A"], island)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Nil(t, res.Path)
	require.True(t, math.IsInf(res.Cost, 1))
	require.Equal(t, 4, res.Iterations, "no early exit without a find")
}

func TestColony_DeterministicForPinnedSeed(t *testing.T) {
	run := func() aco.Result {
		g, ids := grid(t, 4)
		c, err := aco.New(g, euclid(t, g),
			aco.WithSeed(1337),
			aco.WithSelectionPolicy(aco.RouletteWheel),
			aco.WithIterations(5),
			aco.WithEarlyExitLength(0),
		)
		require.NoError(t, err)

		res, err := c.Run(context.Background(), ids[0][0], ids[3][3])
		require.NoError(t, err)

		return res
	}

	first := run()
	require.True(t, first.Found)
	for i := 0; i < 3; i++ {
		require.Equal(t, first, run())
	}
}

func TestColony_WorkerCountDoesNotChangeResult(t *testing.T) {
	run := func(workers int) aco.Result {
		g, ids := grid(t, 4)
		c, err := aco.New(g, euclid(t, g),
			aco.WithSeed(99),
			aco.WithWorkers(workers),
			aco.WithIterations(5),
			aco.WithEarlyExitLength(0),
		)
		require.NoError(t, err)

		res, err := c.Run(context.Background(), ids[0][0], ids[3][3])
		require.NoError(t, err)

		return res
	}

	sequential := run(1)
	require.Equal(t, sequential, run(4))
	require.Equal(t, sequential, run(100)) // more workers than ants
}

func TestColony_EarlyExit(t *testing.T) {
	g, ids := square(t)

	// The best square path (3 nodes) is well under the default early-exit
	// length, so the run stops after its first iteration.
	c, err := aco.New(g, euclid(t, g), aco.WithSeed(7))
	require.NoError(t, err)
	res, err := c.Run(context.Background(), ids["A"], ids["C"])
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 1, res.Iterations)

	// Zero disables the exit: the full budget runs even after a find.
	c2, err := aco.New(g, euclid(t, g),
		aco.WithSeed(7),
		aco.WithIterations(6),
		aco.WithEarlyExitLength(0),
	)
	require.NoError(t, err)
	res2, err := c2.Run(context.Background(), ids["A"], ids["C"])
	require.NoError(t, err)
	require.True(t, res2.Found)
	require.Equal(t, 6, res2.Iterations)
}

func TestColony_StartEqualsEnd(t *testing.T) {
	g, ids := square(t)

	c, err := aco.New(g, euclid(t, g))
	require.NoError(t, err)

	res, err := c.Run(context.Background(), ids["A"], ids["A"])
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []core.NodeID{ids["A"]}, res.Path)
	require.Zero(t, res.Cost)
}

func TestColony_InputValidation(t *testing.T) {
	g, ids := square(t)
	h := euclid(t, g)

	_, err := aco.New(nil, h)
	require.ErrorIs(t, err, aco.ErrNilGraph)

	_, err = aco.New(g, nil)
	require.ErrorIs(t, err, aco.ErrNilHeuristic)

	_, err = aco.New(g, h, aco.WithEvaporationRate(1.5))
	require.ErrorIs(t, err, aco.ErrOptionViolation)

	_, err = aco.New(g, h, aco.WithPheromone(1.0, 2.0))
	require.ErrorIs(t, err, aco.ErrOptionViolation)

	c, err := aco.New(g, h)
	require.NoError(t, err)
	_, err = c.Run(context.Background(), ids["A"], core.InvalidNode)
	require.ErrorIs(t, err, aco.ErrNodeNotFound)
}

func TestColony_CancelledContext(t *testing.T) {
	g, ids := square(t)

	c, err := aco.New(g, euclid(t, g))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := c.Run(ctx, ids["A"], ids["C"])
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, res.Found)
	require.Zero(t, res.Iterations)
}

func TestColony_GridCostConsistency(t *testing.T) {
	g, ids := grid(t, 5)

	c, err := aco.New(g, euclid(t, g),
		aco.WithSeed(3),
		aco.WithSelectionPolicy(aco.RouletteWheel),
	)
	require.NoError(t, err)

	res, err := c.Run(context.Background(), ids[0][0], ids[4][4])
	require.NoError(t, err)
	require.True(t, res.Found)

	cost, err := g.PathCost(res.Path)
	require.NoError(t, err)
	require.InDelta(t, cost, res.Cost, 1e-9)

	// The optimum is a hard floor on whatever the colony returns.
	_, optimal, found, err := exact.ShortestPath(g, ids[0][0], ids[4][4])
	require.NoError(t, err)
	require.True(t, found)
	require.GreaterOrEqual(t, res.Cost, optimal)
}
