package aco_test

import (
	"context"
	"fmt"
	"log"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/acopath/aco"
	"github.com/katalvlaran/acopath/core"
)

// ExampleColony_Run searches the unit square for a path across the
// diagonal. Either two-arc route (via B or via D) costs exactly 2.
func ExampleColony_Run() {
	g := core.NewGraph()
	a, _ := g.AddNode("A", orb.Point{0, 0})
	b, _ := g.AddNode("B", orb.Point{1, 0})
	c, _ := g.AddNode("C", orb.Point{1, 1})
	d, _ := g.AddNode("D", orb.Point{0, 1})
	for _, e := range [][2]core.NodeID{{a, b}, {b, c}, {c, d}, {d, a}} {
		_ = g.AddArc(e[0], e[1], 1)
		_ = g.AddArc(e[1], e[0], 1)
	}

	h, err := core.NewEuclideanHeuristic(g)
	if err != nil {
		log.Fatal(err)
	}

	colony, err := aco.New(g, h, aco.WithSeed(7))
	if err != nil {
		log.Fatal(err)
	}

	res, err := colony.Run(context.Background(), a, c)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("found=%t cost=%.2f hops=%d\n", res.Found, res.Cost, len(res.Path)-1)
	// Output:
	// found=true cost=2.00 hops=2
}
