// Package acopath finds low-cost routes between two nodes of a large,
// weighted, road-network-like graph using Ant Colony Optimization:
// a population of stochastic agents repeatedly builds candidate paths,
// guided by a shared reinforced pheromone field and a goal-directed
// geometric heuristic.
//
// 🐜 What is acopath?
//
//	A small, deterministic-by-seed pathfinding toolkit:
//		• core/    — interned geometric digraph, heuristics, spatial index
//		• graphio/ — plain-text map loader with recovery diagnostics
//		• reach/   — BFS reachability pre-check (cheap preflight)
//		• exact/   — Dijkstra baseline for measuring colony results
//		• aco/     — the colony: ants, pheromone field, optimizer loop
//		• cmd/     — acopath CLI gluing the pipeline together
//
// ✨ Why choose acopath?
//
//   - Reinforcement search, not exact search — scales to noisy maps where
//     optimality is not required but a good path quickly is
//   - Reproducible – every random decision flows from one injected seed
//   - Race-free by protocol – ants only read shared state; only the
//     colony mutates it, and only between iterations
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.NewGraph()
//	a, _ := g.AddNode("A", orb.Point{0, 1})
//	… add B, C, D and unit arcs …
//	h, _ := core.NewEuclideanHeuristic(g)
//	colony, _ := aco.New(g, h, aco.WithSeed(42))
//	res, _ := colony.Run(context.Background(), a, d)
//	fmt.Println(res.Found, res.Cost)
//
// The entry point for callers is aco.Colony.Run; everything else is a
// data provider around it.
package acopath
