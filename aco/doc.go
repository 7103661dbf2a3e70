// Package aco implements Ant Colony Optimization pathfinding between two
// nodes of a weighted core.Graph.
//
// Per iteration the colony releases a population of independent ants.
// Each ant builds one candidate path step by step: it partitions the
// current node's neighbours into priority tiers (unvisited, then visited
// outside a short recency window, then recently visited), scores the
// active tier by pheromone strength and goal distance, and moves. When
// the ant's visited set stops growing for too long it switches into a
// temporary escape mode that forces exploration and breaks the tightest
// cycle first. Completed paths reinforce their arcs in a shared
// pheromone field; evaporation then decays the whole field so stale
// trails are forgotten.
//
// The search is probabilistic and gives no optimality guarantee; it
// trades exactness for robustness on large, noisy, partially broken
// maps. A run that never finds the target is a normal outcome surfaced
// as Result{Found: false, Cost: +Inf}, not an error.
//
// Phase protocol (what makes future parallelism race-free):
//
//   - read phase: ants only read Graph, Heuristic and the pheromone
//     Field; all their mutations are confined to per-ant state.
//   - write phase: after all ants of an iteration have joined, the
//     colony alone deposits (successes first) and then evaporates once.
//
// Determinism: every random decision derives from Options.Seed through
// per-ant SplitMix64 substreams, so a pinned seed reproduces the exact
// same paths regardless of the worker count.
//
// Complexity per iteration, A ants with step ceiling S over max degree d:
//
//   - Time:  O(A·S·d) worst case for construction,
//     plus O(E) for the evaporation pass.
//   - Space: O(E) pheromone field + O(S) per live ant.
package aco
