// Package aco - single-ant path construction.
//
// An ant is a transient agent: created fresh for one construction
// attempt, discarded afterwards, never shared. During construction it
// reads the graph, the heuristic and the pheromone field, and mutates
// only its own state.
//
// The construction loop is a two-state machine:
//
//	NORMAL — tiered, score-guided selection (forward exploration with
//	         controlled backtracking when boxed in).
//	ESCAPE — entered after StagnationThreshold consecutive steps without
//	         visited-set growth; forces exploration and breaks the
//	         tightest cycle first. Left when progress resumes or the
//	         EscapeBudget is exhausted.
package aco

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/acopath/core"
)

// scoreDamping is the additive constant in the heuristic denominator,
// guarding the division when goal distance and arc weight are tiny.
const scoreDamping = 1.0

// scoreTieEps is the absolute tolerance under which two candidate scores
// count as tied for GreedyTiebreak selection.
const scoreTieEps = 1e-6

// escapeTopK bounds the "nearest to goal" shortlist in escape mode.
const escapeTopK = 3

// antMode is the construction state.
type antMode int

const (
	modeNormal antMode = iota
	modeEscape
)

// ant carries the transient state of one construction attempt.
type ant struct {
	g     *core.Graph
	h     core.Heuristic
	field *Field
	opts  *Options
	rng   *rand.Rand

	path     []core.NodeID
	visited  map[core.NodeID]struct{}
	recent   []core.NodeID            // FIFO window of the last W nodes
	lastSeen map[core.NodeID]int      // node → most recent index in path
	cost     float64

	mode        antMode
	stale       int // consecutive steps without visited-set growth
	escapeSteps int // steps spent in the current escape episode

	// Episode counters, used to observe the state machine from tests.
	escapeEntries int
	escapeDrops   int

	// Scratch buffers reused across steps to keep the hot loop
	// allocation-free after warm-up.
	tierBuf  []core.Arc
	scoreBuf []float64
}

// newAnt builds a fresh ant bound to shared read-only state.
func newAnt(g *core.Graph, h core.Heuristic, field *Field, opts *Options, rng *rand.Rand) *ant {
	return &ant{
		g:        g,
		h:        h,
		field:    field,
		opts:     opts,
		rng:      rng,
		visited:  make(map[core.NodeID]struct{}),
		lastSeen: make(map[core.NodeID]int),
	}
}

// construct walks from start toward goal, returning true when the goal
// is reached within the step ceiling. On failure the partial state is
// left in place for inspection but is never reused for another attempt.
//
// Complexity: O(StepCeiling · maxDegree) worst case.
func (a *ant) construct(start, goal core.NodeID) bool {
	a.path = append(a.path[:0], start)
	a.visited[start] = struct{}{}
	a.lastSeen[start] = 0
	a.recent = append(a.recent[:0], start)
	a.cost = 0
	a.mode = modeNormal
	a.stale = 0
	a.escapeSteps = 0

	current := start
	lastVisitedCount := 0

	for step := 0; step < a.opts.StepCeiling; step++ {
		if current == goal {
			return true
		}

		available := a.g.Neighbors(current)
		if len(available) == 0 {
			// Dead end with revisits exhausted: no transition exists.
			return false
		}

		// Progress tracking: growth of the visited set resets both the
		// stagnation counter and any running escape episode.
		if len(a.visited) == lastVisitedCount {
			a.stale++
		} else {
			lastVisitedCount = len(a.visited)
			a.stale = 0
			a.mode = modeNormal
			a.escapeSteps = 0
		}

		if a.stale > a.opts.StagnationThreshold {
			if a.mode != modeEscape {
				a.mode = modeEscape
				a.escapeSteps = 0
				a.escapeEntries++
			}
			a.escapeSteps++
		}

		var next core.Arc
		var ok bool
		if a.mode == modeEscape && a.escapeSteps <= a.opts.EscapeBudget {
			next, ok = a.escapeSelect(available, goal)
		} else {
			if a.mode == modeEscape {
				// Budget exhausted without progress: fall back to NORMAL.
				a.mode = modeNormal
				a.escapeSteps = 0
				a.escapeDrops++
			}
			next, ok = a.normalSelect(current, available, goal)
		}
		if !ok {
			return false
		}

		a.move(next)
		current = next.To
	}

	return current == goal
}

// move commits the chosen arc to the ant's state.
func (a *ant) move(arc core.Arc) {
	a.cost += arc.Weight
	a.path = append(a.path, arc.To)
	a.visited[arc.To] = struct{}{}
	a.lastSeen[arc.To] = len(a.path) - 1

	a.recent = append(a.recent, arc.To)
	if len(a.recent) > a.opts.RecencyWindow {
		a.recent = a.recent[1:]
	}
}

// inRecent reports membership in the recency window (W is small; a
// linear scan beats any map here).
func (a *ant) inRecent(n core.NodeID) bool {
	for _, r := range a.recent {
		if r == n {
			return true
		}
	}

	return false
}

// activeTier partitions available into priority tiers and returns the
// highest non-empty one: (1) unvisited, (2) visited but outside the
// recency window, (3) recently visited. The bias keeps ants moving
// forward yet still permits controlled backtracking when boxed in.
func (a *ant) activeTier(available []core.Arc) []core.Arc {
	unvisited := a.tierBuf[:0]
	for _, arc := range available {
		if _, seen := a.visited[arc.To]; !seen {
			unvisited = append(unvisited, arc)
		}
	}
	if len(unvisited) > 0 {
		a.tierBuf = unvisited

		return unvisited
	}

	nonRecent := a.tierBuf[:0]
	for _, arc := range available {
		if !a.inRecent(arc.To) {
			nonRecent = append(nonRecent, arc)
		}
	}
	if len(nonRecent) > 0 {
		a.tierBuf = nonRecent

		return nonRecent
	}

	// Fully boxed in: everything available is recent.
	return available
}

// score combines trail strength and goal bias for one candidate arc:
//
//	pheromone(c,n)^alpha · (1 / (goalDistance(n) + edgeCost + damping))^beta
//
// An unknown goal distance (+Inf) zeroes the heuristic factor: the arc
// is then carried by pheromone ties alone.
func (a *ant) score(current core.NodeID, arc core.Arc, goal core.NodeID) float64 {
	trail := math.Pow(a.field.Level(current, arc.To), a.opts.Alpha)

	gd := a.h.Estimate(arc.To, goal)
	var bias float64
	if !math.IsInf(gd, 1) {
		bias = math.Pow(1/(gd+arc.Weight+scoreDamping), a.opts.Beta)
	}

	return trail * bias
}

// normalSelect implements NORMAL-mode selection over the active tier.
func (a *ant) normalSelect(current core.NodeID, available []core.Arc, goal core.NodeID) (core.Arc, bool) {
	tier := a.activeTier(available)
	if len(tier) == 0 {
		return core.Arc{}, false
	}
	if len(tier) == 1 {
		return tier[0], true
	}

	scores := a.scoreBuf[:0]
	for _, arc := range tier {
		scores = append(scores, a.score(current, arc, goal))
	}
	a.scoreBuf = scores

	if a.opts.Policy == RouletteWheel {
		return a.roulette(tier, scores), true
	}

	return a.greedyTiebreak(tier, scores), true
}

// roulette samples proportionally to score; when every score is zero
// (no heuristic knowledge and a flat field floor) it degrades to a
// uniform choice rather than failing.
func (a *ant) roulette(tier []core.Arc, scores []float64) core.Arc {
	var total float64
	for _, s := range scores {
		total += s
	}
	if total <= 0 {
		return tier[a.rng.Intn(len(tier))]
	}

	r := a.rng.Float64() * total
	for i, s := range scores {
		r -= s
		if r <= 0 {
			return tier[i]
		}
	}

	// Floating-point remainder: the last candidate absorbs it.
	return tier[len(tier)-1]
}

// greedyTiebreak picks uniformly among candidates within scoreTieEps of
// the maximum score.
func (a *ant) greedyTiebreak(tier []core.Arc, scores []float64) core.Arc {
	best := math.Inf(-1)
	for _, s := range scores {
		if s > best {
			best = s
		}
	}

	ties := 0
	for _, s := range scores {
		if best-s < scoreTieEps {
			ties++
		}
	}
	pick := a.rng.Intn(ties)
	for i, s := range scores {
		if best-s < scoreTieEps {
			if pick == 0 {
				return tier[i]
			}
			pick--
		}
	}

	// Unreachable: ties counted above always cover pick.
	return tier[len(tier)-1]
}

// escapeSelect implements ESCAPE-mode selection:
//  1. unvisited candidates nearest to the goal, uniform among the
//     closest escapeTopK;
//  2. otherwise the revisit that is stalest in the current path
//     (greatest distance since its last occurrence — breaks the
//     tightest cycle first);
//  3. otherwise uniform among everything available.
func (a *ant) escapeSelect(available []core.Arc, goal core.NodeID) (core.Arc, bool) {
	if len(available) == 0 {
		return core.Arc{}, false
	}

	unvisited := a.tierBuf[:0]
	for _, arc := range available {
		if _, seen := a.visited[arc.To]; !seen {
			unvisited = append(unvisited, arc)
		}
	}
	a.tierBuf = unvisited
	if len(unvisited) > 0 {
		sort.Slice(unvisited, func(i, j int) bool {
			di := a.h.Estimate(unvisited[i].To, goal)
			dj := a.h.Estimate(unvisited[j].To, goal)
			if di != dj {
				return di < dj
			}

			return unvisited[i].To < unvisited[j].To
		})
		k := len(unvisited)
		if k > escapeTopK {
			k = escapeTopK
		}

		return unvisited[a.rng.Intn(k)], true
	}

	// All candidates were visited: pick the one whose last occurrence in
	// the path is furthest behind us.
	var stalest core.Arc
	bestAge := -1
	for _, arc := range available {
		idx, ok := a.lastSeen[arc.To]
		if !ok {
			continue
		}
		age := len(a.path) - idx
		if age > bestAge || (age == bestAge && arc.To < stalest.To) {
			bestAge = age
			stalest = arc
		}
	}
	if bestAge >= 0 {
		return stalest, true
	}

	return available[a.rng.Intn(len(available))], true
}
