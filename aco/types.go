// Package aco - configuration, sentinel errors, and result types.
//
// Options follows the reference parameterization of the optimizer: every
// behavioral constant is a documented knob with a default, never a magic
// number buried in the algorithm. Invalid values are surfaced as
// ErrOptionViolation when the colony is constructed (never panics on
// user input).
package aco

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/acopath/core"
)

// Sentinel errors for colony construction and runs.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("aco: graph is nil")

	// ErrNilHeuristic indicates a nil goal-distance heuristic.
	ErrNilHeuristic = errors.New("aco: heuristic is nil")

	// ErrNodeNotFound indicates start or end is not a node of the graph.
	ErrNodeNotFound = errors.New("aco: node not found in graph")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("aco: invalid option supplied")
)

// SelectionPolicy chooses how a NORMAL-mode ant turns candidate scores
// into a move. The two reference strategies are unified behind this
// single knob instead of duplicated code paths.
type SelectionPolicy int

const (
	// GreedyTiebreak picks uniformly among the candidates whose score is
	// within scoreTieEps of the maximum. Deterministic-friendly: with a
	// pinned seed only genuine ties consume randomness.
	GreedyTiebreak SelectionPolicy = iota

	// RouletteWheel samples candidates with probability proportional to
	// their score (classic pheromone-probabilistic ACO selection).
	RouletteWheel
)

// String returns the policy name used in configs and logs.
func (p SelectionPolicy) String() string {
	switch p {
	case GreedyTiebreak:
		return "greedy"
	case RouletteWheel:
		return "roulette"
	default:
		return fmt.Sprintf("SelectionPolicy(%d)", int(p))
	}
}

// Options holds every tunable of the optimizer.
//
// The ini tags bind fields to the [colony], [ant] and [pheromone]
// sections of a config file; see LoadOptions.
type Options struct {
	// AntCount is the number of ants released per iteration.
	AntCount int `ini:"ant_count"`

	// Iterations is the iteration budget of one run.
	Iterations int `ini:"iterations"`

	// EvaporationRate ∈ (0,1) is the per-iteration pheromone decay.
	EvaporationRate float64 `ini:"evaporation_rate"`

	// DepositConstant scales the reinforcement a successful path leaves:
	// each of its arcs gains DepositConstant / cost.
	DepositConstant float64 `ini:"deposit_constant"`

	// EarlyExitLength stops the run once the best path has fewer nodes
	// than this (quality-satisfied early exit).
	EarlyExitLength int `ini:"early_exit_length"`

	// Workers bounds concurrent ant construction. ≤ 1 runs ants
	// sequentially; results are identical either way for a given Seed.
	Workers int `ini:"workers"`

	// Seed pins the random source. 0 selects the fixed default stream,
	// keeping zero-value Options reproducible.
	Seed int64 `ini:"seed"`

	// Alpha is the pheromone-strength exponent in the selection score.
	Alpha float64 `ini:"alpha"`

	// Beta is the goal-heuristic exponent in the selection score.
	Beta float64 `ini:"beta"`

	// Policy selects the NORMAL-mode decision rule.
	Policy SelectionPolicy `ini:"-"`

	// StagnationThreshold is the number of consecutive steps without
	// visited-set growth after which an ant enters escape mode.
	StagnationThreshold int `ini:"stagnation_threshold"`

	// EscapeBudget is the maximum number of escape-mode steps before the
	// ant falls back to normal selection.
	EscapeBudget int `ini:"escape_budget"`

	// RecencyWindow is the size W of the last-visited FIFO window whose
	// members are deprioritized to dampen oscillation.
	RecencyWindow int `ini:"recency_window"`

	// StepCeiling is the hard per-attempt step bound; with revisits
	// allowed it is the only backstop against unbounded walks.
	StepCeiling int `ini:"step_ceiling"`

	// PathCeiling is the sanity bound on a successful path's node count;
	// longer successes neither deposit nor become the best.
	PathCeiling int `ini:"path_ceiling"`

	// LongPathLength is the node count beyond which a depositing path is
	// considered degenerate and its reinforcement shrunk.
	LongPathLength int `ini:"long_path_length"`

	// LongPathShrink ∈ (0,1] multiplies the deposit of paths longer than
	// LongPathLength, damping over-reinforcement by meandering routes.
	LongPathShrink float64 `ini:"long_path_shrink"`

	// InitialPheromone is the uniform intensity the field starts with.
	InitialPheromone float64 `ini:"initial"`

	// PheromoneFloor is the minimum intensity any arc can decay to; a
	// positive floor keeps every arc selectable forever.
	PheromoneFloor float64 `ini:"floor"`
}

// Reference defaults, mirroring the tuning the optimizer ships with.
const (
	defaultAntCount            = 25
	defaultIterations          = 50
	defaultEvaporationRate     = 0.1
	defaultDepositConstant     = 50.0
	defaultEarlyExitLength     = 200
	defaultAlpha               = 1.5
	defaultBeta                = 3.0
	defaultStagnationThreshold = 100
	defaultEscapeBudget        = 200
	defaultRecencyWindow       = 5
	defaultStepCeiling         = 20000
	defaultPathCeiling         = 10000
	defaultLongPathLength      = 1000
	defaultLongPathShrink      = 0.1
	defaultInitialPheromone    = 1.0
	defaultPheromoneFloor      = 0.01
)

// DefaultOptions returns the reference tuning. Use functional options or
// LoadOptions to override individual knobs.
func DefaultOptions() Options {
	return Options{
		AntCount:            defaultAntCount,
		Iterations:          defaultIterations,
		EvaporationRate:     defaultEvaporationRate,
		DepositConstant:     defaultDepositConstant,
		EarlyExitLength:     defaultEarlyExitLength,
		Workers:             1,
		Alpha:               defaultAlpha,
		Beta:                defaultBeta,
		Policy:              GreedyTiebreak,
		StagnationThreshold: defaultStagnationThreshold,
		EscapeBudget:        defaultEscapeBudget,
		RecencyWindow:       defaultRecencyWindow,
		StepCeiling:         defaultStepCeiling,
		PathCeiling:         defaultPathCeiling,
		LongPathLength:      defaultLongPathLength,
		LongPathShrink:      defaultLongPathShrink,
		InitialPheromone:    defaultInitialPheromone,
		PheromoneFloor:      defaultPheromoneFloor,
	}
}

// validate checks cross-field consistency; reused by New and LoadOptions.
func (o *Options) validate() error {
	switch {
	case o.AntCount < 1:
		return fmt.Errorf("%w: AntCount must be ≥ 1 (%d)", ErrOptionViolation, o.AntCount)
	case o.Iterations < 1:
		return fmt.Errorf("%w: Iterations must be ≥ 1 (%d)", ErrOptionViolation, o.Iterations)
	case o.EvaporationRate <= 0 || o.EvaporationRate >= 1:
		return fmt.Errorf("%w: EvaporationRate must lie in (0,1) (%g)", ErrOptionViolation, o.EvaporationRate)
	case o.DepositConstant <= 0:
		return fmt.Errorf("%w: DepositConstant must be > 0 (%g)", ErrOptionViolation, o.DepositConstant)
	case o.EarlyExitLength < 0:
		return fmt.Errorf("%w: EarlyExitLength must be ≥ 0 (%d)", ErrOptionViolation, o.EarlyExitLength)
	case o.Alpha < 0 || o.Beta < 0:
		return fmt.Errorf("%w: Alpha and Beta must be ≥ 0 (%g, %g)", ErrOptionViolation, o.Alpha, o.Beta)
	case o.Policy != GreedyTiebreak && o.Policy != RouletteWheel:
		return fmt.Errorf("%w: unknown selection policy (%d)", ErrOptionViolation, int(o.Policy))
	case o.StagnationThreshold < 1:
		return fmt.Errorf("%w: StagnationThreshold must be ≥ 1 (%d)", ErrOptionViolation, o.StagnationThreshold)
	case o.EscapeBudget < 1:
		return fmt.Errorf("%w: EscapeBudget must be ≥ 1 (%d)", ErrOptionViolation, o.EscapeBudget)
	case o.RecencyWindow < 1:
		return fmt.Errorf("%w: RecencyWindow must be ≥ 1 (%d)", ErrOptionViolation, o.RecencyWindow)
	case o.StepCeiling < 1:
		return fmt.Errorf("%w: StepCeiling must be ≥ 1 (%d)", ErrOptionViolation, o.StepCeiling)
	case o.PathCeiling < 2:
		return fmt.Errorf("%w: PathCeiling must be ≥ 2 (%d)", ErrOptionViolation, o.PathCeiling)
	case o.LongPathLength < 1:
		return fmt.Errorf("%w: LongPathLength must be ≥ 1 (%d)", ErrOptionViolation, o.LongPathLength)
	case o.LongPathShrink <= 0 || o.LongPathShrink > 1:
		return fmt.Errorf("%w: LongPathShrink must lie in (0,1] (%g)", ErrOptionViolation, o.LongPathShrink)
	case o.InitialPheromone <= 0:
		return fmt.Errorf("%w: InitialPheromone must be > 0 (%g)", ErrOptionViolation, o.InitialPheromone)
	case o.PheromoneFloor <= 0 || o.PheromoneFloor > o.InitialPheromone:
		return fmt.Errorf("%w: PheromoneFloor must lie in (0, InitialPheromone] (%g)", ErrOptionViolation, o.PheromoneFloor)
	}

	return nil
}

// Option configures the colony via functional arguments.
type Option func(*Options)

// WithOptions replaces the whole tuning with o, typically one produced
// by LoadOptions. Later options still apply on top.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// WithAntCount sets the population size per iteration.
func WithAntCount(n int) Option {
	return func(o *Options) { o.AntCount = n }
}

// WithIterations sets the iteration budget.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithEvaporationRate sets the per-iteration decay rate, in (0,1).
func WithEvaporationRate(rate float64) Option {
	return func(o *Options) { o.EvaporationRate = rate }
}

// WithDepositConstant sets the reinforcement numerator.
func WithDepositConstant(c float64) Option {
	return func(o *Options) { o.DepositConstant = c }
}

// WithEarlyExitLength sets the quality-satisfied early-exit threshold.
// Zero disables the early exit entirely.
func WithEarlyExitLength(n int) Option {
	return func(o *Options) { o.EarlyExitLength = n }
}

// WithWorkers bounds concurrent ant construction within one iteration.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSeed pins the random source; 0 selects the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithAlpha sets the pheromone exponent.
func WithAlpha(a float64) Option {
	return func(o *Options) { o.Alpha = a }
}

// WithBeta sets the heuristic exponent.
func WithBeta(b float64) Option {
	return func(o *Options) { o.Beta = b }
}

// WithSelectionPolicy chooses the NORMAL-mode decision rule.
func WithSelectionPolicy(p SelectionPolicy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithStagnationThreshold sets the steps-without-progress trigger.
func WithStagnationThreshold(n int) Option {
	return func(o *Options) { o.StagnationThreshold = n }
}

// WithEscapeBudget sets the maximum escape-mode step count.
func WithEscapeBudget(n int) Option {
	return func(o *Options) { o.EscapeBudget = n }
}

// WithRecencyWindow sets the deprioritized last-visited window size W.
func WithRecencyWindow(w int) Option {
	return func(o *Options) { o.RecencyWindow = w }
}

// WithStepCeiling sets the hard per-attempt step bound.
func WithStepCeiling(n int) Option {
	return func(o *Options) { o.StepCeiling = n }
}

// WithPathCeiling sets the success-path node-count sanity bound.
func WithPathCeiling(n int) Option {
	return func(o *Options) { o.PathCeiling = n }
}

// WithPheromone overrides the field's initial intensity and floor.
func WithPheromone(initial, floor float64) Option {
	return func(o *Options) {
		o.InitialPheromone = initial
		o.PheromoneFloor = floor
	}
}

// Result is the outcome of one colony run.
//
// Found=false is a normal, expected outcome (PathNotFound): Path is nil
// and Cost is +Inf. On success Path starts at the run's start node and
// ends at the target, Cost equals core.Graph.PathCost of the same
// sequence, and the path may revisit nodes (escape behavior permits
// controlled cycles).
type Result struct {
	// Path is the node sequence of the best path found, or nil.
	Path []core.NodeID

	// Cost is the total arc weight of Path, +Inf when Found is false.
	Cost float64

	// Found reports whether any ant reached the target.
	Found bool

	// Iterations is the number of iterations actually executed.
	Iterations int
}
