package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/acopath/aco"
	"github.com/katalvlaran/acopath/core"
	"github.com/katalvlaran/acopath/exact"
	"github.com/katalvlaran/acopath/graphio"
	"github.com/katalvlaran/acopath/reach"
)

var rootCmd = &cobra.Command{
	Use:   "acopath",
	Short: "Ant-colony pathfinder over weighted geometric graphs",
	Long: `acopath loads a geometric graph from a text file, checks that the
target is reachable at all, and then runs an ant colony optimizer to
find a low-cost path between two nodes.

Endpoints are given either as node IDs (--start/--end) or as raw
coordinates (--start-at/--end-at "x,y"), which snap to the nearest
graph node.`,
	SilenceUsage: true,
	RunE:         runSearch,
}

// Execute runs the root command and maps failures to exit code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.Flags()
	f.String("graph", "", `graph file, one "id(x,y):n1,n2,..." line per node (required)`)
	f.String("config", "", "INI file with colony tunables")
	f.String("start", "", "start node ID")
	f.String("end", "", "target node ID")
	f.String("start-at", "", `start coordinate "x,y", snapped to the nearest node`)
	f.String("end-at", "", `target coordinate "x,y", snapped to the nearest node`)
	f.Bool("bidirectional", false, "mirror every listed arc in the opposite direction")
	f.Int64("seed", 0, "random seed (0 selects the fixed default stream)")
	f.Int("workers", 1, "concurrent ants per iteration")
	f.BoolP("verbose", "v", false, "log parser recovery and run diagnostics")

	_ = rootCmd.MarkFlagRequired("graph")
	rootCmd.MarkFlagsMutuallyExclusive("start", "start-at")
	rootCmd.MarkFlagsMutuallyExclusive("end", "end-at")
}

func runSearch(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	verbose, _ := flags.GetBool("verbose")

	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	opts := aco.DefaultOptions()
	if cfgPath, _ := flags.GetString("config"); cfgPath != "" {
		var err error
		if opts, err = aco.LoadOptions(cfgPath); err != nil {
			return err
		}
	}
	// Flags beat the config file.
	if flags.Changed("seed") {
		opts.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("workers") {
		opts.Workers, _ = flags.GetInt("workers")
	}

	graphPath, _ := flags.GetString("graph")
	loadOpts := []graphio.Option{graphio.WithLogger(logger)}
	if bidi, _ := flags.GetBool("bidirectional"); bidi {
		loadOpts = append(loadOpts, graphio.WithBidirectional())
	}
	g, err := graphio.Load(graphPath, loadOpts...)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "nodes", g.NodeCount(), "arcs", g.ArcCount())

	start, err := pickNode(g, flags, "start", "start-at")
	if err != nil {
		return err
	}
	end, err := pickNode(g, flags, "end", "end-at")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = reach.Ensure(g, start, end, reach.WithContext(ctx)); err != nil {
		return err
	}

	h, err := core.NewEuclideanHeuristic(g)
	if err != nil {
		return err
	}
	colony, err := aco.New(g, h, aco.WithOptions(opts))
	if err != nil {
		return err
	}

	logger.Debug("colony run starting",
		"start", g.IDOf(start), "end", g.IDOf(end),
		"ants", opts.AntCount, "iterations", opts.Iterations,
		"policy", opts.Policy, "workers", opts.Workers, "seed", opts.Seed)

	res, err := colony.Run(ctx, start, end)
	if err != nil {
		return err
	}
	if !res.Found {
		return fmt.Errorf("no path found after %d iterations", res.Iterations)
	}

	if verbose {
		// Compare against the provable optimum so tuning sessions can see
		// how far off the colony landed.
		if _, optimal, found, derr := exact.ShortestPath(g, start, end); derr == nil && found && optimal > 0 {
			logger.Debug("optimality gap",
				"colony", res.Cost, "optimal", optimal,
				"ratio", res.Cost/optimal)
		}
	}

	names := make([]string, len(res.Path))
	for i, n := range res.Path {
		names[i] = g.IDOf(n)
	}
	fmt.Printf("path: %s\n", strings.Join(names, " -> "))
	fmt.Printf("cost: %.4f\n", res.Cost)
	fmt.Printf("iterations: %d\n", res.Iterations)

	return nil
}

// pickNode resolves one endpoint, either by node ID or by snapping a raw
// coordinate to the nearest node.
func pickNode(g *core.Graph, flags *pflag.FlagSet, idFlag, atFlag string) (core.NodeID, error) {
	if id, _ := flags.GetString(idFlag); id != "" {
		n, ok := g.Resolve(id)
		if !ok {
			return core.InvalidNode, fmt.Errorf("node %q not found in graph", id)
		}

		return n, nil
	}

	raw, _ := flags.GetString(atFlag)
	if raw == "" {
		return core.InvalidNode, fmt.Errorf("either --%s or --%s is required", idFlag, atFlag)
	}
	pt, err := parsePoint(raw)
	if err != nil {
		return core.InvalidNode, fmt.Errorf("--%s: %w", atFlag, err)
	}

	si, err := core.NewSpatialIndex(g)
	if err != nil {
		return core.InvalidNode, err
	}
	n, ok := si.Nearest(pt)
	if !ok {
		return core.InvalidNode, fmt.Errorf("--%s: graph has no indexable nodes", atFlag)
	}
	slog.Debug("snapped coordinate to node", "flag", atFlag, "node", g.IDOf(n))

	return n, nil
}

// parsePoint decodes an "x,y" pair.
func parsePoint(raw string) (orb.Point, error) {
	xs, ys, found := strings.Cut(raw, ",")
	if !found {
		return orb.Point{}, fmt.Errorf("want \"x,y\", got %q", raw)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil {
		return orb.Point{}, fmt.Errorf("want numeric \"x,y\", got %q", raw)
	}

	return orb.Point{x, y}, nil
}
