package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/acopath/core"
)

// ErrNoNodes is returned when the input produced no usable nodes.
var ErrNoNodes = errors.New("graphio: no nodes parsed")

// Options configures parsing behavior.
type Options struct {
	// Bidirectional mirrors every listed arc, turning the encoding into
	// an undirected road map.
	Bidirectional bool

	// Logger receives one warning per recovered line/arc. Defaults to
	// slog.Default(); pass a discard logger to silence diagnostics.
	Logger *slog.Logger
}

// Option mutates Options (functional options).
type Option func(*Options)

// WithBidirectional mirrors every arc in the opposite direction.
func WithBidirectional() Option {
	return func(o *Options) { o.Bidirectional = true }
}

// WithLogger routes recovery diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// defaultOptions returns the baseline parse configuration.
func defaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// stagedNode is one successfully scanned line, before interning.
type stagedNode struct {
	id        string
	pt        orb.Point
	neighbors []string
}

// Load opens path and delegates to Parse.
func Load(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %q: %w", path, err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// Parse reads the encoding from r and builds the graph in two passes:
// first intern all nodes, then connect arcs so that forward references
// between lines resolve. Malformed input is skipped with a diagnostic;
// only an entirely empty result is an error.
//
// Complexity: O(lines + arcs).
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	staged, err := scan(r, o.Logger)
	if err != nil {
		return nil, err
	}
	if len(staged) == 0 {
		return nil, ErrNoNodes
	}

	g := core.NewGraph()
	for _, s := range staged {
		if _, err = g.AddNode(s.id, s.pt); err != nil {
			// Duplicate lines for one ID: keep the first, diagnose the rest.
			o.Logger.Warn("graphio: skipping duplicate node", "id", s.id)
		}
	}

	connect(g, staged, o)

	return g, nil
}

// scan performs the line pass, returning staged nodes in file order.
func scan(r io.Reader, logger *slog.Logger) ([]stagedNode, error) {
	var staged []stagedNode

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		s, ok := parseLine(line)
		if !ok {
			logger.Warn("graphio: skipping malformed line", "line", line)
			continue
		}
		staged = append(staged, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return staged, nil
}

// parseLine decodes `id(x,y):n1,n2,...`. The neighbor list may be empty.
func parseLine(line string) (stagedNode, bool) {
	var s stagedNode

	head, tail, found := strings.Cut(line, ":")
	if !found {
		return s, false
	}

	id, coords, found := strings.Cut(strings.TrimSpace(head), "(")
	if !found {
		return s, false
	}
	coords, found = strings.CutSuffix(strings.TrimSpace(coords), ")")
	if !found {
		return s, false
	}
	xs, ys, found := strings.Cut(coords, ",")
	if !found {
		return s, false
	}

	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil {
		return s, false
	}

	s.id = strings.TrimSpace(id)
	if s.id == "" {
		return s, false
	}
	s.pt = orb.Point{x, y}

	for _, raw := range strings.Split(tail, ",") {
		if nid := strings.TrimSpace(raw); nid != "" {
			s.neighbors = append(s.neighbors, nid)
		}
	}

	return s, true
}

// connect performs the arc pass: resolve neighbor references, derive
// Euclidean weights, and drop dangling or degenerate arcs with a
// diagnostic each.
func connect(g *core.Graph, staged []stagedNode, o Options) {
	for _, s := range staged {
		from, ok := g.Resolve(s.id)
		if !ok {
			continue
		}
		for _, nid := range s.neighbors {
			to, ok := g.Resolve(nid)
			if !ok {
				o.Logger.Warn("graphio: dropping dangling arc",
					"from", s.id, "to", nid)
				continue
			}
			if to == from {
				o.Logger.Warn("graphio: dropping self-referencing arc", "node", s.id)
				continue
			}

			dist := planar.Distance(g.Point(from), g.Point(to))
			if dist == 0 {
				o.Logger.Warn("graphio: dropping zero-distance arc",
					"from", s.id, "to", nid)
				continue
			}

			addArc(g, from, to, dist, o.Logger)
			if o.Bidirectional {
				addArc(g, to, from, dist, o.Logger)
			}
		}
	}
}

// addArc inserts one arc, tolerating duplicates: a bidirectional file
// legitimately lists each edge from both endpoints.
func addArc(g *core.Graph, from, to core.NodeID, w float64, logger *slog.Logger) {
	if err := g.AddArc(from, to, w); err != nil && !errors.Is(err, core.ErrDuplicateArc) {
		// Weight and endpoints were validated above; nothing else can fail.
		logger.Warn("graphio: dropping arc", "from", g.IDOf(from), "to", g.IDOf(to), "err", err)
	}
}
