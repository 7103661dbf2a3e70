// Package graphio_test verifies the loader's recovery policy: malformed
// lines, dangling references, and degenerate arcs are diagnosed and
// dropped, never fatal.
package graphio_test

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acopath/core"
	"github.com/katalvlaran/acopath/graphio"
)

// quiet silences recovery diagnostics during tests.
func quiet() graphio.Option {
	return graphio.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestParse_Basic(t *testing.T) {
	in := strings.Join([]string{
		"A(0,0):B",
		"B(3,4):A,C",
		"C(3,8):B",
	}, "\n")

	g, err := graphio.Parse(strings.NewReader(in), quiet())
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 4, g.ArcCount())

	a, _ := g.Resolve("A")
	b, _ := g.Resolve("B")
	w, ok := g.Weight(a, b)
	require.True(t, ok)
	require.InDelta(t, 5.0, w, 1e-9) // 3-4-5 triangle

	c, _ := g.Resolve("C")
	w, ok = g.Weight(b, c)
	require.True(t, ok)
	require.InDelta(t, 4.0, w, 1e-9)
}

func TestParse_MalformedLinesSkipped(t *testing.T) {
	in := strings.Join([]string{
		"A(0,0):B",
		"this is not a node line",
		"B(1,0:A",          // missing closing paren
		"(2,0):A",          // missing ID
		"C(x,y):A",         // non-numeric coordinates
		"B(1,0):A",         // valid, despite the noise around it
		"",                 // blank
		"   ",              // whitespace only
	}, "\n")

	g, err := graphio.Parse(strings.NewReader(in), quiet())
	require.NoError(t, err)
	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 2, g.ArcCount())
}

func TestParse_DanglingNeighborDropped(t *testing.T) {
	in := "A(0,0):B,GHOST\nB(1,0):A\n"

	g, err := graphio.Parse(strings.NewReader(in), quiet())
	require.NoError(t, err)

	a, _ := g.Resolve("A")
	require.Len(t, g.Neighbors(a), 1)
	_, ok := g.Resolve("GHOST")
	require.False(t, ok)
}

func TestParse_ZeroDistanceArcDropped(t *testing.T) {
	// B and C share a coordinate: the B→C arc is degenerate and must not
	// survive ingestion, while the rest of the map stays intact.
	in := strings.Join([]string{
		"A(0,0):B",
		"B(1,0):A,C",
		"C(1,0):B",
	}, "\n")

	g, err := graphio.Parse(strings.NewReader(in), quiet())
	require.NoError(t, err)

	b, _ := g.Resolve("B")
	c, _ := g.Resolve("C")
	_, ok := g.Weight(b, c)
	require.False(t, ok)
	_, ok = g.Weight(c, b)
	require.False(t, ok)

	a, _ := g.Resolve("A")
	_, ok = g.Weight(a, b)
	require.True(t, ok)
}

func TestParse_SelfReferenceDropped(t *testing.T) {
	in := "A(0,0):A,B\nB(1,0):A\n"

	g, err := graphio.Parse(strings.NewReader(in), quiet())
	require.NoError(t, err)

	a, _ := g.Resolve("A")
	require.Len(t, g.Neighbors(a), 1)
}

func TestParse_Bidirectional(t *testing.T) {
	// Only A lists the edge; mirroring produces the reverse arc too.
	in := "A(0,0):B\nB(1,0):\n"

	g, err := graphio.Parse(strings.NewReader(in), quiet(), graphio.WithBidirectional())
	require.NoError(t, err)

	a, _ := g.Resolve("A")
	b, _ := g.Resolve("B")
	_, ok := g.Weight(a, b)
	require.True(t, ok)
	_, ok = g.Weight(b, a)
	require.True(t, ok)
	require.Equal(t, 2, g.ArcCount())
}

func TestParse_DuplicateNodeKeepsFirst(t *testing.T) {
	in := "A(0,0):B\nB(1,0):A\nA(9,9):B\n"

	g, err := graphio.Parse(strings.NewReader(in), quiet())
	require.NoError(t, err)
	require.Equal(t, 2, g.NodeCount())

	a, _ := g.Resolve("A")
	require.Equal(t, 0.0, g.Point(a).X())
}

func TestParse_Empty(t *testing.T) {
	_, err := graphio.Parse(strings.NewReader(""), quiet())
	require.ErrorIs(t, err, graphio.ErrNoNodes)

	_, err = graphio.Parse(strings.NewReader("garbage\nmore garbage"), quiet())
	require.ErrorIs(t, err, graphio.ErrNoNodes)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := graphio.Load("definitely/not/here.txt", quiet())
	require.Error(t, err)
}

// The core consumes the loader's output directly: ensure the produced
// graph satisfies the positive-weight invariant everywhere.
func TestParse_WeightsStrictlyPositive(t *testing.T) {
	in := strings.Join([]string{
		"N1(0,0):N2,N3",
		"N2(2,0):N1,N3",
		"N3(1,1):N1,N2",
	}, "\n")

	g, err := graphio.Parse(strings.NewReader(in), quiet())
	require.NoError(t, err)

	for n := core.NodeID(0); int(n) < g.NodeCount(); n++ {
		for _, arc := range g.Neighbors(n) {
			require.Greater(t, arc.Weight, 0.0)
		}
	}
}
