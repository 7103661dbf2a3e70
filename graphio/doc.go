// Package graphio loads the plain-text map encoding into a core.Graph.
//
// Encoding, one node per line:
//
//	node_id(x,y):neighbor_id1,neighbor_id2,...
//
// Arc weights are not part of the encoding; they are derived as the
// planar Euclidean distance between the endpoint coordinates.
//
// Recovery policy (never fatal, always diagnosed via slog):
//
//   - malformed line            → skipped
//   - duplicate node ID         → later line skipped
//   - neighbor not in the file  → dangling arc dropped
//   - zero straight-line length → degenerate arc dropped (protects every
//     downstream division by cost)
//
// Only a file that yields no nodes at all is an error (ErrNoNodes).
package graphio
