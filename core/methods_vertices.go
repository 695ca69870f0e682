// File: methods_vertices.go
// Role: Vertex insertion & queries.
//
// Determinism:
//   - Vertex indices are assigned in insertion order and never change.
//   - Vertices() returns points in index order.
package core

import (
	"fmt"

	"github.com/katalvlaran/geograph/geo"
)

// AddVertex appends a point built from name/lat/lon and returns its index.
// See AddPoint for the linking rules.
//
// Complexity: O(N) time, O(N) space for the new edges.
func (g *Graph) AddVertex(name string, lat, lon float64) (int, error) {
	return g.AddPoint(geo.NewPoint(name, lat, lon))
}

// AddPoint appends p at index N (the current vertex count) and restores the
// complete-graph invariant by linking p with every earlier vertex k in both
// directions:
//
//	adjacency[k] += {To: N, Weight: d}
//	adjacency[N] += {To: k, Weight: d}   for k = 0..N-1, d = geo.Distance(p, V[k])
//
// Implementation:
//   - Stage 1: Validate coordinates when WithCoordinateValidation is set.
//   - Stage 2: Append p and an adjacency row sized for its N edges.
//   - Stage 3: Emit the N mirrored edge pairs in ascending k.
//
// Errors:
//   - ErrBadCoordinate (wrapping the geo sentinel) under validation only.
//     The graph is unchanged on error.
//
// Complexity: O(N) time, O(N) space.
func (g *Graph) AddPoint(p geo.Point) (int, error) {
	// Stage 1: optional hardening.
	if g.validate {
		if err := p.Validate(); err != nil {
			return -1, fmt.Errorf("%w: %w", ErrBadCoordinate, err)
		}
	}

	// Stage 2: append the vertex and its (empty) adjacency row.
	idx := len(g.vertices)
	g.vertices = append(g.vertices, p)
	g.adjacency = append(g.adjacency, make([]Edge, 0, idx))

	// Stage 3: one distance evaluation per pair; both directions share it.
	var d float64
	for k := 0; k < idx; k++ {
		d = geo.Distance(p, g.vertices[k])
		g.adjacency[k] = append(g.adjacency[k], Edge{To: idx, Weight: d})
		g.adjacency[idx] = append(g.adjacency[idx], Edge{To: k, Weight: d})
	}

	return idx, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Vertex returns the point stored at index i.
//
// Errors:
//   - ErrIndexOutOfRange if i ∉ [0, VertexCount()).
//
// Complexity: O(1)
func (g *Graph) Vertex(i int) (geo.Point, error) {
	if err := g.checkIndex(i); err != nil {
		return geo.Point{}, err
	}

	return g.vertices[i], nil
}

// Vertices returns a snapshot of all points in index order. The returned
// slice is a copy; modifying it does not affect the graph.
// Complexity: O(N)
func (g *Graph) Vertices() []geo.Point {
	out := make([]geo.Point, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// checkIndex returns ErrIndexOutOfRange (with context) if i is not a vertex.
func (g *Graph) checkIndex(i int) error {
	if i < 0 || i >= len(g.vertices) {
		return fmt.Errorf("%w: index %d, vertex count %d", ErrIndexOutOfRange, i, len(g.vertices))
	}

	return nil
}
