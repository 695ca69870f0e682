// File: methods_adjacent.go
// Role: Adjacency queries.
//
// Determinism:
//   - Neighbors(i) returns edges in construction order: 0..i-1, then i+1..N-1.
package core

import "fmt"

// Neighbors returns the outgoing edges of vertex i in construction order.
// The slice is a copy and may be modified freely by the caller.
//
// Errors:
//   - ErrIndexOutOfRange if i ∉ [0, VertexCount()).
//
// Complexity: O(N)
func (g *Graph) Neighbors(i int) ([]Edge, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}
	out := make([]Edge, len(g.adjacency[i]))
	copy(out, g.adjacency[i])

	return out, nil
}

// ForEachNeighbor calls fn for every outgoing edge of i in construction
// order without copying the adjacency row. fn must not mutate the graph.
//
// Errors:
//   - ErrIndexOutOfRange if i ∉ [0, VertexCount()).
//
// Complexity: O(deg(i)) = O(N)
func (g *Graph) ForEachNeighbor(i int, fn func(e Edge)) error {
	if err := g.checkIndex(i); err != nil {
		return err
	}
	for _, e := range g.adjacency[i] {
		fn(e)
	}

	return nil
}

// Weight returns the weight of the direct edge i→j.
//
// In the adjacency row of i, the edge to j sits at position j when j < i
// and at position j-1 when j > i, so the lookup is O(1).
//
// Errors:
//   - ErrIndexOutOfRange if i or j is not a vertex.
//   - ErrNoEdge if i == j.
//
// Complexity: O(1)
func (g *Graph) Weight(i, j int) (float64, error) {
	if err := g.checkIndex(i); err != nil {
		return 0, err
	}
	if err := g.checkIndex(j); err != nil {
		return 0, err
	}
	if i == j {
		return 0, fmt.Errorf("%w: %d", ErrNoEdge, i)
	}
	pos := j
	if j > i {
		pos = j - 1
	}

	return g.adjacency[i][pos].Weight, nil
}

// EdgeCount returns the number of directed edges, N·(N-1).
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	n := len(g.vertices)
	if n < 2 {
		return 0
	}

	return n * (n - 1)
}
