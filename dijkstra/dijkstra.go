// Package dijkstra implements Dijkstra's shortest-path algorithm on
// core.Graph.
//
// Notes on implementation choices:
//
//   - Edge weights are great-circle distances and therefore never negative;
//     no pre-scan is needed.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries whose key exceeds the settled distance.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/geograph/core"
)

// ShortestPaths computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - prev: prev[v] is the predecessor of v on a shortest path, or
//     NoPredecessor for the source and unreachable vertices.
//   - dist: dist[v] is the minimum total weight from source, or +Inf if v is
//     unreachable. dist[source] == 0.
//   - err:  ErrNilGraph, or core.ErrIndexOutOfRange (wrapped) if source is
//     not a vertex of g.
//
// Both slices have length g.VertexCount() and are freshly allocated on
// every call. Repeated calls on an unmodified graph return identical results.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths(g *core.Graph, source int) ([]int, []float64, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	// Vertex performs the range check and wraps core.ErrIndexOutOfRange.
	if _, err := g.Vertex(source); err != nil {
		return nil, nil, err
	}

	// 2) Prepare state and run.
	n := g.VertexCount()
	r := &runner{
		g:    g,
		dist: make([]float64, n),
		prev: make([]int, n),
		pq:   make(nodePQ, 0, n),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.prev, r.dist, nil
}

// runner holds the mutable state for a single ShortestPaths execution.
type runner struct {
	g    *core.Graph // read-only within the run
	dist []float64   // vertex → best distance so far
	prev []int       // vertex → predecessor on the best path so far
	pq   nodePQ      // frontier (lazy min-heap)
}

// init sets dist=+Inf and prev=NoPredecessor everywhere, then seeds the
// frontier with (0, source).
func (r *runner) init(source int) {
	inf := math.Inf(1)
	for v := range r.dist {
		r.dist[v] = inf
		r.prev[v] = NoPredecessor
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})
}

// process pops the closest frontier entry until the heap is empty.
// An entry whose key is larger than dist[u] was superseded by a later push
// and is skipped; the first pop of u with key == dist[u] settles it.
func (r *runner) process() error {
	var item nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(nodeItem)
		if item.dist > r.dist[item.id] {
			continue
		}
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u int) error {
	du := r.dist[u]

	return r.g.ForEachNeighbor(u, func(e core.Edge) {
		newDist := du + e.Weight
		// Strict "<": equal-cost alternatives keep the earlier predecessor,
		// and NaN weights (unvalidated NaN coordinates) never relax.
		if !(newDist < r.dist[e.To]) {
			return
		}
		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, nodeItem{id: e.To, dist: newDist})
	})
}
