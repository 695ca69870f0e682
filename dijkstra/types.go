package dijkstra

import "errors"

// NoPredecessor marks the source vertex and unreachable vertices in prev.
const NoPredecessor = -1

// Sentinel errors returned by this package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnreachable indicates that Route was asked for a target with
	// infinite distance.
	ErrUnreachable = errors.New("dijkstra: target is unreachable")

	// ErrPredecessorCycle indicates that following prev links did not reach
	// NoPredecessor within len(prev) steps.
	ErrPredecessorCycle = errors.New("dijkstra: predecessor links contain a cycle")

	// ErrLengthMismatch indicates that prev and dist have different lengths.
	ErrLengthMismatch = errors.New("dijkstra: prev and dist lengths differ")
)

// nodeItem is a (vertex, tentative distance) pair stored in the frontier.
type nodeItem struct {
	id   int     // vertex index
	dist float64 // distance from source when pushed
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending, ties broken
// by the lower vertex index so pop order is fully deterministic.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
