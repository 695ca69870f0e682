package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geograph/core"
)

// PathTo rebuilds the vertex sequence ending at target by following prev
// links until NoPredecessor, and returns it in source → target order.
//
// If target was not reached by the solver, prev[target] is NoPredecessor
// and the result is the single-element path [target]. That is NOT a valid
// route: check dist[target] (or use Route) to tell the two cases apart.
//
// Errors:
//   - core.ErrIndexOutOfRange: target, or any link, outside [0, len(prev)).
//   - ErrPredecessorCycle: more than len(prev) steps without reaching a root.
//
// Complexity: O(path length) time and space.
func PathTo(prev []int, target int) ([]int, error) {
	n := len(prev)
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d, vertex count %d", core.ErrIndexOutOfRange, target, n)
	}

	// Walk backwards, then reverse in place; cheaper than prepending.
	var path []int
	for v := target; v != NoPredecessor; v = prev[v] {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: predecessor %d, vertex count %d", core.ErrIndexOutOfRange, v, n)
		}
		if len(path) == n {
			return nil, fmt.Errorf("%w: walk from %d exceeded %d steps", ErrPredecessorCycle, target, n)
		}
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Route is PathTo for callers that also hold dist: an unreachable target
// (dist[target] == +Inf) is reported as ErrUnreachable instead of the
// degenerate [target] path.
//
// Errors:
//   - ErrLengthMismatch if len(prev) != len(dist).
//   - Any error from PathTo.
//   - ErrUnreachable.
func Route(prev []int, dist []float64, target int) ([]int, error) {
	if len(prev) != len(dist) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(prev), len(dist))
	}
	path, err := PathTo(prev, target)
	if err != nil {
		return nil, err
	}
	if math.IsInf(dist[target], 1) {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, target)
	}

	return path, nil
}
