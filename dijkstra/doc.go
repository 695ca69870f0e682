// Package dijkstra computes single-source shortest paths on a core.Graph
// and rebuilds routes from the resulting predecessor array.
//
// Overview:
//
//   - ShortestPaths(g, source) returns two slices indexed by vertex:
//     dist[v], the minimum total weight from source (math.Inf(1) when v is
//     unreachable), and prev[v], the vertex before v on one shortest path
//     (NoPredecessor for the source and for unreachable vertices).
//   - PathTo and Route walk prev back from a target to rebuild the vertex
//     sequence source → … → target.
//
// Algorithm:
//
//   - Binary min-heap (container/heap) keyed by tentative distance, seeded
//     with (0, source).
//   - Lazy decrease-key: a vertex may be pushed several times; when an entry
//     is popped with a key larger than the current dist[u], it is stale and
//     skipped.
//   - Relaxation is strict (newDist < dist[v]), so prev links only ever
//     point at a vertex with a smaller settled distance; prev therefore forms
//     a tree rooted at source and PathTo always terminates on solver output.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V); on the complete graphs built by core,
//     E = V·(V-1), so O(V² log V).
//   - Space: O(V) for dist/prev, O(E) worst-case heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:            g is nil.
//   - core.ErrIndexOutOfRange: source or target outside [0, N).
//   - ErrUnreachable:         Route target has dist = +Inf.
//   - ErrPredecessorCycle:    prev does not describe a forest (corrupt input).
//
// Thread safety:
//
//   - ShortestPaths only reads g. Concurrent calls on a graph that is not
//     being mutated are safe; results are fresh slices owned by the caller.
package dijkstra
