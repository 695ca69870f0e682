// Package core provides the geographic Graph: an ordered set of geo.Point
// vertices kept as a complete, symmetric weighted graph.
//
// The Graph G = (V,E) has a fixed shape:
//
//   - Vertices are identified by their insertion index 0..N-1.
//   - Every ordered pair (i,j), i≠j, has exactly one edge i→j whose weight is
//     geo.Distance(V[i], V[j]). Edge i→j and j→i always carry the same weight.
//   - There are no self-loops, no parallel edges and no removals.
//
// Construction is incremental: AddVertex appends the new point and links it
// to every earlier vertex in both directions, so the invariant holds after
// every call. Inserting the k-th vertex costs O(k) distance evaluations.
//
// Adjacency order:
//
//	Neighbors(i) lists 0..i-1 ascending (edges created when i was inserted),
//	then i+1..N-1 ascending (edges created as later vertices arrived).
//	This order is part of the contract; tests and reports rely on it.
//
// Configuration Options (GraphOption):
//
//	– WithCoordinateValidation()
//	    Reject points outside [-90,90]×[-180,180] with ErrBadCoordinate.
//	    Without it, any float64 pair is accepted as-is.
//	– WithCapacity(n)
//	    Pre-size vertex and adjacency storage for n vertices.
//
// Core Methods:
//
//	AddVertex(name string, lat, lon float64) (int, error)  // O(N)
//	AddPoint(p geo.Point) (int, error)                     // O(N)
//	VertexCount() int                                      // O(1)
//	Vertex(i int) (geo.Point, error)                       // O(1)
//	Vertices() []geo.Point                                 // O(N) copy
//	Neighbors(i int) ([]Edge, error)                       // O(N) copy
//	Weight(i, j int) (float64, error)                      // O(1)
//	EdgeCount() int                                        // O(1)
//
// Errors:
//
//	ErrIndexOutOfRange - vertex index outside [0, VertexCount()).
//	ErrNoEdge          - Weight(i, i): the graph has no self-loops.
//	ErrBadCoordinate   - rejected point under WithCoordinateValidation.
//
// Concurrency:
//
//	Graph has no internal locking. Concurrent reads of a graph that is no
//	longer being mutated are safe; AddVertex concurrent with anything else
//	is a data race. Callers that need both must serialize externally.
package core
