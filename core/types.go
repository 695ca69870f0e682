// Package core defines the Graph and Edge types, graph options and
// sentinel errors.
package core

import (
	"errors"

	"github.com/katalvlaran/geograph/geo"
)

// Sentinel errors for core graph operations.
var (
	// ErrIndexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNoEdge indicates a lookup of the non-existent self edge i→i.
	ErrNoEdge = errors.New("core: no edge between a vertex and itself")

	// ErrBadCoordinate indicates a point rejected by WithCoordinateValidation.
	ErrBadCoordinate = errors.New("core: coordinate out of range")
)

// Edge is an outgoing connection stored in the adjacency row of its source
// vertex. Edges are created by the Graph, never by callers.
type Edge struct {
	// To is the destination vertex index.
	To int

	// Weight is the great-circle distance in kilometres (always ≥ 0).
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCoordinateValidation makes AddVertex reject latitudes outside
// [-90,90] and longitudes outside [-180,180].
func WithCoordinateValidation() GraphOption {
	return func(g *Graph) { g.validate = true }
}

// WithCapacity pre-allocates storage for n vertices. Panics if n < 0.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n) requires n >= 0")
	}
	return func(g *Graph) { g.capacity = n }
}

// Graph is the complete geographic graph.
//
// vertices[i] is the point at index i; adjacency[i] is the ordered list of
// edges leaving i. len(vertices) == len(adjacency) at all times.
type Graph struct {
	// Configuration flags
	validate bool // reject out-of-range coordinates
	capacity int  // initial storage hint

	// Storage
	vertices  []geo.Point
	adjacency [][]Edge
}

// NewGraph creates an empty Graph with the given options.
// By default coordinates are not validated.
// Complexity: O(capacity)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make([]geo.Point, 0, g.capacity)
	g.adjacency = make([][]Edge, 0, g.capacity)

	return g
}

// ValidatesCoordinates reports whether the graph was built with
// WithCoordinateValidation.
func (g *Graph) ValidatesCoordinates() bool { return g.validate }
