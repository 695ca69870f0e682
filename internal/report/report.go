// Package report renders graphs and shortest-path results as text and as
// JSON-ready values. Distances are printed with two decimals.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/dijkstra"
)

// Route is one reconstructed shortest path.
type Route struct {
	Target     int      `json:"target"`
	Name       string   `json:"name"`
	Path       []int    `json:"path"`
	Names      []string `json:"names"`
	DistanceKm float64  `json:"distance_km"`
	Reachable  bool     `json:"reachable"`
}

// BuildRoute reconstructs the route to target from solver output.
// An unreachable target yields Reachable=false with an empty path and a
// zero distance (JSON cannot encode +Inf).
func BuildRoute(g *core.Graph, prev []int, dist []float64, target int) (Route, error) {
	p, err := g.Vertex(target)
	if err != nil {
		return Route{}, err
	}
	r := Route{Target: target, Name: p.Name, Path: []int{}, Names: []string{}}

	path, err := dijkstra.Route(prev, dist, target)
	if errors.Is(err, dijkstra.ErrUnreachable) {
		return r, nil
	}
	if err != nil {
		return Route{}, err
	}

	r.Path = path
	r.Names = make([]string, len(path))
	for i, v := range path {
		pv, err := g.Vertex(v)
		if err != nil {
			return Route{}, err
		}
		r.Names[i] = pv.Name
	}
	r.DistanceKm = dist[target]
	r.Reachable = true

	return r, nil
}

// BuildRoutes reconstructs routes to every vertex except source, in index
// order.
func BuildRoutes(g *core.Graph, prev []int, dist []float64, source int) ([]Route, error) {
	routes := make([]Route, 0, g.VertexCount())
	for v := 0; v < g.VertexCount(); v++ {
		if v == source {
			continue
		}
		r, err := BuildRoute(g, prev, dist, v)
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}

	return routes, nil
}

// WriteGraph prints every vertex followed by its outgoing edges:
//
//	Vertex 0 (D1 Centro):
//	  -> Vertex 1 (Distance: 4.21 km)
func WriteGraph(w io.Writer, g *core.Graph) error {
	ew := &errWriter{w: w}
	for i, p := range g.Vertices() {
		ew.printf("Vertex %d (%s):\n", i, p.Name)
		err := g.ForEachNeighbor(i, func(e core.Edge) {
			ew.printf("  -> Vertex %d (Distance: %.2f km)\n", e.To, e.Weight)
		})
		if err != nil {
			return err
		}
		ew.printf("\n")
	}

	return ew.err
}

// WriteRoutes prints routes from the named source in the CLI layout.
func WriteRoutes(w io.Writer, source string, routes []Route) error {
	ew := &errWriter{w: w}
	ew.printf("Shortest routes from %s:\n", source)
	for _, r := range routes {
		ew.printf("To %s:\n", r.Name)
		if !r.Reachable {
			ew.printf("  No route\n\n")
			continue
		}
		ew.printf("  Route: %s\n", strings.Join(r.Names, " -> "))
		ew.printf("  Total distance: %s km\n\n", FormatKm(r.DistanceKm))
	}

	return ew.err
}

// FormatKm formats a distance with two decimals; +Inf prints as "inf".
func FormatKm(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}

	return fmt.Sprintf("%.2f", d)
}

// errWriter remembers the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
