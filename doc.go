// Package geograph computes single-source shortest paths over complete
// graphs of geographic points, using great-circle distance as edge weight.
//
// Packages:
//
//	geo/       — Point value type and haversine Distance
//	core/      — complete, symmetric Graph built incrementally by AddVertex
//	dijkstra/  — ShortestPaths (lazy-deletion binary heap) and route rebuild
//	builder/   — deterministic graph fixtures: Points, Grid, RandomScatter
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddVertex("D1 Centro", 6.2442, -75.5812)
//	g.AddVertex("D1 Poblado", 6.2084, -75.5687)
//	prev, dist, _ := dijkstra.ShortestPaths(g, 0)
//	path, _ := dijkstra.Route(prev, dist, 1) // [0 1], dist[1] ≈ 4.21 km
//
// The geodist command (cmd/geodist) wraps this as a console report and a
// small HTTP service.
//
//	go install github.com/katalvlaran/geograph/cmd/geodist@latest
package geograph
