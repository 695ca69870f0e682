// Package dijkstra_test provides examples demonstrating ShortestPaths and
// route reconstruction.
package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/dijkstra"
)

// ExampleShortestPaths prints the route from D1 Centro to every other store.
func ExampleShortestPaths() {
	g := core.NewGraph()
	_, _ = g.AddVertex("D1 Centro", 6.2442, -75.5812)
	_, _ = g.AddVertex("D1 Poblado", 6.2084, -75.5687)
	_, _ = g.AddVertex("D1 Laureles", 6.2453, -75.5939)
	_, _ = g.AddVertex("D1 Belén", 6.2308, -75.6075)
	_, _ = g.AddVertex("D1 Envigado", 6.1664, -75.5836)

	prev, dist, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	pts := g.Vertices()
	for target := 1; target < len(pts); target++ {
		path, err := dijkstra.Route(prev, dist, target)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		names := make([]string, len(path))
		for i, v := range path {
			names[i] = pts[v].Name
		}
		fmt.Printf("%s: %.2f km\n", strings.Join(names, " -> "), dist[target])
	}
	// Output:
	// D1 Centro -> D1 Poblado: 4.21 km
	// D1 Centro -> D1 Laureles: 1.41 km
	// D1 Centro -> D1 Belén: 3.27 km
	// D1 Centro -> D1 Envigado: 8.66 km
}
