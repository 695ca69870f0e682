package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/geograph/dijkstra"
)

// BenchmarkShortestPaths_200 measures one solve on K_200 (39 800 edges).
func BenchmarkShortestPaths_200(b *testing.B) {
	g := buildGraph(b, randomPoints(200, 1))

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		_, _, _ = dijkstra.ShortestPaths(g, it%200)
	}
}
