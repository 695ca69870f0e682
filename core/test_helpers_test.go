// Package core_test contains shared fixtures for core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/geo"
)

// symTol is the tolerance used for symmetric weight comparisons.
const symTol = 1e-9

// medellin is the five-store sample in insertion order.
var medellin = []geo.Point{
	geo.NewPoint("D1 Centro", 6.2442, -75.5812),
	geo.NewPoint("D1 Poblado", 6.2084, -75.5687),
	geo.NewPoint("D1 Laureles", 6.2453, -75.5939),
	geo.NewPoint("D1 Belén", 6.2308, -75.6075),
	geo.NewPoint("D1 Envigado", 6.1664, -75.5836),
}

// mustBuild returns a graph holding pts in order, failing the test on error.
func mustBuild(t testing.TB, pts []geo.Point, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for i, p := range pts {
		idx, err := g.AddPoint(p)
		require.NoError(t, err, "AddPoint(%s)", p.Name)
		require.Equal(t, i, idx)
	}

	return g
}
