package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/geo"
)

func TestGraph_Empty(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Vertices())

	_, err := g.Neighbors(0)
	require.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestGraph_AddVertexReturnsIndex(t *testing.T) {
	g := core.NewGraph()
	for i, p := range medellin {
		idx, err := g.AddVertex(p.Name, p.Lat, p.Lon)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
		assert.Equal(t, i+1, g.VertexCount())
	}
	assert.Equal(t, medellin, g.Vertices())
}

func TestGraph_SingleVertexHasNoEdges(t *testing.T) {
	g := mustBuild(t, medellin[:1])
	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Empty(t, nbs)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_Completeness(t *testing.T) {
	g := core.NewGraph()
	for n := 1; n <= len(medellin); n++ {
		_, err := g.AddPoint(medellin[n-1])
		require.NoError(t, err)

		// The invariant must hold after every insertion, not just at the end.
		for i := 0; i < n; i++ {
			nbs, err := g.Neighbors(i)
			require.NoError(t, err)
			assert.Len(t, nbs, n-1, "vertex %d after %d insertions", i, n)
		}
		assert.Equal(t, n*(n-1), g.EdgeCount())
	}
}

func TestGraph_NeighborOrder(t *testing.T) {
	g := mustBuild(t, medellin)
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		nbs, err := g.Neighbors(i)
		require.NoError(t, err)

		want := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j != i {
				want = append(want, j)
			}
		}
		got := make([]int, 0, len(nbs))
		for _, e := range nbs {
			got = append(got, e.To)
		}
		assert.Equal(t, want, got, "neighbors of %d", i)
	}
}

func TestGraph_SymmetricWeights(t *testing.T) {
	g := mustBuild(t, medellin)
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			wij, err := g.Weight(i, j)
			require.NoError(t, err)
			wji, err := g.Weight(j, i)
			require.NoError(t, err)
			assert.InDelta(t, wij, wji, symTol)
			assert.InDelta(t, geo.Distance(medellin[i], medellin[j]), wij, symTol)
			assert.GreaterOrEqual(t, wij, 0.0)
		}
	}
}

func TestGraph_WeightMatchesNeighbors(t *testing.T) {
	g := mustBuild(t, medellin)
	for i := 0; i < g.VertexCount(); i++ {
		nbs, err := g.Neighbors(i)
		require.NoError(t, err)
		for _, e := range nbs {
			w, err := g.Weight(i, e.To)
			require.NoError(t, err)
			assert.Equal(t, e.Weight, w)
		}
	}
}

func TestGraph_TriangleConsistency(t *testing.T) {
	g := mustBuild(t, medellin)
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				if i == j || j == k || i == k {
					continue
				}
				wij, _ := g.Weight(i, j)
				wik, _ := g.Weight(i, k)
				wkj, _ := g.Weight(k, j)
				assert.LessOrEqual(t, wij, wik+wkj+symTol)
			}
		}
	}
}

func TestGraph_WeightErrors(t *testing.T) {
	g := mustBuild(t, medellin[:2])

	_, err := g.Weight(0, 0)
	require.ErrorIs(t, err, core.ErrNoEdge)

	_, err = g.Weight(0, 2)
	require.ErrorIs(t, err, core.ErrIndexOutOfRange)

	_, err = g.Weight(-1, 0)
	require.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestGraph_IndexOutOfRange(t *testing.T) {
	g := mustBuild(t, medellin)
	for _, i := range []int{-1, len(medellin), len(medellin) + 10} {
		_, err := g.Neighbors(i)
		require.ErrorIs(t, err, core.ErrIndexOutOfRange, "Neighbors(%d)", i)

		_, err = g.Vertex(i)
		require.ErrorIs(t, err, core.ErrIndexOutOfRange, "Vertex(%d)", i)

		err = g.ForEachNeighbor(i, func(core.Edge) {})
		require.ErrorIs(t, err, core.ErrIndexOutOfRange, "ForEachNeighbor(%d)", i)
	}

	p, err := g.Vertex(2)
	require.NoError(t, err)
	assert.Equal(t, medellin[2], p)
}

func TestGraph_ReturnedSlicesAreCopies(t *testing.T) {
	g := mustBuild(t, medellin)

	vs := g.Vertices()
	vs[0].Name = "mutated"
	p, _ := g.Vertex(0)
	assert.Equal(t, "D1 Centro", p.Name)

	nbs, _ := g.Neighbors(0)
	nbs[0].Weight = -1
	w, _ := g.Weight(0, nbs[0].To)
	assert.GreaterOrEqual(t, w, 0.0)
}

func TestGraph_ForEachNeighbor(t *testing.T) {
	g := mustBuild(t, medellin)
	var seen []int
	require.NoError(t, g.ForEachNeighbor(2, func(e core.Edge) { seen = append(seen, e.To) }))
	assert.Equal(t, []int{0, 1, 3, 4}, seen)
}

func TestGraph_CoordinatesAcceptedByDefault(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.ValidatesCoordinates())

	idx, err := g.AddVertex("off the map", 123.4, -500)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, g.VertexCount())
}

func TestGraph_CoordinateValidation(t *testing.T) {
	g := mustBuild(t, medellin[:2], core.WithCoordinateValidation(), core.WithCapacity(4))
	assert.True(t, g.ValidatesCoordinates())

	_, err := g.AddVertex("bad lat", -90.01, 0)
	require.ErrorIs(t, err, core.ErrBadCoordinate)
	require.ErrorIs(t, err, geo.ErrLatitudeOutOfRange)

	_, err = g.AddVertex("bad lon", 0, 181)
	require.ErrorIs(t, err, core.ErrBadCoordinate)
	require.ErrorIs(t, err, geo.ErrLongitudeOutOfRange)

	// Rejected points leave the graph untouched.
	assert.Equal(t, 2, g.VertexCount())
	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Len(t, nbs, 1)

	idx, err := g.AddVertex("edge of the world", 90, 180)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestWithCapacity_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { core.WithCapacity(-1) })
}
