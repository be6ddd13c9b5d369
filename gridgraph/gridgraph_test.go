package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hazardgrid/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph validation
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty, ragged
// or mislabelled inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name   string
		labels [][]gridgraph.Label
		err    error
	}{
		{"EmptyRows", [][]gridgraph.Label{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]gridgraph.Label{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]gridgraph.Label{{gridgraph.Safe, gridgraph.Safe}, {gridgraph.Safe}}, gridgraph.ErrNonRectangular},
		{"PathMarker", [][]gridgraph.Label{{gridgraph.Safe, gridgraph.Path}}, gridgraph.ErrBadLabel},
		{"Unknown", [][]gridgraph.Label{{gridgraph.Label(42)}}, gridgraph.ErrBadLabel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.labels)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGridGraph_BadWeightFn rejects weight functions yielding non-positive weights.
func TestNewGridGraph_BadWeightFn(t *testing.T) {
	labels := gridgraph.MustParseLayout("..", "..")
	zero := func(*rand.Rand) int64 { return 0 }
	_, err := gridgraph.NewGridGraph(labels, gridgraph.WithWeightFn(zero))
	require.ErrorIs(t, err, gridgraph.ErrBadWeight)
}

// TestNewGridGraph_DeepCopy ensures later mutation of the input does not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	labels := gridgraph.MustParseLayout("..", "..")
	gg, err := gridgraph.NewGridGraph(labels)
	require.NoError(t, err)

	labels[0][0] = gridgraph.Blocked
	assert.Equal(t, gridgraph.Safe, gg.Label(gridgraph.Cell{Row: 0, Col: 0}))

	out := gg.Labels()
	out[1][1] = gridgraph.Blocked
	assert.Equal(t, gridgraph.Safe, gg.Label(gridgraph.Cell{Row: 1, Col: 1}))
}

//----------------------------------------------------------------------------//
// Adjacency
//----------------------------------------------------------------------------//

// TestNeighbors_FullGrid checks 8-connectivity on a 3×3 all-Safe grid.
func TestNeighbors_FullGrid(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(gridgraph.MustParseLayout("...", "...", "..."))
	require.NoError(t, err)

	assert.Equal(t, 9, gg.NodeCount())
	// 6 horizontal + 6 vertical + 8 diagonal
	assert.Equal(t, 20, gg.EdgeCount())
	assert.Len(t, gg.Edges(), 20)

	assert.ElementsMatch(t,
		[]gridgraph.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
		gg.Neighbors(gridgraph.Cell{Row: 0, Col: 0}))

	center := gridgraph.Cell{Row: 1, Col: 1}
	nbrs := gg.Neighbors(center)
	assert.Len(t, nbrs, 8)
	assert.NotContains(t, nbrs, center)
}

// TestNeighbors_BlockedExcluded verifies Blocked cells have no node and no edges.
func TestNeighbors_BlockedExcluded(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(gridgraph.MustParseLayout(".#.", "..."))
	require.NoError(t, err)

	wall := gridgraph.Cell{Row: 0, Col: 1}
	assert.False(t, gg.Has(wall))
	assert.Nil(t, gg.Neighbors(wall))
	assert.Equal(t, 5, gg.NodeCount())
	// 11 edges in a full 2×3 grid, 5 of them touch the wall.
	assert.Equal(t, 6, gg.EdgeCount())

	assert.ElementsMatch(t,
		[]gridgraph.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}},
		gg.Neighbors(gridgraph.Cell{Row: 0, Col: 0}))

	_, ok := gg.Weight(gridgraph.Cell{Row: 0, Col: 0}, wall)
	assert.False(t, ok)
}

// TestWeight_UndefinedForNonNeighbors checks Weight is only defined on edges.
func TestWeight_UndefinedForNonNeighbors(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(gridgraph.MustParseLayout("...", "...", "..."))
	require.NoError(t, err)

	_, ok := gg.Weight(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 2})
	assert.False(t, ok, "cells two steps apart share no edge")
	_, ok = gg.Weight(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 0, Col: 0})
	assert.False(t, ok, "no self loops")
	_, ok = gg.Weight(gridgraph.Cell{Row: -1, Col: 0}, gridgraph.Cell{Row: 0, Col: 0})
	assert.False(t, ok, "out of bounds")
}

// TestInvariants_RandomGrids checks symmetry and Blocked exclusion on many seeded grids.
func TestInvariants_RandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(8)
		labels := randomLabels(rng, n)
		gg, err := gridgraph.NewGridGraph(labels, gridgraph.WithSeed(int64(trial+1)))
		require.NoError(t, err)

		for _, e := range gg.Edges() {
			require.NotEqual(t, gridgraph.Blocked, gg.Label(e.A))
			require.NotEqual(t, gridgraph.Blocked, gg.Label(e.B))
			ab, ok1 := gg.Weight(e.A, e.B)
			ba, ok2 := gg.Weight(e.B, e.A)
			require.True(t, ok1 && ok2)
			require.Equal(t, ab, ba)
			require.Equal(t, e.Weight, ab)
			require.GreaterOrEqual(t, ab, gridgraph.DefaultMinWeight)
			require.LessOrEqual(t, ab, gridgraph.DefaultMaxWeight)
		}
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				cell := gridgraph.Cell{Row: r, Col: c}
				for _, v := range gg.Neighbors(cell) {
					require.NotEqual(t, cell, v)
					_, ok := gg.Weight(cell, v)
					require.True(t, ok)
				}
			}
		}
	}
}

// TestNewGridGraph_SeedReproducible checks weights are a pure function of the seed.
func TestNewGridGraph_SeedReproducible(t *testing.T) {
	labels := gridgraph.MustParseLayout(
		"W.#....G",
		"..W..#..",
		"S.......",
	)
	a, err := gridgraph.NewGridGraph(labels, gridgraph.WithSeed(42))
	require.NoError(t, err)
	b, err := gridgraph.NewGridGraph(labels, gridgraph.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
}

// TestConstantWeightFn checks that every edge carries the constant weight.
func TestConstantWeightFn(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(gridgraph.MustParseLayout("..", ".."),
		gridgraph.WithWeightFn(gridgraph.ConstantWeightFn(3)))
	require.NoError(t, err)
	for _, e := range gg.Edges() {
		assert.Equal(t, int64(3), e.Weight)
	}
}

// TestWeightFn_Panics covers programmer-error panics in weight constructors.
func TestWeightFn_Panics(t *testing.T) {
	assert.Panics(t, func() { gridgraph.ConstantWeightFn(0) })
	assert.Panics(t, func() { gridgraph.UniformWeightFn(0, 3) })
	assert.Panics(t, func() { gridgraph.UniformWeightFn(5, 4) })
	assert.Equal(t, int64(2), gridgraph.UniformWeightFn(2, 9)(nil))
}

//----------------------------------------------------------------------------//
// NewGridGraphFromEdges
//----------------------------------------------------------------------------//

// TestNewGridGraphFromEdges_Errors covers each construction-time invariant.
func TestNewGridGraphFromEdges_Errors(t *testing.T) {
	labels := gridgraph.MustParseLayout(".#", "..")
	c := func(r, col int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: col} }

	cases := []struct {
		name  string
		edges []gridgraph.Edge
		err   error
	}{
		{"OutOfBounds", []gridgraph.Edge{{A: c(0, 0), B: c(-1, 0), Weight: 1}}, gridgraph.ErrCellOutOfBounds},
		{"Blocked", []gridgraph.Edge{{A: c(0, 0), B: c(0, 1), Weight: 1}}, gridgraph.ErrBlockedEdge},
		{"SelfLoop", []gridgraph.Edge{{A: c(0, 0), B: c(0, 0), Weight: 1}}, gridgraph.ErrNotAdjacent},
		{"ZeroWeight", []gridgraph.Edge{{A: c(0, 0), B: c(1, 0), Weight: 0}}, gridgraph.ErrBadWeight},
		{"Asymmetric", []gridgraph.Edge{
			{A: c(0, 0), B: c(1, 1), Weight: 2},
			{A: c(1, 1), B: c(0, 0), Weight: 5},
		}, gridgraph.ErrAsymmetricWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraphFromEdges(labels, tc.edges)
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := gridgraph.NewGridGraphFromEdges(gridgraph.MustParseLayout("...", "...", "..."),
		[]gridgraph.Edge{{A: c(0, 0), B: c(2, 2), Weight: 1}})
	require.ErrorIs(t, err, gridgraph.ErrNotAdjacent)
}

// TestNewGridGraphFromEdges_Duplicates accepts an identical repeated pair once.
func TestNewGridGraphFromEdges_Duplicates(t *testing.T) {
	a, b := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 1}
	gg, err := gridgraph.NewGridGraphFromEdges(gridgraph.MustParseLayout("..", ".."),
		[]gridgraph.Edge{{A: a, B: b, Weight: 4}, {A: b, B: a, Weight: 4}})
	require.NoError(t, err)

	assert.Equal(t, 1, gg.EdgeCount())
	w, ok := gg.Weight(b, a)
	require.True(t, ok)
	assert.Equal(t, int64(4), w)
	assert.Equal(t, []gridgraph.Cell{b}, gg.Neighbors(a))
	assert.Empty(t, gg.Neighbors(gridgraph.Cell{Row: 0, Col: 1}))
}

//----------------------------------------------------------------------------//
// Endpoints
//----------------------------------------------------------------------------//

func TestEndpoints(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(gridgraph.MustParseLayout("..G", "W#.", "S.."))
	require.NoError(t, err)
	start, goal, err := gg.Endpoints()
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{Row: 2, Col: 0}, start)
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 2}, goal)

	for _, rows := range [][]string{{"...", "..G"}, {"S.G", "S.."}, {"S..", "..."}} {
		gg, err := gridgraph.NewGridGraph(gridgraph.MustParseLayout(rows...))
		require.NoError(t, err)
		_, _, err = gg.Endpoints()
		assert.ErrorIs(t, err, gridgraph.ErrEndpointCount, "%v", rows)
	}
}

// randomLabels fills an n×n grid with roughly 20% hazards and 10% walls.
func randomLabels(rng *rand.Rand, n int) [][]gridgraph.Label {
	labels := make([][]gridgraph.Label, n)
	for r := range labels {
		labels[r] = make([]gridgraph.Label, n)
		for c := range labels[r] {
			switch x := rng.Intn(10); {
			case x < 2:
				labels[r][c] = gridgraph.Hazard
			case x < 3:
				labels[r][c] = gridgraph.Blocked
			}
		}
	}

	return labels
}
