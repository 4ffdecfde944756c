package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/geom"
	"github.com/katalvlaran/gridnav/gridgraph"
)

func points(gg *gridgraph.GridGraph, path []int) []geom.Point {
	out := make([]geom.Point, len(path))
	for i, idx := range path {
		out[i] = gg.Coordinate(idx)
	}
	return out
}

// TestExpandIsland_BasicLine: ". # ." needs the middle wall cleared.
func TestExpandIsland_BasicLine(t *testing.T) {
	gg := build(t, fromRows(t, ".#."), gridgraph.Conn4, gridgraph.StaticOnly)
	require.Len(t, gg.ConnectedComponents(), 2)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, points(gg, path))
}

// TestExpandIsland_MediumRow: three walls between two open ends.
func TestExpandIsland_MediumRow(t *testing.T) {
	gg := build(t, fromRows(t, ".###."), gridgraph.Conn4, gridgraph.StaticOnly)
	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, cost)
	assert.Len(t, path, 5)
}

// TestExpandIsland_ThinnestWall prefers crossing a wall where it is one cell thick.
//
//	. # # .
//	. # . .
//	. # # .
func TestExpandIsland_ThinnestWall(t *testing.T) {
	gg := build(t, fromRows(t,
		".##.",
		".#..",
		".##.",
	), gridgraph.Conn4, gridgraph.StaticOnly)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Contains(t, points(gg, path), geom.Pt(1, 1))
}

func TestExpandIsland_SameComponent(t *testing.T) {
	gg := build(t, fromRows(t, "..", ".."), gridgraph.Conn4, gridgraph.StaticOnly)
	path, cost, err := gg.ExpandIsland(0, 0)
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Len(t, path, 1)
}

// TestExpandIsland_InvalidIndices ensures invalid component indices yield ErrComponentIndex.
func TestExpandIsland_InvalidIndices(t *testing.T) {
	gg := build(t, fromRows(t, ".#."), gridgraph.Conn4, gridgraph.StaticOnly)

	_, _, err := gg.ExpandIsland(-1, 1)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, _, err = gg.ExpandIsland(0, 2)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}
