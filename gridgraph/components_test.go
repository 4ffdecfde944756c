package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/geom"
	"github.com/katalvlaran/gridnav/gridgraph"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a 4×3 grid
// with orthogonal connectivity.
//
//	# . . #
//	. . # #
//	# # . .
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	gg := build(t, fromRows(t,
		"#..#",
		"..##",
		"##..",
	), gridgraph.Conn4, gridgraph.StaticOnly)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)
}

// TestConnectedComponents_Diagonal8 checks that corner contact joins cells
// under Conn8 only.
//
//	. # # # .
//	# . # . #
//	# # . # #
//	# . # . #
//	. # # # .
func TestConnectedComponents_Diagonal8(t *testing.T) {
	g := fromRows(t,
		".###.",
		"#.#.#",
		"##.##",
		"#.#.#",
		".###.",
	)
	comps := build(t, g, gridgraph.Conn8, gridgraph.StaticOnly).ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 9)

	assert.Len(t, build(t, g, gridgraph.Conn4, gridgraph.StaticOnly).ConnectedComponents(), 9)
}

// TestConnectedComponents_EdgeCases covers an all-wall grid and a single open cell.
func TestConnectedComponents_EdgeCases(t *testing.T) {
	walls := build(t, fromRows(t, "##", "##"), gridgraph.Conn4, gridgraph.StaticOnly)
	assert.Empty(t, walls.ConnectedComponents())
	assert.Equal(t, []int{-1, -1, -1, -1}, walls.Labels())

	single := build(t, fromRows(t, "#."), gridgraph.Conn4, gridgraph.StaticOnly)
	comps := single.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Equal(t, []int{1}, comps[0])
}

func TestLabels_MatchComponents(t *testing.T) {
	gg := build(t, fromRows(t,
		"..#..",
		"..#..",
		"#####",
		"...#.",
	), gridgraph.Conn4, gridgraph.StaticOnly)

	labels := gg.Labels()
	comps := gg.ConnectedComponents()
	require.Len(t, comps, 4)
	for id, comp := range comps {
		for _, i := range comp {
			assert.Equal(t, id, labels[i])
		}
	}
	assert.Equal(t, 0, gg.RegionOf(geom.Pt(0, 0)))
	assert.Equal(t, 1, gg.RegionOf(geom.Pt(4, 1)))
	assert.Equal(t, -1, gg.RegionOf(geom.Pt(2, 0)))
	assert.Equal(t, -1, gg.RegionOf(geom.Pt(9, 9)))
}

func TestConnected_Mode(t *testing.T) {
	g := fromRows(t,
		".@.",
		"#@#",
	)
	a, b := geom.Pt(0, 0), geom.Pt(2, 0)

	assert.True(t, build(t, g, gridgraph.Conn4, gridgraph.StaticOnly).Connected(a, b))
	assert.False(t, build(t, g, gridgraph.Conn4, gridgraph.AnyBlocked).Connected(a, b))

	require.NoError(t, g.Unblock(geom.Pt(1, 0)))
	assert.True(t, build(t, g, gridgraph.Conn4, gridgraph.AnyBlocked).Connected(a, b),
		"queries read the live grid")

	assert.False(t, build(t, g, gridgraph.Conn4, gridgraph.StaticOnly).Connected(a, geom.Pt(0, 1)))
	assert.False(t, build(t, g, gridgraph.Conn4, gridgraph.StaticOnly).Connected(a, geom.Pt(-1, 0)))
}
