package navgrid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/geom"
	"github.com/katalvlaran/gridnav/navgrid"
)

// counter records how many times each block signal of one cell fired.
type counter struct {
	block, unblock, static, unstatic, cost int
}

func watch(c *navgrid.Cell) *counter {
	n := &counter{}
	c.OnBlock().Connect(func(navgrid.Event) { n.block++ })
	c.OnUnblock().Connect(func(navgrid.Event) { n.unblock++ })
	c.OnStaticBlock().Connect(func(navgrid.Event) { n.static++ })
	c.OnStaticUnblock().Connect(func(navgrid.Event) { n.unstatic++ })
	c.OnCostChange().Connect(func(navgrid.Event) { n.cost++ })
	return n
}

func mustGrid(t testing.TB, w, h int, opts ...navgrid.Option) *navgrid.Grid {
	t.Helper()
	g, err := navgrid.New(w, h, opts...)
	require.NoError(t, err)
	return g
}

func TestCell_BlockFiresOnTransitionsOnly(t *testing.T) {
	g := mustGrid(t, 3, 3)
	c := g.At(1, 1)
	n := watch(c)

	c.Block()
	c.Block()
	c.Block()
	assert.Equal(t, 1, n.block)
	assert.Equal(t, 3, c.DynamicBlocks())

	require.NoError(t, c.Unblock())
	require.NoError(t, c.Unblock())
	assert.Zero(t, n.unblock)
	require.NoError(t, c.Unblock())
	assert.Equal(t, 1, n.unblock)
	assert.False(t, c.Blocked())
}

// TestCell_BlockTransitionsRandomised drives a random block/unblock sequence
// and checks every signal against the observed state transitions.
func TestCell_BlockTransitionsRandomised(t *testing.T) {
	g := mustGrid(t, 2, 2)
	c := g.At(0, 0)
	n := watch(c)
	rng := rand.New(rand.NewSource(7))

	wantBlock, wantUnblock := 0, 0
	for i := 0; i < 2000; i++ {
		before := c.Blocked()
		switch rng.Intn(4) {
		case 0:
			c.Block()
		case 1:
			c.StaticBlock()
		case 2:
			if c.DynamicBlocks() > 0 {
				require.NoError(t, c.Unblock())
			}
		case 3:
			if c.StaticBlocks() > 0 {
				require.NoError(t, c.StaticUnblock())
			}
		}
		after := c.Blocked()
		if !before && after {
			wantBlock++
		}
		if before && !after {
			wantUnblock++
		}
		require.Equal(t, wantBlock, n.block, "step %d", i)
		require.Equal(t, wantUnblock, n.unblock, "step %d", i)
	}
}

func TestCell_StaticSignals(t *testing.T) {
	g := mustGrid(t, 2, 2)
	c := g.At(1, 0)
	n := watch(c)

	c.Block()
	c.StaticBlock()
	assert.Equal(t, 1, n.block, "combined state already blocked")
	assert.Equal(t, 1, n.static)
	assert.True(t, c.StaticallyBlocked())

	require.NoError(t, c.StaticUnblock())
	assert.Equal(t, 1, n.unstatic)
	assert.Zero(t, n.unblock, "still dynamically blocked")

	require.NoError(t, c.Unblock())
	assert.Equal(t, 1, n.unblock)
}

func TestCell_OverUnblock(t *testing.T) {
	g := mustGrid(t, 2, 2)
	c := g.At(0, 1)

	err := c.Unblock()
	assert.ErrorIs(t, err, navgrid.ErrOverUnblock)
	assert.Zero(t, c.DynamicBlocks())

	err = c.StaticUnblock()
	assert.ErrorIs(t, err, navgrid.ErrOverUnblock)
	assert.Zero(t, c.StaticBlocks())

	// dynamic and static counters are independent
	c.StaticBlock()
	assert.ErrorIs(t, c.Unblock(), navgrid.ErrOverUnblock)
	assert.Equal(t, 1, c.StaticBlocks())
}

func TestCell_Costs(t *testing.T) {
	g := mustGrid(t, 2, 2, navgrid.WithDefaultCost(2))
	c := g.At(0, 0)
	n := watch(c)

	assert.Equal(t, 2.0, c.BaseCost())
	c.SetBaseCost(2)
	assert.Zero(t, n.cost, "unchanged base cost is silent")
	c.SetBaseCost(3)
	assert.Equal(t, 1, n.cost)

	c.AddTemporaryCost(0)
	assert.Equal(t, 1, n.cost, "zero delta is silent")
	c.AddTemporaryCost(1.5)
	assert.Equal(t, 4.5, c.TotalCost())
	c.RemoveTemporaryCost(1.5)
	assert.Equal(t, 3.0, c.TotalCost())
	assert.Equal(t, 3, n.cost)
}

func TestCell_NeighborsOrthogonal(t *testing.T) {
	g := mustGrid(t, 3, 3)
	c := g.At(1, 1)
	require.Equal(t, 4, c.NeighborCount())

	want := []geom.Point{{X: 1, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}, {X: 0, Y: 1}}
	for i, p := range want {
		n := c.Neighbor(i)
		require.NotNil(t, n, "slot %d", i)
		assert.Equal(t, p, n.Position())
	}
	assert.Nil(t, c.Neighbor(4), "diagonal slot on a 4-connected grid")
	assert.Nil(t, c.Neighbor(-1))

	corner := g.At(0, 0)
	assert.Nil(t, corner.Neighbor(0), "north of the top row is out of bounds")
	assert.Nil(t, corner.Neighbor(3), "west of column 0 is out of bounds")
}

func TestCell_NeighborCacheFollowsBlocking(t *testing.T) {
	g := mustGrid(t, 3, 3)
	c := g.At(1, 1)
	require.NotNil(t, c.Neighbor(2)) // east, initialises the cache

	require.NoError(t, g.StaticBlock(geom.Pt(2, 1)))
	assert.Nil(t, c.Neighbor(2))

	g.At(2, 1).Block()
	require.NoError(t, g.StaticUnblock(geom.Pt(2, 1)))
	assert.Nil(t, c.Neighbor(2), "still dynamically blocked")

	require.NoError(t, g.Unblock(geom.Pt(2, 1)))
	require.NotNil(t, c.Neighbor(2))
	assert.Equal(t, geom.Pt(2, 1), c.Neighbor(2).Position())
}

func TestCell_DiagonalGating(t *testing.T) {
	const ne = 4
	cases := []struct {
		name    string
		blocked []geom.Point
		linked  bool
	}{
		{"Open", nil, true},
		{"DiagonalBlocked", []geom.Point{{X: 2, Y: 0}}, false},
		{"EastFlankBlocked", []geom.Point{{X: 2, Y: 1}}, false},
		{"NorthFlankBlocked", []geom.Point{{X: 1, Y: 0}}, false},
		{"UnrelatedBlocked", []geom.Point{{X: 0, Y: 2}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, 3, 3, navgrid.WithDiagonals(true))
			c := g.At(1, 1)
			require.Equal(t, 8, c.NeighborCount())
			require.True(t, navgrid.IsDiagonal(ne))
			require.Equal(t, geom.Pt(1, -1), navgrid.Offset(ne))

			for _, p := range tc.blocked {
				require.NoError(t, g.StaticBlock(p))
			}
			if tc.linked {
				require.NotNil(t, c.Neighbor(ne))
				assert.Equal(t, geom.Pt(2, 0), c.Neighbor(ne).Position())
			} else {
				assert.Nil(t, c.Neighbor(ne))
			}

			// lifting every block restores the link
			for _, p := range tc.blocked {
				require.NoError(t, g.StaticUnblock(p))
			}
			assert.NotNil(t, c.Neighbor(ne))
		})
	}
}

func TestCell_DiagonalAtGridEdge(t *testing.T) {
	g := mustGrid(t, 2, 2, navgrid.WithDiagonals(true))
	c := g.At(0, 1)
	assert.Nil(t, c.Neighbor(5), "NW leaves the grid")
	assert.Nil(t, c.Neighbor(7), "SW leaves the grid")
	require.NotNil(t, c.Neighbor(4))
	assert.Equal(t, geom.Pt(1, 0), c.Neighbor(4).Position())
}
