package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridnav/geom"
	"github.com/katalvlaran/gridnav/navgrid"
	"github.com/katalvlaran/gridnav/pathfind"
)

// BenchmarkSearch_Open measures a corner-to-corner search on an empty 128×128 grid.
func BenchmarkSearch_Open(b *testing.B) {
	g := mustGrid(b, 128, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := pathfind.New(g, geom.Pt(0, 0), geom.Pt(127, 127))
		_ = s.Path()
	}
}

// BenchmarkSearch_Scattered measures the same query with ~20% static walls
// and diagonals enabled.
func BenchmarkSearch_Scattered(b *testing.B) {
	g := mustGrid(b, 128, 128, navgrid.WithDiagonals(true))
	rng := rand.New(rand.NewSource(42))
	g.Cells(func(c *navgrid.Cell) bool {
		p := c.Position()
		if p != (geom.Point{}) && p != geom.Pt(127, 127) && rng.Intn(5) == 0 {
			c.StaticBlock()
		}
		return true
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := pathfind.New(g, geom.Pt(0, 0), geom.Pt(127, 127))
		_ = s.Path()
	}
}
