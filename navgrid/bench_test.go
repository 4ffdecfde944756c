package navgrid_test

import (
	"testing"

	"github.com/katalvlaran/gridnav/geom"
)

// BenchmarkBlockToggle measures a block/unblock pair on a cell whose
// neighbours all hold live link caches.
func BenchmarkBlockToggle(b *testing.B) {
	g := mustGrid(b, 64, 64)
	p := geom.Pt(32, 32)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			_ = g.At(32+dx, 32+dy).Neighbor(0)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Block(p)
		_ = g.Unblock(p)
	}
}
