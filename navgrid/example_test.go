package navgrid_test

import (
	"fmt"

	"github.com/katalvlaran/gridnav/geom"
	"github.com/katalvlaran/gridnav/navgrid"
)

// ExampleCell_Neighbor shows how a static wall removes neighbour links and
// how the links come back once the wall is lifted.
func ExampleCell_Neighbor() {
	g, _ := navgrid.New(3, 3, navgrid.WithDiagonals(true))
	centre := g.At(1, 1)

	count := func() int {
		n := 0
		for i := 0; i < centre.NeighborCount(); i++ {
			if centre.Neighbor(i) != nil {
				n++
			}
		}
		return n
	}

	fmt.Println("open:", count())
	_ = g.StaticBlock(geom.Pt(1, 0)) // north wall also gates NE and NW
	fmt.Println("north walled:", count())
	_ = g.StaticUnblock(geom.Pt(1, 0))
	fmt.Println("lifted:", count())

	// Output:
	// open: 8
	// north walled: 5
	// lifted: 8
}

// ExampleNewLease demonstrates a scoped temporary cost.
func ExampleNewLease() {
	g, _ := navgrid.New(2, 2)
	c := g.At(0, 0)

	l, _ := navgrid.NewLease(g, geom.Pt(0, 0), 2.5)
	fmt.Println("leased:", c.TotalCost())
	l.Release()
	fmt.Println("released:", c.TotalCost())

	// Output:
	// leased: 3.5
	// released: 1
}
