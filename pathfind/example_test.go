package pathfind_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridnav/geom"
	"github.com/katalvlaran/gridnav/navgrid"
	"github.com/katalvlaran/gridnav/pathfind"
)

// ExampleSearch_Path routes around a wall with a single gap.
//
//	S . # . .
//	. . # . .
//	. . . . G
func ExampleSearch_Path() {
	g, _ := navgrid.New(5, 3)
	_ = g.StaticBlock(geom.Pt(2, 0))
	_ = g.StaticBlock(geom.Pt(2, 1))

	s, _ := pathfind.New(g, geom.Pt(0, 0), geom.Pt(4, 2))
	var steps []string
	for _, w := range s.Path() {
		steps = append(steps, w.Position.String())
	}
	fmt.Println(strings.Join(steps, " "))
	fmt.Println("complete:", s.Complete(), "cost:", s.TotalCost())

	// Output:
	// (0,0) (1,0) (1,1) (1,2) (2,2) (3,2) (4,2)
	// complete: true cost: 6
}

// ExampleSearch_Complete shows the best-effort result for a budget that is
// too small to reach the goal.
func ExampleSearch_Complete() {
	g, _ := navgrid.New(20, 1)
	s, _ := pathfind.New(g, geom.Pt(0, 0), geom.Pt(19, 0), pathfind.WithMaxNodes(5))

	fmt.Println("complete:", s.Complete())
	fmt.Println("end:", s.End())
	fmt.Println("waypoints:", len(s.Path()))

	// Output:
	// complete: false
	// end: (4,0)
	// waypoints: 5
}
