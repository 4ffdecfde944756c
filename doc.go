// Package gridnav is the root of a 2D grid navigation toolkit: a cost grid
// with reference-counted blocking, best-first path search with budgets and
// best-effort results, and agents that move along those paths while keeping
// out of each other's way.
//
// What is inside:
//
//	geom/       integer cells and continuous vectors
//	signal/     synchronous observer lists with disconnectable subscriptions
//	navgrid/    Grid, Cell (costs, static/dynamic blocks, change signals), Lease
//	pathfind/   Search: A* over a Grid with node budget and success radius
//	navagent/   Agent: occupancy, lookahead leases, re-search on blockage
//	gridgraph/  region labelling and minimum wall breaches over a Grid
//	scenario/   YAML scenarios and a headless frame-by-frame runner
//	cmd/navsim  command-line front end with SQLite run history
//
// Quick start:
//
//	g, _ := navgrid.New(20, 20)
//	_ = g.StaticBlock(geom.Pt(8, 3))
//	s, _ := pathfind.New(g, geom.Pt(0, 0), geom.Pt(19, 19))
//	for _, w := range s.Path() {
//		fmt.Println(w.Position, w.Cost)
//	}
//
// Everything is single-threaded: a Grid and the agents on it must be driven
// from one goroutine.
package gridnav
