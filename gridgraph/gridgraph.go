package gridgraph

import (
	"github.com/katalvlaran/gridnav/geom"
	"github.com/katalvlaran/gridnav/navgrid"
)

// NewGridGraph wraps g for region analysis.
// Returns ErrNilGrid if g is nil.
// Algorithmic complexity: O(1); the grid is not copied.
func NewGridGraph(g *navgrid.Grid, opts GridOptions) (*GridGraph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	// Precompute neighbor offsets based on connectivity
	var offsets []geom.Point
	if opts.Conn == Conn8 {
		offsets = []geom.Point{{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1}}
	} else {
		offsets = []geom.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	}
	gg := &GridGraph{
		Width:           g.Width(),
		Height:          g.Height(),
		Conn:            opts.Conn,
		Mode:            opts.Mode,
		grid:            g,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p geom.Point) bool {
	return gg.grid.InBounds(p)
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() []geom.Point {
	return gg.neighborOffsets
}

// Wall reports whether p is a wall under gg.Mode. Out-of-bounds cells are walls.
func (gg *GridGraph) Wall(p geom.Point) bool {
	if gg.Mode == AnyBlocked {
		return gg.grid.Blocked(p)
	}
	return gg.grid.StaticallyBlocked(p)
}

// Index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(p geom.Point) int {
	return p.Y*gg.Width + p.X
}

// Coordinate converts a row-major index back to a cell position.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) geom.Point {
	return geom.Pt(idx%gg.Width, idx/gg.Width)
}
