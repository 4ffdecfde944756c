package gridgraph

import (
	"errors"

	"github.com/katalvlaran/gridnav/geom"
	"github.com/katalvlaran/gridnav/navgrid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNilGrid indicates NewGridGraph was given a nil grid.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	// Cells touching only at a corner count as connected.
	Conn8
)

// Mode selects which cells count as walls.
type Mode int

const (
	// StaticOnly treats statically blocked cells as walls; agents are ignored.
	StaticOnly Mode = iota
	// AnyBlocked also treats dynamically blocked (occupied) cells as walls.
	AnyBlocked
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Mode chooses what counts as a wall.
	Mode Mode
}

// DefaultGridOptions returns Conn4 and StaticOnly. Conn4 matches what an
// agent can actually traverse, since diagonal steps never cut corners.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn4,
		Mode: StaticOnly,
	}
}

// GridGraph views a navgrid.Grid as a graph of open cells.
// It holds no snapshot: every query reads the live grid.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	Mode            Mode
	grid            *navgrid.Grid
	neighborOffsets []geom.Point
}
