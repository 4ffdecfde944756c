package navgrid

import (
	"errors"

	"github.com/katalvlaran/gridnav/geom"
)

// Sentinel errors for navgrid operations.
var (
	// ErrEmptyGrid indicates a requested width or height below 1.
	ErrEmptyGrid = errors.New("navgrid: grid must have at least one row and one column")
	// ErrBadCost indicates a negative or non-finite default cost.
	ErrBadCost = errors.New("navgrid: default cost must be finite and non-negative")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("navgrid: coordinate out of bounds")
	// ErrOverUnblock indicates an unblock on a counter that is already zero.
	ErrOverUnblock = errors.New("navgrid: unblocking excessively")
)

// DefaultCost is the base cost of every cell unless WithDefaultCost overrides it.
const DefaultCost = 1.0

// Event is the payload of every Cell signal.
type Event struct {
	Grid     *Grid
	Position geom.Point
}

// Options holds construction-time parameters for a Grid.
type Options struct {
	// DefaultCost is the initial base cost of every cell.
	DefaultCost float64
	// Diagonals enables the four diagonal neighbour slots.
	Diagonals bool
}

// Option configures a Grid at construction.
type Option func(*Options)

// DefaultOptions returns DefaultCost=1.0 and no diagonals.
func DefaultOptions() Options {
	return Options{DefaultCost: DefaultCost}
}

// WithDefaultCost sets the initial base cost of every cell.
func WithDefaultCost(c float64) Option {
	return func(o *Options) { o.DefaultCost = c }
}

// WithDiagonals enables or disables diagonal movement.
func WithDiagonals(enabled bool) Option {
	return func(o *Options) { o.Diagonals = enabled }
}

// Neighbour slot offsets. Slots 0..3 are orthogonal, 4..7 diagonal.
var offsets = [8]geom.Point{
	{X: 0, Y: -1},  // N
	{X: 0, Y: 1},   // S
	{X: 1, Y: 0},   // E
	{X: -1, Y: 0},  // W
	{X: 1, Y: -1},  // NE
	{X: -1, Y: -1}, // NW
	{X: 1, Y: 1},   // SE
	{X: -1, Y: 1},  // SW
}
