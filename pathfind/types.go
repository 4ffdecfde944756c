package pathfind

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridnav/geom"
)

// Sentinel errors for Search construction.
var (
	// ErrNilGrid is returned when a nil grid is passed to New.
	ErrNilGrid = errors.New("pathfind: grid is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// DiagonalMultiplier scales the cost of a diagonal step (√2 approximation).
const DiagonalMultiplier = 1.4

// epsilon absorbs floating-point noise in distance comparisons.
const epsilon = 1e-9

// Waypoint is one step of a path: the cell reached and the cost of the step
// that reached it.
type Waypoint struct {
	Position geom.Point
	Cost     float64
}

// Options holds the tunables of a Search.
type Options struct {
	// MinAcceptableDistance is the success radius around the goal.
	MinAcceptableDistance float64
	// MaxNodes bounds the number of expanded nodes; ≤ 0 means unlimited.
	MaxNodes int64
	// OnExpand is called with each expanded position and the running count.
	OnExpand func(p geom.Point, expanded int64)

	err error
}

// Option configures a Search. Invalid values are recorded and surfaced as
// ErrOptionViolation by New.
type Option func(*Options)

// DefaultOptions returns a zero success radius, no budget and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MinAcceptableDistance: 0,
		MaxNodes:              -1,
		OnExpand:              func(geom.Point, int64) {},
	}
}

// WithMinAcceptableDistance stops the search at the first node within d of
// the goal. d must be finite and non-negative.
func WithMinAcceptableDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			o.err = fmt.Errorf("%w: MinAcceptableDistance must be finite and non-negative (%v)", ErrOptionViolation, d)
			return
		}
		o.MinAcceptableDistance = d
	}
}

// WithMaxNodes limits the number of expanded nodes. n ≤ 0 disables the limit.
func WithMaxNodes(n int64) Option {
	return func(o *Options) { o.MaxNodes = n }
}

// WithOnExpand registers a hook run for every expanded node.
func WithOnExpand(fn func(p geom.Point, expanded int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
