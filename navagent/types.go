package navagent

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
)

// Sentinel errors for Agent operations.
var (
	// ErrNilGrid is returned when New receives a nil grid.
	ErrNilGrid = errors.New("navagent: grid is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("navagent: invalid option supplied")
	// ErrClosed is returned by mutating calls after Close.
	ErrClosed = errors.New("navagent: agent is closed")
)

const (
	// DefaultSpeed is the travel speed in cells per second.
	DefaultSpeed = 1.0
	// DefaultSearchBudget bounds the nodes expanded per path recompute.
	DefaultSearchBudget int64 = 100
	// LookaheadFactor sizes the lease window: ⌊LookaheadFactor×speed⌋ waypoints.
	LookaheadFactor = 4.0
)

const epsilon = 1e-6

// Options configures an Agent.
type Options struct {
	Speed        float64
	SearchBudget int64
	Logger       *log.Logger

	err error
}

// Option configures an Agent at construction.
type Option func(*Options)

// DefaultOptions returns speed 1, a budget of 100 nodes and the default
// logger with a "navagent" prefix.
func DefaultOptions() Options {
	return Options{
		Speed:        DefaultSpeed,
		SearchBudget: DefaultSearchBudget,
		Logger:       log.Default().WithPrefix("navagent"),
	}
}

// WithSpeed sets the travel speed in cells per second (finite, ≥ 0).
func WithSpeed(v float64) Option {
	return func(o *Options) {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			o.err = fmt.Errorf("%w: speed must be finite and non-negative (%v)", ErrOptionViolation, v)
			return
		}
		o.Speed = v
	}
}

// WithSearchBudget sets the node budget of each path search; n ≤ 0 removes
// the limit.
func WithSearchBudget(n int64) Option {
	return func(o *Options) { o.SearchBudget = n }
}

// WithLogger replaces the logger used for debug traces.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
