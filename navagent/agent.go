package navagent

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridnav/geom"
	"github.com/katalvlaran/gridnav/navgrid"
	"github.com/katalvlaran/gridnav/pathfind"
	"github.com/katalvlaran/gridnav/signal"
)

// Agent is a moving occupant of a Grid. It does not own the grid.
type Agent struct {
	grid   *navgrid.Grid
	logger *log.Logger

	pos        geom.Vec
	occupied   geom.Point
	goal       geom.Point
	acceptable float64
	speed      float64
	budget     int64

	search *pathfind.Search
	path   []pathfind.Waypoint
	index  int
	dirty  bool

	leases []*navgrid.Lease
	subs   []signal.Subscription

	recomputes int
	travelled  float64
	closed     bool
}

// New places an agent at the centre of start and blocks that cell.
// The goal defaults to start, so a fresh agent is idle.
func New(g *navgrid.Grid, start geom.Point, opts ...Option) (*Agent, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Block(start); err != nil {
		return nil, fmt.Errorf("navagent: place at %v: %w", start, err)
	}

	return &Agent{
		grid:     g,
		logger:   cfg.Logger,
		pos:      start.Center(),
		occupied: start,
		goal:     start,
		speed:    cfg.Speed,
		budget:   cfg.SearchBudget,
		dirty:    true,
	}, nil
}

// Position returns the continuous position in cell units.
func (a *Agent) Position() geom.Vec { return a.pos }

// Cell returns the occupied cell.
func (a *Agent) Cell() geom.Point { return a.occupied }

// SetPosition teleports the agent to the centre of p, moving its block.
func (a *Agent) SetPosition(p geom.Point) error {
	if a.closed {
		return ErrClosed
	}
	if !a.grid.InBounds(p) {
		return fmt.Errorf("navagent: move to %v: %w", p, navgrid.ErrOutOfBounds)
	}
	a.releaseObserved()
	if err := a.occupy(p); err != nil {
		return err
	}
	a.pos = p.Center()
	a.dirty = true
	return nil
}

// Goal returns the target cell.
func (a *Agent) Goal() geom.Point { return a.goal }

// AcceptableDistance returns the arrival radius around the goal.
func (a *Agent) AcceptableDistance() float64 { return a.acceptable }

// SetGoal sets the target cell and the arrival radius (negative means 0).
func (a *Agent) SetGoal(p geom.Point, acceptable float64) {
	a.goal = p
	a.acceptable = math.Max(acceptable, 0)
	a.dirty = true
	a.releaseObserved()
}

// Speed returns the travel speed in cells per second.
func (a *Agent) Speed() float64 { return a.speed }

// SetSpeed changes the travel speed (negative means 0) and re-derives the
// lease window on the current path.
func (a *Agent) SetSpeed(v float64) {
	a.speed = math.Max(v, 0)
	if !a.closed && !a.dirty && a.path != nil {
		a.refreshObserved()
	}
}

// Path returns the current waypoints, recomputing them first if stale.
func (a *Agent) Path() []pathfind.Waypoint {
	if !a.closed && (a.dirty || a.path == nil) {
		a.recompute()
	}
	return a.path
}

// Waypoints returns the cached path without recomputing it.
func (a *Agent) Waypoints() []pathfind.Waypoint { return a.path }

// PathIndex returns the index of the next waypoint to consume.
func (a *Agent) PathIndex() int { return a.index }

// Dirty reports whether the next Update will recompute the path.
func (a *Agent) Dirty() bool { return a.dirty }

// Complete reports whether the last search reached the goal.
func (a *Agent) Complete() bool { return a.search != nil && a.search.Complete() }

// Recomputes returns how many searches the agent has run.
func (a *Agent) Recomputes() int { return a.recomputes }

// Travelled returns the distance moved by Update, in cells.
func (a *Agent) Travelled() float64 { return a.travelled }

// Leases returns the number of active lookahead leases.
func (a *Agent) Leases() int { return len(a.leases) }

// Pathfinding reports whether the agent is farther than its acceptable
// distance from the centre of the goal cell.
func (a *Agent) Pathfinding() bool {
	return a.pos.Distance(a.goal.Center()) > a.acceptable+epsilon
}

// Idle reports whether further Updates would not move the agent: it has
// arrived, or it consumed a best-effort path and has nothing to re-search.
func (a *Agent) Idle() bool {
	if a.closed || !a.Pathfinding() {
		return true
	}
	return a.path != nil && !a.dirty && a.index >= len(a.path)
}

// Update advances the agent by dt seconds.
func (a *Agent) Update(dt float64) error {
	if a.closed {
		return ErrClosed
	}
	if !a.Pathfinding() {
		return nil
	}
	if a.dirty || a.path == nil {
		a.recompute()
	}

	remaining := a.speed * dt
	moved := false
	for remaining > epsilon && a.index < len(a.path) && a.Pathfinding() {
		wp := a.path[a.index].Position
		if wp == a.occupied && a.index < len(a.path)-1 {
			a.index++
			continue
		}
		delta := wp.Center().Sub(a.pos)
		dist := delta.Len()
		if dist <= epsilon {
			a.index++
			continue
		}

		step := math.Min(remaining, dist)
		next := a.pos.Add(delta.Scale(step / dist))
		if cell := next.Floor(); cell != a.occupied {
			if a.grid.Blocked(cell) {
				a.logger.Debug("next cell taken", "cell", cell, "at", a.occupied)
				a.dirty = true
				break
			}
			if err := a.occupy(cell); err != nil {
				return err
			}
		}
		a.pos = next
		a.travelled += step
		remaining -= step
		moved = true
		if dist-step <= epsilon {
			a.index++
		}
	}

	if a.index >= len(a.path) && a.Pathfinding() && !a.dirty && a.search != nil &&
		!a.search.Complete() && a.search.End() != a.search.Start() {
		// budget ran out before the goal; resume from here next frame
		a.dirty = true
	}
	if moved && !a.dirty {
		a.refreshObserved()
	}
	return nil
}

// Close unblocks the occupied cell and drops every lease and watch.
// Calling Close more than once is a no-op.
func (a *Agent) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.releaseObserved()
	if err := a.grid.Unblock(a.occupied); err != nil {
		return fmt.Errorf("navagent: release %v: %w", a.occupied, err)
	}
	return nil
}

// occupy moves the agent's block to p. The occupied field is updated before
// blocking so the agent's own watch ignores the resulting signal.
func (a *Agent) occupy(p geom.Point) error {
	if err := a.grid.Unblock(a.occupied); err != nil {
		return fmt.Errorf("navagent: leave %v: %w", a.occupied, err)
	}
	a.occupied = p
	if err := a.grid.Block(p); err != nil {
		return fmt.Errorf("navagent: enter %v: %w", p, err)
	}
	return nil
}

func (a *Agent) recompute() {
	a.releaseObserved()
	s, err := pathfind.New(a.grid, a.occupied, a.goal,
		pathfind.WithMinAcceptableDistance(a.acceptable),
		pathfind.WithMaxNodes(a.budget),
	)
	if err != nil {
		a.logger.Error("search rejected", "err", err)
		return
	}
	a.search = s
	a.path = s.Path()
	a.index = 0
	a.dirty = false
	a.recomputes++
	a.logger.Debug("path recomputed",
		"from", a.occupied,
		"goal", a.goal,
		"end", s.End(),
		"complete", s.Complete(),
		"waypoints", len(a.path),
		"expanded", s.Expanded(),
	)
	a.refreshObserved()
}

// refreshObserved re-leases the lookahead window and re-watches every
// upcoming waypoint.
func (a *Agent) refreshObserved() {
	a.releaseObserved()
	if a.index >= len(a.path) {
		return
	}
	upcoming := a.path[a.index:]

	window := a.speed * LookaheadFactor
	for i := 0; i < int(math.Floor(window)) && i < len(upcoming); i++ {
		l, err := navgrid.NewLease(a.grid, upcoming[i].Position, window-float64(i))
		if err != nil {
			a.logger.Warn("lease rejected", "cell", upcoming[i].Position, "err", err)
			continue
		}
		a.leases = append(a.leases, l)
	}
	for _, w := range upcoming {
		if c := a.grid.Cell(w.Position); c != nil {
			a.subs = append(a.subs, c.OnBlock().Connect(a.onPathBlocked))
		}
	}
}

func (a *Agent) releaseObserved() {
	for _, l := range a.leases {
		l.Release()
	}
	for _, s := range a.subs {
		s.Disconnect()
	}
	a.leases = a.leases[:0]
	a.subs = a.subs[:0]
}

func (a *Agent) onPathBlocked(e navgrid.Event) {
	if e.Position == a.occupied {
		return
	}
	a.dirty = true
}
