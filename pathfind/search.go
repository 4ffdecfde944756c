package pathfind

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridnav/geom"
	"github.com/katalvlaran/gridnav/navgrid"
)

// Search is a single start→goal query over a grid. Create it with New and
// read the result with Path; the search itself runs once, on first use.
type Search struct {
	grid    *navgrid.Grid
	start   geom.Point
	goal    geom.Point
	options Options

	ran      bool
	found    bool
	end      geom.Point
	path     []Waypoint
	expanded int64
}

// New prepares a search on g from start to goal. Both coordinates are
// clamped into the grid. Returns ErrNilGrid for a nil grid and
// ErrOptionViolation when an option was rejected.
func New(g *navgrid.Grid, start, goal geom.Point, opts ...Option) (*Search, error) {
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

	hi := geom.Point{X: g.Width() - 1, Y: g.Height() - 1}
	return &Search{
		grid:    g,
		start:   geom.Clamp(start, geom.Point{}, hi),
		goal:    geom.Clamp(goal, geom.Point{}, hi),
		options: cfg,
	}, nil
}

// Start returns the (clamped) start position.
func (s *Search) Start() geom.Point { return s.start }

// Goal returns the (clamped) requested goal.
func (s *Search) Goal() geom.Point { return s.goal }

// End returns the position the path actually reaches: the goal, a node
// within the success radius, or the closest node found. Runs the search if
// it has not run yet.
func (s *Search) End() geom.Point {
	s.run()
	return s.end
}

// Complete reports whether the goal (or its success radius) was reached.
func (s *Search) Complete() bool {
	s.run()
	return s.found
}

// Expanded returns the number of nodes expanded by the search.
func (s *Search) Expanded() int64 {
	s.run()
	return s.expanded
}

// Path returns the waypoints from start to End, start first.
// The slice is shared between calls; callers must not modify it.
func (s *Search) Path() []Waypoint {
	s.run()
	return s.path
}

// TotalCost returns the sum of waypoint costs.
func (s *Search) TotalCost() float64 {
	total := 0.0
	for _, w := range s.Path() {
		total += w.Cost
	}
	return total
}

// node is a transient search record; it never outlives one run.
type node struct {
	cell     *navgrid.Cell
	cost     float64 // cost to arrive
	estimate float64 // cost + heuristic
	parent   *node
	corner   bool // reached by a diagonal step
	seq      int64
	stale    bool // superseded by a cheaper entry for the same cell
}

func (s *Search) run() {
	if s.ran {
		return
	}
	s.ran = true

	cfg := s.options
	goal := s.goal
	open := heap.New[*node](func(a, b *node) bool {
		if a.estimate != b.estimate {
			return a.estimate < b.estimate
		}
		return a.seq > b.seq
	})
	openAt := make(map[geom.Point]*node)
	closed := mapset.New[geom.Point]()

	var seq int64
	push := func(n *node) {
		seq++
		n.seq = seq
		open.Push(n)
		openAt[n.cell.Position()] = n
	}

	startNode := &node{cell: s.grid.Cell(s.start)}
	startNode.estimate = heuristic(s.start, goal)
	push(startNode)

	best, bestDist := startNode, s.start.Distance(goal)
	var last *node

	for open.Size() > 0 {
		if cfg.MaxNodes > 0 && s.expanded >= cfg.MaxNodes {
			break
		}
		cur, _ := open.Pop()
		if cur.stale {
			continue
		}
		pos := cur.cell.Position()
		delete(openAt, pos)
		closed.Put(pos)
		s.expanded++
		cfg.OnExpand(pos, s.expanded)

		d := pos.Distance(goal)
		if d < bestDist {
			best, bestDist = cur, d
		}
		if pos == goal || d <= cfg.MinAcceptableDistance+epsilon {
			s.found = true
			last = cur
			break
		}

		for i := 0; i < cur.cell.NeighborCount(); i++ {
			nb := cur.cell.Neighbor(i)
			if nb == nil || nb.Blocked() {
				continue
			}
			np := nb.Position()
			if closed.Has(np) {
				continue
			}
			mult := 1.0
			if navgrid.IsDiagonal(i) {
				mult = DiagonalMultiplier
			}
			cost := cur.cost + nb.TotalCost()*mult
			if existing, ok := openAt[np]; ok {
				if existing.cost < cost {
					continue
				}
				existing.stale = true
			}
			push(&node{
				cell:     nb,
				cost:     cost,
				estimate: cost + heuristic(np, goal),
				parent:   cur,
				corner:   navgrid.IsDiagonal(i),
			})
		}
	}

	if !s.found {
		last = best
		if s.start.Distance(goal) < bestDist {
			last = startNode
		}
	}
	s.end = last.cell.Position()
	s.path = reconstruct(last)
}

// reconstruct walks parent links from n back to the start and returns the
// waypoints in start→n order.
func reconstruct(n *node) []Waypoint {
	var path []Waypoint
	for at := n; at != nil; at = at.parent {
		w := Waypoint{Position: at.cell.Position()}
		if at.parent != nil {
			w.Cost = at.cell.BaseCost()
			if at.corner {
				w.Cost *= DiagonalMultiplier
			}
		}
		path = append(path, w)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// heuristic is the Manhattan distance in grid units.
func heuristic(a, b geom.Point) float64 {
	return float64(a.Manhattan(b))
}
