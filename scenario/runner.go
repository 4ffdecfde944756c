package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridnav/geom"
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/navagent"
	"github.com/katalvlaran/gridnav/navgrid"
)

// Report summarises one run.
type Report struct {
	Scenario string
	// Frames is the number of frames simulated.
	Frames int
	// Collisions counts frames in which two agents shared a cell.
	Collisions int
	Elapsed    time.Duration
	Agents     []AgentResult
}

// AgentResult is the outcome for one agent.
type AgentResult struct {
	Name  string
	Start geom.Point
	Goal  geom.Point
	End   geom.Point
	// Reachable is false when static walls separate start and goal.
	Reachable bool
	Reached   bool
	// FirstComplete reports whether the agent's first search reached the goal.
	FirstComplete bool
	FirstPath     []geom.Point
	Recomputes    int
	Travelled     float64
}

// Reached returns how many agents arrived.
func (r Report) Reached() int {
	n := 0
	for _, a := range r.Agents {
		if a.Reached {
			n++
		}
	}
	return n
}

// Build creates the grid described by sc: walls first, then openings, then
// cost overrides.
func Build(sc *Scenario) (*navgrid.Grid, error) {
	g, err := navgrid.New(sc.Grid.Width, sc.Grid.Height,
		navgrid.WithDefaultCost(sc.Grid.DefaultCost),
		navgrid.WithDiagonals(sc.Grid.Diagonals),
	)
	if err != nil {
		return nil, fmt.Errorf("scenario: build grid: %w", err)
	}
	for _, w := range sc.Walls {
		w.Cells(func(p geom.Point) {
			if !g.StaticallyBlocked(p) {
				_ = g.StaticBlock(p)
			}
		})
	}
	for _, p := range sc.Openings {
		for g.StaticallyBlocked(p) {
			if err := g.StaticUnblock(p); err != nil {
				return nil, fmt.Errorf("scenario: opening %v: %w", p, err)
			}
		}
	}
	for _, c := range sc.Costs {
		g.Cell(c.At).SetBaseCost(c.Cost)
	}
	return g, nil
}

// Run simulates sc until every agent is idle, the frame cap is reached, or
// ctx is done. On cancellation the partial report is returned with ctx's error.
func Run(ctx context.Context, sc *Scenario, logger *log.Logger) (Report, error) {
	if logger == nil {
		logger = log.Default().WithPrefix("scenario")
	}
	report := Report{Scenario: sc.Name}
	began := time.Now()

	g, err := Build(sc)
	if err != nil {
		return report, err
	}
	regions, err := gridgraph.NewGridGraph(g, gridgraph.DefaultGridOptions())
	if err != nil {
		return report, err
	}

	agents := make([]*navagent.Agent, 0, len(sc.Agents))
	defer func() {
		for _, a := range agents {
			_ = a.Close()
		}
	}()
	for _, ac := range sc.Agents {
		a, err := navagent.New(g, ac.Start,
			navagent.WithSpeed(ac.Speed),
			navagent.WithSearchBudget(ac.Budget()),
			navagent.WithLogger(logger.WithPrefix(ac.Name)),
		)
		if err != nil {
			return report, fmt.Errorf("scenario: agent %s: %w", ac.Name, err)
		}
		agents = append(agents, a)
		report.Agents = append(report.Agents, AgentResult{
			Name:      ac.Name,
			Start:     ac.Start,
			Goal:      ac.Goal,
			Reachable: regions.Connected(ac.Start, ac.Goal),
		})
	}
	for i, ac := range sc.Agents {
		agents[i].SetGoal(ac.Goal, ac.AcceptableDistance)
	}
	logger.Info("run started", "scenario", sc.Name, "agents", len(agents),
		"grid", fmt.Sprintf("%dx%d", g.Width(), g.Height()))

	var runErr error
	for frame := 0; frame < sc.Simulation.MaxFrames; frame++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		for i, a := range agents {
			if err := a.Update(sc.Simulation.DT); err != nil {
				runErr = fmt.Errorf("scenario: frame %d agent %s: %w", frame, sc.Agents[i].Name, err)
				break
			}
			res := &report.Agents[i]
			if res.FirstPath == nil && a.Recomputes() > 0 {
				for _, w := range a.Waypoints() {
					res.FirstPath = append(res.FirstPath, w.Position)
				}
				res.FirstComplete = a.Complete()
			}
		}
		if runErr != nil {
			break
		}
		report.Frames = frame + 1
		if shared(agents) {
			report.Collisions++
			logger.Warn("agents share a cell", "frame", frame)
		}
		if allIdle(agents) {
			break
		}
	}

	for i, a := range agents {
		res := &report.Agents[i]
		res.End = a.Cell()
		res.Reached = !a.Pathfinding()
		res.Recomputes = a.Recomputes()
		res.Travelled = a.Travelled()
		logger.Debug("agent finished", "agent", res.Name, "end", res.End,
			"reached", res.Reached, "recomputes", res.Recomputes)
	}
	report.Elapsed = time.Since(began)
	logger.Info("run finished", "scenario", sc.Name, "frames", report.Frames,
		"reached", report.Reached(), "collisions", report.Collisions, "elapsed", report.Elapsed)
	return report, runErr
}

func shared(agents []*navagent.Agent) bool {
	seen := mapset.New[geom.Point]()
	for _, a := range agents {
		if seen.Has(a.Cell()) {
			return true
		}
		seen.Put(a.Cell())
	}
	return false
}

func allIdle(agents []*navagent.Agent) bool {
	for _, a := range agents {
		if !a.Idle() {
			return false
		}
	}
	return true
}
