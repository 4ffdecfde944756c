package scenario

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridnav/geom"
	"github.com/katalvlaran/gridnav/navagent"
	"github.com/katalvlaran/gridnav/navgrid"
)

// ErrInvalid reports a scenario that cannot be built.
var ErrInvalid = errors.New("scenario: invalid scenario")

const (
	// DefaultDT is the simulated time step per frame, in seconds.
	DefaultDT = 0.1
	// DefaultMaxFrames caps the number of simulated frames.
	DefaultMaxFrames = 2000
)

// Scenario is a complete simulation setup.
type Scenario struct {
	Name       string           `yaml:"name"`
	Grid       GridConfig       `yaml:"grid"`
	Walls      []Rect           `yaml:"walls"`
	Openings   []geom.Point     `yaml:"openings"`
	Costs      []CostOverride   `yaml:"costs"`
	Agents     []AgentConfig    `yaml:"agents"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// GridConfig defines the grid dimensions and defaults.
type GridConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	DefaultCost float64 `yaml:"default_cost"`
	Diagonals   bool    `yaml:"diagonals"`
}

// Rect is an inclusive rectangle of cells.
type Rect struct {
	From geom.Point `yaml:"from"`
	To   geom.Point `yaml:"to"`
}

// Cells calls fn for every cell of r in row-major order.
func (r Rect) Cells(fn func(p geom.Point)) {
	x0, x1 := minMax(r.From.X, r.To.X)
	y0, y1 := minMax(r.From.Y, r.To.Y)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			fn(geom.Pt(x, y))
		}
	}
}

// CostOverride replaces the base cost of one cell.
type CostOverride struct {
	At   geom.Point `yaml:"at"`
	Cost float64    `yaml:"cost"`
}

// AgentConfig places one agent. Zero Speed means navagent.DefaultSpeed;
// a nil SearchBudget means navagent.DefaultSearchBudget.
type AgentConfig struct {
	Name               string     `yaml:"name"`
	Start              geom.Point `yaml:"start"`
	Goal               geom.Point `yaml:"goal"`
	Speed              float64    `yaml:"speed"`
	AcceptableDistance float64    `yaml:"acceptable_distance"`
	SearchBudget       *int64     `yaml:"search_budget"`
}

// Budget returns the effective search budget.
func (a AgentConfig) Budget() int64 {
	if a.SearchBudget == nil {
		return navagent.DefaultSearchBudget
	}
	return *a.SearchBudget
}

// SimulationConfig controls the frame loop.
type SimulationConfig struct {
	DT        float64 `yaml:"dt"`
	MaxFrames int     `yaml:"max_frames"`
}

// applyDefaults fills zero values with package defaults.
func (sc *Scenario) applyDefaults() {
	if sc.Name == "" {
		sc.Name = "unnamed"
	}
	if sc.Grid.DefaultCost == 0 {
		sc.Grid.DefaultCost = navgrid.DefaultCost
	}
	if sc.Simulation.DT == 0 {
		sc.Simulation.DT = DefaultDT
	}
	if sc.Simulation.MaxFrames == 0 {
		sc.Simulation.MaxFrames = DefaultMaxFrames
	}
	for i := range sc.Agents {
		a := &sc.Agents[i]
		if a.Name == "" {
			a.Name = fmt.Sprintf("agent-%d", i)
		}
		if a.Speed == 0 {
			a.Speed = navagent.DefaultSpeed
		}
	}
}

// Validate checks dimensions, coordinates and agent placement.
func (sc *Scenario) Validate() error {
	g := sc.Grid
	if g.Width < 1 || g.Height < 1 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalid, g.Width, g.Height)
	}
	if g.DefaultCost < 0 {
		return fmt.Errorf("%w: default_cost %v", ErrInvalid, g.DefaultCost)
	}
	in := func(p geom.Point) bool {
		return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
	}
	for i, w := range sc.Walls {
		if !in(w.From) || !in(w.To) {
			return fmt.Errorf("%w: wall %d %v-%v out of bounds", ErrInvalid, i, w.From, w.To)
		}
	}
	for _, p := range sc.Openings {
		if !in(p) {
			return fmt.Errorf("%w: opening %v out of bounds", ErrInvalid, p)
		}
	}
	for _, c := range sc.Costs {
		if !in(c.At) || c.Cost < 0 {
			return fmt.Errorf("%w: cost %v at %v", ErrInvalid, c.Cost, c.At)
		}
	}
	if sc.Simulation.DT <= 0 || sc.Simulation.MaxFrames < 0 {
		return fmt.Errorf("%w: simulation dt=%v max_frames=%d", ErrInvalid, sc.Simulation.DT, sc.Simulation.MaxFrames)
	}

	starts := make(map[geom.Point]string, len(sc.Agents))
	for _, a := range sc.Agents {
		if !in(a.Start) || !in(a.Goal) {
			return fmt.Errorf("%w: agent %s start %v goal %v", ErrInvalid, a.Name, a.Start, a.Goal)
		}
		if a.Speed < 0 || a.AcceptableDistance < 0 {
			return fmt.Errorf("%w: agent %s speed %v acceptable_distance %v", ErrInvalid, a.Name, a.Speed, a.AcceptableDistance)
		}
		if other, ok := starts[a.Start]; ok {
			return fmt.Errorf("%w: agents %s and %s share start %v", ErrInvalid, other, a.Name, a.Start)
		}
		starts[a.Start] = a.Name
	}
	return nil
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
