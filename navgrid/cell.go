package navgrid

import (
	"fmt"

	"github.com/katalvlaran/gridnav/geom"
	"github.com/katalvlaran/gridnav/signal"
)

// Cell is one square of a Grid. Cells are created by New and live exactly as
// long as their Grid; callers only ever hold *Cell borrowed from it.
type Cell struct {
	grid *Grid
	pos  geom.Point

	baseCost      float64
	temporaryCost float64
	dynamicBlocks int
	staticBlocks  int

	// neighbour cache: grid indices, -1 when the slot has no edge
	links      [8]int
	linksReady bool

	onBlock         signal.Signal[Event]
	onUnblock       signal.Signal[Event]
	onStaticBlock   signal.Signal[Event]
	onStaticUnblock signal.Signal[Event]
	onCostChange    signal.Signal[Event]
}

// Position returns the cell's grid coordinate.
func (c *Cell) Position() geom.Point { return c.pos }

// Grid returns the owning grid.
func (c *Cell) Grid() *Grid { return c.grid }

// BaseCost returns the intrinsic traversal cost.
func (c *Cell) BaseCost() float64 { return c.baseCost }

// SetBaseCost replaces the intrinsic cost and fires OnCostChange if it changed.
func (c *Cell) SetBaseCost(v float64) {
	if v == c.baseCost {
		return
	}
	c.baseCost = v
	c.onCostChange.Emit(c.event())
}

// TemporaryCost returns the sum of all active lease contributions.
func (c *Cell) TemporaryCost() float64 { return c.temporaryCost }

// TotalCost returns BaseCost + TemporaryCost.
func (c *Cell) TotalCost() float64 { return c.baseCost + c.temporaryCost }

// AddTemporaryCost adds delta to the temporary cost. A zero delta is silent.
func (c *Cell) AddTemporaryCost(delta float64) {
	if delta == 0 {
		return
	}
	c.temporaryCost += delta
	c.onCostChange.Emit(c.event())
}

// RemoveTemporaryCost subtracts delta from the temporary cost.
func (c *Cell) RemoveTemporaryCost(delta float64) {
	c.AddTemporaryCost(-delta)
}

// Blocked reports whether either block counter is non-zero.
func (c *Cell) Blocked() bool { return c.dynamicBlocks > 0 || c.staticBlocks > 0 }

// StaticallyBlocked reports whether the static counter is non-zero.
func (c *Cell) StaticallyBlocked() bool { return c.staticBlocks > 0 }

// DynamicBlocks returns the dynamic block counter.
func (c *Cell) DynamicBlocks() int { return c.dynamicBlocks }

// StaticBlocks returns the static block counter.
func (c *Cell) StaticBlocks() int { return c.staticBlocks }

// Block increments the dynamic counter. OnBlock fires only when the cell
// was not blocked before.
func (c *Cell) Block() {
	was := c.Blocked()
	c.dynamicBlocks++
	if !was {
		c.onBlock.Emit(c.event())
	}
}

// Unblock decrements the dynamic counter. It returns ErrOverUnblock and
// leaves the counter untouched when it is already zero. OnUnblock fires only
// when the cell stops being blocked.
func (c *Cell) Unblock() error {
	if c.dynamicBlocks == 0 {
		return fmt.Errorf("%w: dynamic block at %v", ErrOverUnblock, c.pos)
	}
	c.dynamicBlocks--
	if !c.Blocked() {
		c.onUnblock.Emit(c.event())
	}
	return nil
}

// StaticBlock increments the static counter. OnStaticBlock fires on the
// static 0→1 transition and OnBlock on the combined one.
func (c *Cell) StaticBlock() {
	was, wasStatic := c.Blocked(), c.StaticallyBlocked()
	c.staticBlocks++
	if !wasStatic {
		c.onStaticBlock.Emit(c.event())
	}
	if !was {
		c.onBlock.Emit(c.event())
	}
}

// StaticUnblock decrements the static counter, mirroring Unblock.
func (c *Cell) StaticUnblock() error {
	if c.staticBlocks == 0 {
		return fmt.Errorf("%w: static block at %v", ErrOverUnblock, c.pos)
	}
	c.staticBlocks--
	if !c.StaticallyBlocked() {
		c.onStaticUnblock.Emit(c.event())
	}
	if !c.Blocked() {
		c.onUnblock.Emit(c.event())
	}
	return nil
}

// OnBlock fires when the cell becomes blocked.
func (c *Cell) OnBlock() *signal.Signal[Event] { return &c.onBlock }

// OnUnblock fires when the cell stops being blocked.
func (c *Cell) OnUnblock() *signal.Signal[Event] { return &c.onUnblock }

// OnStaticBlock fires when the static counter leaves zero.
func (c *Cell) OnStaticBlock() *signal.Signal[Event] { return &c.onStaticBlock }

// OnStaticUnblock fires when the static counter returns to zero.
func (c *Cell) OnStaticUnblock() *signal.Signal[Event] { return &c.onStaticUnblock }

// OnCostChange fires whenever the base or temporary cost changes.
func (c *Cell) OnCostChange() *signal.Signal[Event] { return &c.onCostChange }

// NeighborCount returns 8 on a diagonal grid and 4 otherwise.
func (c *Cell) NeighborCount() int {
	if c.grid.diagonals {
		return 8
	}
	return 4
}

// IsDiagonal reports whether slot i is a diagonal slot.
func IsDiagonal(i int) bool { return i >= 4 }

// Offset returns the grid offset of neighbour slot i.
func Offset(i int) geom.Point { return offsets[i] }

// Neighbor returns the traversable neighbour in slot i, or nil when there is
// no edge (blocked, out of bounds, gated corner, or i out of range).
func (c *Cell) Neighbor(i int) *Cell {
	if i < 0 || i >= c.NeighborCount() {
		return nil
	}
	c.ensureLinks()
	if c.links[i] < 0 {
		return nil
	}
	return &c.grid.cells[c.links[i]]
}

// ensureLinks computes the neighbour cache on first use and subscribes to
// every surrounding cell whose blocked state can change one of the links.
func (c *Cell) ensureLinks() {
	if c.linksReady {
		return
	}
	c.linksReady = true
	c.refreshLinks()

	refresh := func(Event) { c.refreshLinks() }
	for i := 0; i < c.NeighborCount(); i++ {
		n := c.grid.Cell(c.pos.Add(offsets[i]))
		if n == nil {
			continue
		}
		n.onBlock.Connect(refresh)
		n.onUnblock.Connect(refresh)
	}
}

func (c *Cell) refreshLinks() {
	for i := range c.links {
		c.links[i] = -1
	}
	g := c.grid
	for i := 0; i < c.NeighborCount(); i++ {
		off := offsets[i]
		target := c.pos.Add(off)
		if g.Blocked(target) {
			continue
		}
		if IsDiagonal(i) {
			// no cutting corners
			if g.Blocked(c.pos.Add(geom.Point{X: off.X})) || g.Blocked(c.pos.Add(geom.Point{Y: off.Y})) {
				continue
			}
		}
		c.links[i] = g.index(target)
	}
}

func (c *Cell) event() Event {
	return Event{Grid: c.grid, Position: c.pos}
}
