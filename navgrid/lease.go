package navgrid

import "github.com/katalvlaran/gridnav/geom"

// Lease is a scoped additive cost on one cell. NewLease applies the cost;
// Release refunds it exactly once. Move hands the pending refund to a new
// Lease and turns the old one into a no-op.
//
//	l, err := navgrid.NewLease(g, p, 2)
//	if err != nil { ... }
//	defer l.Release()
type Lease struct {
	grid *Grid
	pos  geom.Point
	cost float64
}

// NewLease adds cost to the temporary cost of the cell at p.
// Returns ErrOutOfBounds if p lies outside g.
func NewLease(g *Grid, p geom.Point, cost float64) (*Lease, error) {
	c, err := g.cellOrErr(p)
	if err != nil {
		return nil, err
	}
	c.AddTemporaryCost(cost)
	return &Lease{grid: g, pos: p, cost: cost}, nil
}

// Cost returns the amount still to be refunded.
func (l *Lease) Cost() float64 { return l.cost }

// Position returns the leased cell.
func (l *Lease) Position() geom.Point { return l.pos }

// Move transfers the pending refund to a new Lease. The receiver keeps its
// position but its Release becomes a no-op.
func (l *Lease) Move() *Lease {
	moved := &Lease{grid: l.grid, pos: l.pos, cost: l.cost}
	l.cost = 0
	return moved
}

// Release refunds the lease. Safe to call more than once and on nil.
func (l *Lease) Release() {
	if l == nil || l.cost == 0 {
		return
	}
	amount := l.cost
	l.cost = 0
	l.grid.Cell(l.pos).RemoveTemporaryCost(amount)
}
