package navgrid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridnav/geom"
)

// Grid is a fixed-size rectangle of Cells. It is shared by reference between
// searches and agents; none of them owns it exclusively.
type Grid struct {
	width, height int
	diagonals     bool
	cells         []Cell // row-major: index = y*width + x
}

// New allocates a width×height grid with every cell at the default cost.
// Returns ErrEmptyGrid if width or height < 1 and ErrBadCost if the default
// cost is negative or not finite.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	if cfg.DefaultCost < 0 || math.IsNaN(cfg.DefaultCost) || math.IsInf(cfg.DefaultCost, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadCost, cfg.DefaultCost)
	}

	g := &Grid{
		width:     width,
		height:    height,
		diagonals: cfg.Diagonals,
		cells:     make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := &g.cells[y*width+x]
			c.grid = g
			c.pos = geom.Point{X: x, Y: y}
			c.baseCost = cfg.DefaultCost
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns (width, height) as a Point.
func (g *Grid) Size() geom.Point { return geom.Point{X: g.width, Y: g.height} }

// Diagonals reports whether cells link to their diagonal neighbours.
func (g *Grid) Diagonals() bool { return g.diagonals }

// InBounds reports whether p lies inside [0,width)×[0,height).
func (g *Grid) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Cell returns the cell at p, or nil when p is out of bounds.
func (g *Grid) Cell(p geom.Point) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	return &g.cells[g.index(p)]
}

// At is Cell(geom.Point{X: x, Y: y}).
func (g *Grid) At(x, y int) *Cell {
	return g.Cell(geom.Point{X: x, Y: y})
}

// Column returns the cells of column x from top to bottom, or nil when x is
// out of range.
func (g *Grid) Column(x int) []*Cell {
	if x < 0 || x >= g.width {
		return nil
	}
	col := make([]*Cell, g.height)
	for y := range col {
		col[y] = &g.cells[y*g.width+x]
	}
	return col
}

// Cells calls fn for every cell in row-major order until fn returns false.
func (g *Grid) Cells(fn func(c *Cell) bool) {
	for i := range g.cells {
		if !fn(&g.cells[i]) {
			return
		}
	}
}

// Blocked reports whether p is out of bounds or its cell is blocked.
func (g *Grid) Blocked(p geom.Point) bool {
	c := g.Cell(p)
	return c == nil || c.Blocked()
}

// StaticallyBlocked reports whether p is out of bounds or its cell carries a
// static block.
func (g *Grid) StaticallyBlocked(p geom.Point) bool {
	c := g.Cell(p)
	return c == nil || c.StaticallyBlocked()
}

// Block adds a dynamic block to the cell at p.
func (g *Grid) Block(p geom.Point) error {
	c, err := g.cellOrErr(p)
	if err != nil {
		return err
	}
	c.Block()
	return nil
}

// Unblock removes a dynamic block from the cell at p.
func (g *Grid) Unblock(p geom.Point) error {
	c, err := g.cellOrErr(p)
	if err != nil {
		return err
	}
	return c.Unblock()
}

// StaticBlock adds a static block to the cell at p.
func (g *Grid) StaticBlock(p geom.Point) error {
	c, err := g.cellOrErr(p)
	if err != nil {
		return err
	}
	c.StaticBlock()
	return nil
}

// StaticUnblock removes a static block from the cell at p.
func (g *Grid) StaticUnblock(p geom.Point) error {
	c, err := g.cellOrErr(p)
	if err != nil {
		return err
	}
	return c.StaticUnblock()
}

func (g *Grid) cellOrErr(p geom.Point) (*Cell, error) {
	c := g.Cell(p)
	if c == nil {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.width, g.height)
	}
	return c, nil
}

// index maps p to its row-major slot. Caller checks bounds.
func (g *Grid) index(p geom.Point) int {
	return p.Y*g.width + p.X
}
