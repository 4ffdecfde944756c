// Package geom provides the two small value types shared by every gridnav
// package: Point, an integer grid coordinate, and Vec, a continuous position
// measured in cell units.
//
// A cell (x, y) covers the half-open square [x, x+1) × [y, y+1), so its centre
// is (x+0.5, y+0.5) and Vec.Floor maps any position back to the owning cell.
package geom

import (
	"fmt"
	"math"
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p*k.
func (p Point) Scale(k int) Point { return Point{p.X * k, p.Y * k} }

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Distance returns the straight-line distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// Vec converts p to a continuous position at the cell's corner.
func (p Point) Vec() Vec { return Vec{float64(p.X), float64(p.Y)} }

// Center returns the continuous position of the centre of cell p.
func (p Point) Center() Vec { return Vec{float64(p.X) + 0.5, float64(p.Y) + 0.5} }

// String renders p as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Clamp limits p componentwise to the inclusive box [lo, hi].
func Clamp(p, lo, hi Point) Point {
	return Point{clampInt(p.X, lo.X, hi.X), clampInt(p.Y, lo.Y, hi.Y)}
}

// Vec is a continuous 2D position or direction in cell units.
type Vec struct {
	X, Y float64
}

// Add returns v+w.
func (v Vec) Add(w Vec) Vec { return Vec{v.X + w.X, v.Y + w.Y} }

// Sub returns v-w.
func (v Vec) Sub(w Vec) Vec { return Vec{v.X - w.X, v.Y - w.Y} }

// Scale returns v*k.
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Distance returns the straight-line distance between v and w.
func (v Vec) Distance(w Vec) float64 { return v.Sub(w).Len() }

// Floor returns the cell that contains v.
func (v Vec) Floor() Point {
	return Point{int(math.Floor(v.X)), int(math.Floor(v.Y))}
}

// String renders v with two decimals.
func (v Vec) String() string { return fmt.Sprintf("(%.2f,%.2f)", v.X, v.Y) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
