package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridnav/geom"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := geom.Pt(3, -2)
	q := geom.Pt(1, 4)

	assert.Equal(t, geom.Pt(4, 2), p.Add(q))
	assert.Equal(t, geom.Pt(2, -6), p.Sub(q))
	assert.Equal(t, geom.Pt(9, -6), p.Scale(3))
	assert.Equal(t, 8, p.Manhattan(q))
	assert.InDelta(t, math.Sqrt(40), p.Distance(q), 1e-12)
	assert.Equal(t, "(3,-2)", p.String())
}

func TestPoint_Center(t *testing.T) {
	c := geom.Pt(2, 5).Center()
	assert.Equal(t, geom.Vec{X: 2.5, Y: 5.5}, c)
	assert.Equal(t, geom.Pt(2, 5), c.Floor())
}

func TestClamp(t *testing.T) {
	lo, hi := geom.Pt(0, 0), geom.Pt(9, 4)
	cases := []struct {
		name string
		in   geom.Point
		want geom.Point
	}{
		{"Inside", geom.Pt(3, 3), geom.Pt(3, 3)},
		{"Low", geom.Pt(-5, -1), geom.Pt(0, 0)},
		{"High", geom.Pt(12, 8), geom.Pt(9, 4)},
		{"Mixed", geom.Pt(-1, 7), geom.Pt(0, 4)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.Clamp(tc.in, lo, hi))
		})
	}
}

func TestVec_Normalize(t *testing.T) {
	v := geom.Vec{X: 3, Y: 4}
	assert.InDelta(t, 5.0, v.Len(), 1e-12)
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)

	// zero vector has no direction
	assert.Equal(t, geom.Vec{}, geom.Vec{}.Normalize())
}

func TestVec_FloorNegative(t *testing.T) {
	assert.Equal(t, geom.Pt(-1, 0), geom.Vec{X: -0.25, Y: 0.99}.Floor())
	assert.InDelta(t, 5.0, geom.Vec{}.Distance(geom.Vec{X: -3, Y: 4}), 1e-12)
}
