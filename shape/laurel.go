package shape

import (
	"math"

	"github.com/gogpu/certgen/canvas"
)

// Side selects which half of a laurel wreath to draw.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

const (
	laurelLeaves    = 12
	laurelStepDeg   = 10
	laurelLeftDeg   = 152
	laurelRightDeg  = 28
	laurelLeafHalfW = 16
	laurelLeafHalfH = 10
)

// Laurel is one sprig of a laurel wreath: leaves placed along an arc of the
// circle (Center, Radius) on the given side. Any Side other than Left or
// Right draws nothing.
type Laurel struct {
	Center canvas.Point
	Radius float64
	Color  canvas.Color
	Side   Side
}

// Leaves returns the leaf centers, or nil for an unknown side.
func (l Laurel) Leaves() []canvas.Point {
	var start, dir float64
	switch l.Side {
	case Left:
		start, dir = laurelLeftDeg, -1
	case Right:
		start, dir = laurelRightDeg, 1
	default:
		return nil
	}
	leaves := make([]canvas.Point, laurelLeaves)
	for i := range leaves {
		deg := start + dir*float64(i*laurelStepDeg)
		leaves[i] = l.Center.Polar(l.Radius, deg*math.Pi/180)
	}
	return leaves
}

// Draw implements canvas.Drawer.
func (l Laurel) Draw(c *canvas.Canvas) {
	for _, p := range l.Leaves() {
		leaf := canvas.R(p.X-laurelLeafHalfW, p.Y-laurelLeafHalfH, p.X+laurelLeafHalfW, p.Y+laurelLeafHalfH)
		c.Ellipse(leaf, canvas.Filled(l.Color))
	}
}
