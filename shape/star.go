package shape

import (
	"math"

	"github.com/gogpu/certgen/canvas"
)

// StarVertices is the number of vertices of a five-pointed star outline.
const StarVertices = 10

// Star is a filled five-pointed star with its apex up.
type Star struct {
	Center canvas.Point
	Outer  float64
	Inner  float64
	Fill   canvas.Color
}

// StarPoints returns the outline of a five-pointed star: 10 vertices that
// alternate between the outer and inner radius, starting at the apex (-90°)
// and advancing 36° per vertex.
func StarPoints(center canvas.Point, outer, inner float64) []canvas.Point {
	pts := make([]canvas.Point, StarVertices)
	for i := range pts {
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts[i] = center.Polar(r, angle)
	}
	return pts
}

// Draw implements canvas.Drawer.
func (s Star) Draw(c *canvas.Canvas) {
	c.Polygon(StarPoints(s.Center, s.Outer, s.Inner), canvas.Filled(s.Fill))
}
