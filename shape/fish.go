package shape

import (
	"math"

	"github.com/gogpu/certgen/canvas"
)

var fishEye = canvas.RGBA(255, 255, 255, 230)

const fishEyeRadius = 5

// Fish is a small fish silhouette. At is the tip of the snout; the body and
// tail extend to the right, or to the left when Mirror is set.
type Fish struct {
	At     canvas.Point
	Size   float64
	Color  canvas.Color
	Mirror bool
}

// FishOutline is the geometry of a Fish.
type FishOutline struct {
	Body [4]canvas.Point
	Tail [3]canvas.Point
	Eye  canvas.Point
}

// Outline computes the body, tail and eye positions. Offsets are whole
// pixels; mirroring negates only their horizontal sign.
func (f Fish) Outline() FishOutline {
	dir := 1.0
	if f.Mirror {
		dir = -1
	}
	off := func(k float64) float64 { return math.Trunc(f.Size * k) }
	x, y := f.At.X, f.At.Y
	return FishOutline{
		Body: [4]canvas.Point{
			{X: x, Y: y},
			{X: x + dir*off(0.8), Y: y - off(0.35)},
			{X: x + dir*off(1.45), Y: y},
			{X: x + dir*off(0.8), Y: y + off(0.35)},
		},
		Tail: [3]canvas.Point{
			{X: x + dir*off(1.45), Y: y},
			{X: x + dir*off(1.95), Y: y - off(0.5)},
			{X: x + dir*off(1.95), Y: y + off(0.5)},
		},
		Eye: canvas.Pt(x+dir*off(0.2), y-off(0.08)),
	}
}

// Draw implements canvas.Drawer.
func (f Fish) Draw(c *canvas.Canvas) {
	o := f.Outline()
	style := canvas.Filled(f.Color)
	c.Polygon(o.Body[:], style)
	c.Polygon(o.Tail[:], style)
	c.Ellipse(canvas.Square(o.Eye, fishEyeRadius), canvas.Filled(fishEye))
}
