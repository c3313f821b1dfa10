package shape

import (
	"math"

	"github.com/gogpu/certgen/canvas"
)

// Polygon is a styled closed polygon.
type Polygon struct {
	Points []canvas.Point
	Style  canvas.Style
}

// Draw implements canvas.Drawer.
func (p Polygon) Draw(c *canvas.Canvas) { c.Polygon(p.Points, p.Style) }

// Ellipse is a styled ellipse inscribed in Box.
type Ellipse struct {
	Box   canvas.Rect
	Style canvas.Style
}

// Draw implements canvas.Drawer.
func (e Ellipse) Draw(c *canvas.Canvas) { c.Ellipse(e.Box, e.Style) }

// Rectangle is a styled axis-aligned rectangle.
type Rectangle struct {
	Box   canvas.Rect
	Style canvas.Style
}

// Draw implements canvas.Drawer.
func (r Rectangle) Draw(c *canvas.Canvas) { c.Rectangle(r.Box, r.Style) }

// EdgeBands fills a full-height band of the given width along the left and
// right canvas edges.
type EdgeBands struct {
	Width float64
	Fill  canvas.Color
}

// Draw implements canvas.Drawer.
func (b EdgeBands) Draw(c *canvas.Canvas) {
	w, h := float64(c.Size().W), float64(c.Size().H)
	c.Rectangle(canvas.R(0, 0, b.Width, h), canvas.Filled(b.Fill))
	c.Rectangle(canvas.R(w-b.Width, 0, w, h), canvas.Filled(b.Fill))
}

// EdgeChevrons places inward-pointing triangles along both side edges,
// one every Step pixels for y in [From, To). Each triangle is Step tall and
// reaches Depth pixels into the canvas.
type EdgeChevrons struct {
	From, To float64
	Step     float64
	Depth    float64
	Fill     canvas.Color
}

// Draw implements canvas.Drawer.
func (e EdgeChevrons) Draw(c *canvas.Canvas) {
	if e.Step <= 0 {
		return
	}
	w := float64(c.Size().W)
	half := e.Step / 2
	for y := e.From; y < e.To; y += e.Step {
		c.Polygon([]canvas.Point{{X: 0, Y: y}, {X: e.Depth, Y: y + half}, {X: 0, Y: y + e.Step}}, canvas.Filled(e.Fill))
		c.Polygon([]canvas.Point{{X: w, Y: y}, {X: w - e.Depth, Y: y + half}, {X: w, Y: y + e.Step}}, canvas.Filled(e.Fill))
	}
}

// Checkerboard tints every other Square-sized cell of the canvas, starting
// with the top-left cell.
type Checkerboard struct {
	Square int
	Fill   canvas.Color
}

// Draw implements canvas.Drawer.
func (b Checkerboard) Draw(c *canvas.Canvas) {
	if b.Square <= 0 {
		return
	}
	size := c.Size()
	sq := float64(b.Square)
	for y := 0; y < size.H; y += b.Square {
		for x := 0; x < size.W; x += b.Square {
			if (x/b.Square+y/b.Square)%2 != 0 {
				continue
			}
			fx, fy := float64(x), float64(y)
			c.Rectangle(canvas.R(fx, fy, fx+sq, fy+sq), canvas.Filled(b.Fill))
		}
	}
}

// Rays is a sunburst: one line per StepDeg degrees for angles in
// [FromDeg, ToDeg), each running from radius Inner to radius Outer.
type Rays struct {
	Center         canvas.Point
	Inner, Outer   float64
	FromDeg, ToDeg int
	StepDeg        int
	Color          canvas.Color
	Width          float64
}

// Draw implements canvas.Drawer.
func (r Rays) Draw(c *canvas.Canvas) {
	if r.StepDeg <= 0 {
		return
	}
	for deg := r.FromDeg; deg < r.ToDeg; deg += r.StepDeg {
		rad := float64(deg) * math.Pi / 180
		c.Line(r.Center.Polar(r.Inner, rad), r.Center.Polar(r.Outer, rad), r.Color, r.Width)
	}
}

var (
	bubbleLeft  = canvas.Outlined(canvas.RGBA(238, 252, 255, 180), 6)
	bubbleRight = canvas.Outlined(canvas.RGBA(233, 250, 255, 170), 5)
	bubbleSmall = canvas.Outlined(canvas.RGBA(233, 250, 255, 150), 4)
)

// Bubbles rises a column of rings along both side margins, one row every
// Step pixels for y in [From, To). Every other row adds a small ring below
// the left one.
type Bubbles struct {
	From, To float64
	Step     float64
}

// Draw implements canvas.Drawer.
func (b Bubbles) Draw(c *canvas.Canvas) {
	if b.Step <= 0 {
		return
	}
	i := 0
	for y := b.From; y < b.To; y += b.Step {
		c.Ellipse(canvas.R(90, y, 240, y+150), bubbleLeft)
		c.Ellipse(canvas.R(2260, y+80, 2380, y+200), bubbleRight)
		if i%2 == 0 {
			c.Ellipse(canvas.R(180, y+200, 260, y+280), bubbleSmall)
		}
		i++
	}
}
