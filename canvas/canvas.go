package canvas

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Size is a canvas resolution in pixels.
type Size struct {
	W, H int
}

// A4 is an A4 sheet at 300 dpi, the resolution every certificate uses.
var A4 = Size{W: 2480, H: 3508}

// Bounds returns the full canvas rectangle.
func (s Size) Bounds() Rect {
	return R(0, 0, float64(s.W), float64(s.H))
}

// Drawer emits one shape onto a canvas.
type Drawer interface {
	Draw(c *Canvas)
}

// DrawerFunc adapts a function to the Drawer interface.
type DrawerFunc func(c *Canvas)

// Draw calls f(c).
func (f DrawerFunc) Draw(c *Canvas) { f(c) }

// Style describes how a closed shape is painted. A transparent Fill or
// Outline, or a zero Width, skips that part.
type Style struct {
	Fill    Color
	Outline Color
	Width   float64
}

// Filled is a Style with a fill and no outline.
func Filled(fill Color) Style {
	return Style{Fill: fill}
}

// Outlined is a Style with an outline and no fill.
func Outlined(outline Color, width float64) Style {
	return Style{Outline: outline, Width: width}
}

func (s Style) stroked() bool {
	return !s.Outline.IsZero() && s.Width > 0
}

// Canvas is a fixed-size RGBA raster with the drawing operations the
// certificate recipes need. Every operation composites source-over onto the
// existing pixels. The first rasterizer error is kept and reported by Err.
type Canvas struct {
	size Size
	pm   *gg.Pixmap
	dc   *gg.Context
	err  error
}

// New creates a canvas of the given size filled with bg.
func New(size Size, bg Color) *Canvas {
	c := newCanvas(size)
	r, g, b, a := bg.unit()
	c.pm.Clear(gg.RGBA{R: r, G: g, B: b, A: a})
	return c
}

// NewGradient creates an opaque canvas whose rows blend from top at y=0 to
// bottom at y=H-1.
func NewGradient(size Size, top, bottom Color) *Canvas {
	c := newCanvas(size)
	span := float64(max(size.H-1, 1))
	for y := 0; y < size.H; y++ {
		c.fillRow(y, Blend(top, bottom, float64(y)/span))
	}
	return c
}

func newCanvas(size Size) *Canvas {
	pm := gg.NewPixmap(size.W, size.H)
	return &Canvas{
		size: size,
		pm:   pm,
		dc:   gg.NewContext(size.W, size.H, gg.WithPixmap(pm)),
	}
}

// fillRow writes an opaque color across row y. The first pixel is written
// once and then doubled along the row with copy.
func (c *Canvas) fillRow(y int, col Color) {
	stride := c.size.W * 4
	row := c.pm.Data()[y*stride : (y+1)*stride]
	if len(row) == 0 {
		return
	}
	row[0], row[1], row[2], row[3] = col.R, col.G, col.B, 255
	for n := 4; n < len(row); n *= 2 {
		copy(row[n:], row[:n])
	}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() Size { return c.size }

// Err returns the first error reported by the rasterizer, if any.
func (c *Canvas) Err() error { return c.err }

func (c *Canvas) keep(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

// At returns the pixel at (x, y). Coordinates outside the canvas return the
// zero Color. Pixels of an opaque canvas read back as their straight color.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || y < 0 || x >= c.size.W || y >= c.size.H {
		return Color{}
	}
	i := (y*c.size.W + x) * 4
	d := c.pm.Data()
	return Color{R: d[i], G: d[i+1], B: d[i+2], A: d[i+3]}
}

// Pix returns a copy of the raw RGBA bytes, row-major.
func (c *Canvas) Pix() []byte {
	out := make([]byte, len(c.pm.Data()))
	copy(out, c.pm.Data())
	return out
}

// Image returns a snapshot of the canvas. Later draws do not affect it.
func (c *Canvas) Image() *image.RGBA {
	c.keep(c.dc.FlushGPU())
	return c.pm.ToImage()
}

// Polygon fills and/or outlines the closed polygon through pts in order.
func (c *Canvas) Polygon(pts []Point, s Style) {
	if len(pts) < 2 {
		return
	}
	if !s.Fill.IsZero() && len(pts) >= 3 {
		c.polyPath(pts)
		c.fill(s.Fill)
	}
	if s.stroked() {
		c.polyPath(pts)
		c.stroke(s.Outline, s.Width)
	}
}

func (c *Canvas) polyPath(pts []Point) {
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
}

// Ellipse paints the ellipse inscribed in box. The outline is drawn inside
// the box.
func (c *Canvas) Ellipse(box Rect, s Style) {
	center := box.Center()
	if !s.Fill.IsZero() {
		c.dc.DrawEllipse(center.X, center.Y, box.Dx()/2, box.Dy()/2)
		c.fill(s.Fill)
	}
	if s.stroked() {
		in := box.Inset(s.Width / 2)
		c.dc.DrawEllipse(center.X, center.Y, in.Dx()/2, in.Dy()/2)
		c.stroke(s.Outline, s.Width)
	}
}

// Rectangle paints box. The outline is drawn inside the box.
func (c *Canvas) Rectangle(box Rect, s Style) {
	if !s.Fill.IsZero() {
		c.dc.DrawRectangle(box.Min.X, box.Min.Y, box.Dx(), box.Dy())
		c.fill(s.Fill)
	}
	if s.stroked() {
		in := box.Inset(s.Width / 2)
		c.dc.DrawRectangle(in.Min.X, in.Min.Y, in.Dx(), in.Dy())
		c.stroke(s.Outline, s.Width)
	}
}

// RoundedRectangle paints box with corners of the given radius. The outline
// is drawn inside the box.
func (c *Canvas) RoundedRectangle(box Rect, radius float64, s Style) {
	if !s.Fill.IsZero() {
		c.dc.DrawRoundedRectangle(box.Min.X, box.Min.Y, box.Dx(), box.Dy(), radius)
		c.fill(s.Fill)
	}
	if s.stroked() {
		in := box.Inset(s.Width / 2)
		r := math.Max(radius-s.Width/2, 0)
		c.dc.DrawRoundedRectangle(in.Min.X, in.Min.Y, in.Dx(), in.Dy(), r)
		c.stroke(s.Outline, s.Width)
	}
}

// Line strokes the segment from a to b with flat ends.
func (c *Canvas) Line(a, b Point, col Color, width float64) {
	if col.IsZero() || width <= 0 {
		return
	}
	c.dc.SetLineCap(gg.LineCapButt)
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	c.stroke(col, width)
}

func (c *Canvas) fill(col Color) {
	r, g, b, a := col.unit()
	c.dc.SetRGBA(r, g, b, a)
	c.keep(c.dc.Fill())
}

func (c *Canvas) stroke(col Color, width float64) {
	r, g, b, a := col.unit()
	c.dc.SetRGBA(r, g, b, a)
	c.dc.SetLineWidth(width)
	c.keep(c.dc.Stroke())
}
