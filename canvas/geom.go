package canvas

import "math"

// Point is a position in canvas pixel space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Polar returns the point at distance r from p in the direction angle
// (radians, 0 is right, y grows downwards).
func (p Point) Polar(r, angle float64) Point {
	return Point{X: p.X + math.Cos(angle)*r, Y: p.Y + math.Sin(angle)*r}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an axis-aligned box given by two corner points.
// Recipes express boxes as (x0, y0, x1, y1) corner coordinates.
type Rect struct {
	Min, Max Point
}

// R is shorthand for a Rect with corners (x0, y0) and (x1, y1).
// The corners are normalized so that Min <= Max on both axes.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: Pt(x0, y0), Max: Pt(x1, y1)}.Normalize()
}

// Square returns the box of side 2r centered on c.
func Square(c Point, r float64) Rect {
	return R(c.X-r, c.Y-r, c.X+r, c.Y+r)
}

// Normalize ensures Min is <= Max on both axes.
func (r Rect) Normalize() Rect {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// Inset shrinks r by d on all sides. Negative d grows it.
// The result never inverts; an over-inset collapses to the center.
func (r Rect) Inset(d float64) Rect {
	out := Rect{Min: Pt(r.Min.X+d, r.Min.Y+d), Max: Pt(r.Max.X-d, r.Max.Y-d)}
	c := r.Center()
	if out.Min.X > out.Max.X {
		out.Min.X, out.Max.X = c.X, c.X
	}
	if out.Min.Y > out.Max.Y {
		out.Min.Y, out.Max.Y = c.Y, c.Y
	}
	return out
}

// Translate moves r by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Min: Pt(r.Min.X+dx, r.Min.Y+dy), Max: Pt(r.Max.X+dx, r.Max.Y+dy)}
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Pt(math.Min(r.Min.X, s.Min.X), math.Min(r.Min.Y, s.Min.Y)),
		Max: Pt(math.Max(r.Max.X, s.Max.X), math.Max(r.Max.Y, s.Max.Y)),
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether s lies entirely inside r.
func (r Rect) ContainsRect(s Rect) bool {
	return r.Contains(s.Min) && r.Contains(s.Max)
}
