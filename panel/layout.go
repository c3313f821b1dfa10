// Package panel draws the information panels that sit on top of every
// certificate background: a tabular record panel and a prize panel.
//
// Layouts are fixed arrangements of rounded boxes at canvas coordinates.
// Only their colors vary, supplied as a Palette; a palette that lacks a role
// the layout uses is rejected before anything is drawn.
package panel

import "github.com/gogpu/certgen/canvas"

// Layout is an arrangement of panels drawn over a finished background.
type Layout interface {
	// Roles lists the palette roles Draw needs.
	Roles() []Role
	// Draw paints the layout. It returns an error wrapping ErrMissingRole,
	// without touching the canvas, when p lacks one of Roles.
	Draw(c *canvas.Canvas, p Palette) error
	// Bounds is the smallest rectangle containing every pixel Draw paints.
	Bounds() canvas.Rect
}

// Box is a rounded rectangle.
type Box struct {
	Rect   canvas.Rect
	Radius float64
}

// B is shorthand for a Box with corners (x0, y0), (x1, y1).
func B(x0, y0, x1, y1, radius float64) Box {
	return Box{Rect: canvas.R(x0, y0, x1, y1), Radius: radius}
}

func (b Box) draw(c *canvas.Canvas, s canvas.Style) {
	c.RoundedRectangle(b.Rect, b.Radius, s)
}

var (
	panelFill   = canvas.RGBA(255, 255, 255, 245)
	panelShadow = canvas.RGBA(0, 0, 0, 38)
)

// Drop shadow offset of the outer panel.
const (
	shadowDX = 10
	shadowDY = 12
)

// drawFrame paints the drop shadow and the outer panel.
func drawFrame(c *canvas.Canvas, panel Box, outline canvas.Color) {
	shadow := Box{Rect: panel.Rect.Translate(shadowDX, shadowDY), Radius: panel.Radius}
	shadow.draw(c, canvas.Filled(panelShadow))
	panel.draw(c, canvas.Style{Fill: panelFill, Outline: outline, Width: 8})
}

func frameBounds(panel Box) canvas.Rect {
	return panel.Rect.Union(panel.Rect.Translate(shadowDX, shadowDY))
}

func unionBoxes(r canvas.Rect, boxes ...Box) canvas.Rect {
	for _, b := range boxes {
		r = r.Union(b.Rect)
	}
	return r
}
