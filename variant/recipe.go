package variant

import (
	"fmt"

	"github.com/gogpu/certgen/canvas"
	"github.com/gogpu/certgen/panel"
)

// Recipe is one certificate composition: a vertical gradient, decorative
// layers painted in order, and a panel layout painted last.
type Recipe struct {
	Top, Bottom canvas.Color
	Layers      []canvas.Drawer
	Layout      panel.Layout
	Palette     panel.Palette
}

// Render draws the composition on a new canvas of the given size.
// A palette that does not satisfy the layout is reported before the panel
// is drawn; the partial canvas is discarded.
func (r Recipe) Render(size canvas.Size) (*canvas.Canvas, error) {
	c := r.background(size)
	if r.Layout != nil {
		if err := r.Layout.Draw(c, r.Palette); err != nil {
			return nil, err
		}
	}
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}
	return c, nil
}

// background renders everything beneath the panel layout.
func (r Recipe) background(size canvas.Size) *canvas.Canvas {
	c := canvas.NewGradient(size, r.Top, r.Bottom)
	for _, l := range r.Layers {
		l.Draw(c)
	}
	return c
}
