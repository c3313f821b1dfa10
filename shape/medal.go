package shape

import "github.com/gogpu/certgen/canvas"

var (
	medalRibbonLeft  = canvas.RGBA(39, 122, 223, 220)
	medalRibbonRight = canvas.RGBA(29, 178, 232, 220)
	medalGold        = canvas.RGB(255, 217, 94)
	medalRim         = canvas.RGB(240, 166, 34)
	medalRing        = canvas.RGBA(255, 244, 171, 240)
	medalStar        = canvas.RGB(255, 247, 191)
)

// Medal is a gold medal hanging from two ribbons, with an inner ring and a
// small star.
type Medal struct {
	Center canvas.Point
	Radius float64
}

// Draw implements canvas.Drawer.
func (m Medal) Draw(c *canvas.Canvas) {
	cx, cy, r := m.Center.X, m.Center.Y, m.Radius
	c.Polygon([]canvas.Point{
		{X: cx - 52, Y: cy - r - 130},
		{X: cx - 14, Y: cy - r - 26},
		{X: cx - 90, Y: cy - r - 26},
	}, canvas.Filled(medalRibbonLeft))
	c.Polygon([]canvas.Point{
		{X: cx + 52, Y: cy - r - 130},
		{X: cx + 14, Y: cy - r - 26},
		{X: cx + 90, Y: cy - r - 26},
	}, canvas.Filled(medalRibbonRight))

	disc := canvas.Square(m.Center, r)
	c.Ellipse(disc, canvas.Style{Fill: medalGold, Outline: medalRim, Width: 12})
	c.Ellipse(disc.Inset(26), canvas.Outlined(medalRing, 8))
	Star{Center: m.Center, Outer: 36, Inner: 16, Fill: medalStar}.Draw(c)
}
