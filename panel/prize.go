package panel

import "github.com/gogpu/certgen/canvas"

var nameFill = canvas.RGBA(255, 255, 255, 252)

// PrizeLayout is the first-prize certificate panel: a large name box,
// meet details, the event, the winning time and the issue date.
type PrizeLayout struct {
	Panel Box
	Name  Box
	Meta  Box
	Event Box
	Time  Box
	Issue Box
}

// DefaultPrize is the prize layout shared by every variant.
var DefaultPrize = PrizeLayout{
	Panel: B(250, 620, 2230, 3230, 92),
	Name:  B(430, 1220, 2050, 1710, 58),
	Meta:  B(560, 1850, 1920, 2015, 30),
	Event: B(420, 2140, 2060, 2360, 34),
	Time:  B(520, 2430, 1960, 2630, 34),
	Issue: B(860, 2880, 1620, 3060, 30),
}

var prizeRoles = []Role{RolePanel, RoleAccent, RoleSoft}

// Roles implements Layout.
func (l PrizeLayout) Roles() []Role { return prizeRoles }

// Bounds implements Layout.
func (l PrizeLayout) Bounds() canvas.Rect {
	return unionBoxes(frameBounds(l.Panel), l.Name, l.Meta, l.Event, l.Time, l.Issue)
}

// Draw implements Layout.
func (l PrizeLayout) Draw(c *canvas.Canvas, p Palette) error {
	if err := p.Require(prizeRoles...); err != nil {
		return err
	}
	drawFrame(c, l.Panel, p[RolePanel])

	l.Name.draw(c, canvas.Style{Fill: nameFill, Outline: p[RoleAccent], Width: 7})
	l.Meta.draw(c, canvas.Style{Fill: p[RoleSoft], Outline: p[RoleAccent], Width: 5})
	l.Event.draw(c, canvas.Style{Fill: p[RoleSoft], Outline: p[RoleAccent], Width: 6})
	l.Time.draw(c, canvas.Style{Fill: p[RoleSoft], Outline: p[RoleAccent], Width: 6})
	l.Issue.draw(c, canvas.Style{Fill: p[RoleSoft], Outline: p[RoleAccent], Width: 5})
	return nil
}
