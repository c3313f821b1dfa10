package panel

import (
	"math"

	"github.com/gogpu/certgen/canvas"
)

var tableFill = canvas.RGBA(255, 255, 255, 248)

// RecordLayout is the record certificate panel: the athlete's name and
// grade, a two-column results table with a header bar, and the issue date.
type RecordLayout struct {
	Panel  Box
	Name   Box
	Grade  Box
	Header Box
	Table  Box
	Issue  Box
	// SplitX is the x position of the column divider.
	SplitX float64
	// Rows is the number of table rows; Rows-1 dividers are drawn.
	Rows int
}

// DefaultRecord is the record layout shared by every variant.
var DefaultRecord = RecordLayout{
	Panel:  B(250, 680, 2230, 3230, 92),
	Name:   B(440, 850, 1655, 1200, 46),
	Grade:  B(1680, 850, 2180, 1200, 46),
	Header: B(600, 1330, 2260, 1450, 34),
	Table:  B(600, 1450, 2260, 2370, 36),
	Issue:  B(820, 2860, 1660, 3050, 32),
	SplitX: 1510,
	Rows:   7,
}

var recordRoles = []Role{RolePanel, RoleAccent, RoleSoft, RoleHeader, RoleLine}

// Roles implements Layout.
func (l RecordLayout) Roles() []Role { return recordRoles }

// Bounds implements Layout.
func (l RecordLayout) Bounds() canvas.Rect {
	return unionBoxes(frameBounds(l.Panel), l.Name, l.Grade, l.Header, l.Table, l.Issue)
}

// Draw implements Layout.
func (l RecordLayout) Draw(c *canvas.Canvas, p Palette) error {
	if err := p.Require(recordRoles...); err != nil {
		return err
	}
	drawFrame(c, l.Panel, p[RolePanel])

	l.Name.draw(c, canvas.Style{Fill: p[RoleSoft], Outline: p[RoleAccent], Width: 6})
	l.Grade.draw(c, canvas.Style{Fill: p[RoleSoft], Outline: p[RoleAccent], Width: 6})
	l.Header.draw(c, canvas.Style{Fill: p[RoleHeader], Outline: p[RoleAccent], Width: 6})
	l.Table.draw(c, canvas.Style{Fill: tableFill, Outline: p[RoleLine], Width: 5})
	l.Issue.draw(c, canvas.Style{Fill: p[RoleSoft], Outline: p[RoleAccent], Width: 5})

	c.Line(canvas.Pt(l.SplitX, l.Header.Rect.Min.Y), canvas.Pt(l.SplitX, l.Table.Rect.Max.Y), p[RoleLine], 5)
	for _, y := range l.RowDividers() {
		c.Line(canvas.Pt(l.Table.Rect.Min.X, y), canvas.Pt(l.Table.Rect.Max.X, y), p[RoleLine], 3)
	}
	return nil
}

// RowDividers returns the y positions of the horizontal table dividers,
// splitting the table into Rows equal rows at whole-pixel positions.
func (l RecordLayout) RowDividers() []float64 {
	if l.Rows < 2 {
		return nil
	}
	top := l.Table.Rect.Min.Y
	step := l.Table.Rect.Dy() / float64(l.Rows)
	ys := make([]float64, l.Rows-1)
	for i := range ys {
		ys[i] = math.Trunc(top + step*float64(i+1))
	}
	return ys
}
