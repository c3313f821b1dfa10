package panel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/certgen/canvas"
)

var (
	_ Layout = RecordLayout{}
	_ Layout = PrizeLayout{}
)

var white = canvas.RGB(255, 255, 255)

func recordPalette() Palette {
	return Palette{
		RolePanel:  canvas.RGB(26, 124, 182),
		RoleAccent: canvas.RGB(20, 141, 207),
		RoleHeader: canvas.RGB(204, 240, 255),
		RoleSoft:   canvas.RGB(236, 249, 255),
		RoleLine:   canvas.RGB(137, 205, 232),
	}
}

func TestPalette_Require(t *testing.T) {
	p := recordPalette()
	require.NoError(t, p.Require(RolePanel, RoleLine))

	delete(p, RoleLine)
	err := p.Require(RolePanel, RoleLine)
	require.ErrorIs(t, err, ErrMissingRole)
	assert.Contains(t, err.Error(), `"line"`)
}

func TestLayout_MissingRoleDrawsNothing(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		missing Role
	}{
		{"record without header", DefaultRecord, RoleHeader},
		{"record without line", DefaultRecord, RoleLine},
		{"prize without soft", DefaultPrize, RoleSoft},
		{"prize without panel", DefaultPrize, RolePanel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := recordPalette()
			delete(p, tt.missing)

			c := canvas.New(canvas.A4, white)
			before := c.Pix()
			err := tt.layout.Draw(c, p)
			require.ErrorIs(t, err, ErrMissingRole)
			assert.True(t, bytes.Equal(before, c.Pix()), "canvas changed by a rejected layout")
		})
	}
}

func TestLayout_Roles(t *testing.T) {
	assert.ElementsMatch(t, []Role{RolePanel, RoleAccent, RoleSoft, RoleHeader, RoleLine}, DefaultRecord.Roles())
	assert.ElementsMatch(t, []Role{RolePanel, RoleAccent, RoleSoft}, DefaultPrize.Roles())

	// A prize palette needs no header or line.
	p := recordPalette()
	delete(p, RoleHeader)
	delete(p, RoleLine)
	assert.NoError(t, DefaultPrize.Draw(canvas.New(canvas.Size{W: 10, H: 10}, white), p))
}

func TestRecordLayout_RowDividers(t *testing.T) {
	ys := DefaultRecord.RowDividers()
	require.Len(t, ys, 6)
	// (2370-1450)/7 = 131.43
	assert.Equal(t, []float64{1581, 1712, 1844, 1975, 2107, 2238}, ys)
	for _, y := range ys {
		assert.Greater(t, y, DefaultRecord.Table.Rect.Min.Y)
		assert.Less(t, y, DefaultRecord.Table.Rect.Max.Y)
	}

	l := DefaultRecord
	l.Rows = 1
	assert.Nil(t, l.RowDividers())
}

func TestLayout_Bounds(t *testing.T) {
	rb := DefaultRecord.Bounds()
	assert.Equal(t, canvas.R(250, 680, 2260, 3242), rb)
	for _, b := range []Box{DefaultRecord.Name, DefaultRecord.Grade, DefaultRecord.Header, DefaultRecord.Table, DefaultRecord.Issue} {
		assert.True(t, rb.ContainsRect(b.Rect))
	}

	pb := DefaultPrize.Bounds()
	assert.Equal(t, canvas.R(250, 620, 2240, 3242), pb)
}

func TestLayout_DrawStaysInBounds(t *testing.T) {
	for _, l := range []Layout{DefaultRecord, DefaultPrize} {
		c := canvas.New(canvas.A4, white)
		require.NoError(t, l.Draw(c, recordPalette()))
		require.NoError(t, c.Err())

		// One pixel of slack for anti-aliased edges.
		b := l.Bounds().Inset(-1)
		for y := 0; y < canvas.A4.H; y += 3 {
			for x := 0; x < canvas.A4.W; x += 3 {
				if b.Contains(canvas.Pt(float64(x), float64(y))) {
					continue
				}
				require.Equal(t, white, c.At(x, y), "pixel (%d,%d) outside %v", x, y, b)
			}
		}
	}
}

func TestRecordLayout_Colors(t *testing.T) {
	p := recordPalette()
	c := canvas.New(canvas.A4, white)
	require.NoError(t, DefaultRecord.Draw(c, p))

	assert.Equal(t, p[RolePanel], c.At(253, 2000), "outer outline")
	assert.Equal(t, p[RoleSoft], c.At(1047, 1025), "name box")
	assert.Equal(t, p[RoleAccent], c.At(442, 1025), "name outline")
	assert.Equal(t, p[RoleHeader], c.At(1000, 1390), "header bar")
	assert.Equal(t, p[RoleLine], c.At(1511, 1900), "column divider")
}

func TestPrizeLayout_Colors(t *testing.T) {
	p := recordPalette()
	c := canvas.New(canvas.A4, white)
	require.NoError(t, DefaultPrize.Draw(c, p))

	assert.Equal(t, p[RolePanel], c.At(253, 2000), "outer outline")
	assert.Equal(t, p[RoleSoft], c.At(1240, 2250), "event box")
	assert.Equal(t, p[RoleAccent], c.At(422, 2250), "event outline")
}
