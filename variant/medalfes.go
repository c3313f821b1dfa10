package variant

import (
	"github.com/gogpu/certgen/canvas"
	"github.com/gogpu/certgen/panel"
	"github.com/gogpu/certgen/shape"
)

var (
	medalFesBand    = shape.EdgeBands{Width: 320, Fill: canvas.RGBA(255, 166, 122, 135)}
	medalFesLaurel  = canvas.RGBA(97, 174, 92, 205)
	medalFesPennant = canvas.RGBA(66, 134, 231, 220)
)

var medalFesRecordPalette = panel.Palette{
	panel.RolePanel:  canvas.RGB(237, 132, 47),
	panel.RoleAccent: canvas.RGB(231, 103, 70),
	panel.RoleHeader: canvas.RGB(255, 233, 187),
	panel.RoleSoft:   canvas.RGB(255, 247, 227),
	panel.RoleLine:   canvas.RGB(241, 198, 133),
}

var medalFesPrizePalette = panel.Palette{
	panel.RolePanel:  canvas.RGB(237, 132, 47),
	panel.RoleAccent: canvas.RGB(231, 103, 70),
	panel.RoleSoft:   canvas.RGB(255, 247, 227),
}

// medalFes is a sports-day festival: warm side bands, a laurel wreath around
// a gold disc, and confetti. The prize adds pennants and a larger wreath.
func medalFes() Variant {
	return Variant{
		Name:   "medal-fes",
		Record: medalFesRecord(),
		Prize:  medalFesPrize(),
	}
}

func medalFesRecord() Recipe {
	center := canvas.Pt(1240, 500)
	return Recipe{
		Top:    canvas.RGB(255, 244, 190),
		Bottom: canvas.RGB(255, 195, 144),
		Layers: []canvas.Drawer{
			medalFesBand,
			shape.EdgeChevrons{From: 200, To: 3400, Step: 230, Depth: 170, Fill: canvas.RGBA(255, 214, 170, 120)},
			shape.Laurel{Center: center, Radius: 320, Color: medalFesLaurel, Side: shape.Left},
			shape.Laurel{Center: center, Radius: 320, Color: medalFesLaurel, Side: shape.Right},
			shape.Ellipse{
				Box:   canvas.R(1090, 310, 1390, 610),
				Style: canvas.Style{Fill: canvas.RGB(255, 207, 90), Outline: canvas.RGB(230, 150, 40), Width: 12},
			},
			shape.Star{Center: canvas.Pt(1240, 460), Outer: 70, Inner: 30, Fill: canvas.RGBA(255, 246, 186, 240)},
			shape.Confetti{
				Bounds: canvas.R(350, 2420, 2140, 3260),
				Count:  65,
				Palette: []canvas.Color{
					canvas.RGBA(255, 187, 120, 205),
					canvas.RGBA(255, 214, 143, 205),
					canvas.RGBA(250, 154, 129, 215),
					canvas.RGBA(255, 241, 207, 210),
				},
				Seed: 219,
			},
		},
		Layout:  panel.DefaultRecord,
		Palette: medalFesRecordPalette,
	}
}

func medalFesPrize() Recipe {
	center := canvas.Pt(1240, 600)
	laurel := canvas.RGBA(97, 174, 92, 210)
	return Recipe{
		Top:    canvas.RGB(255, 244, 189),
		Bottom: canvas.RGB(255, 186, 137),
		Layers: []canvas.Drawer{
			medalFesBand,
			shape.Polygon{
				Points: []canvas.Point{{X: 470, Y: 170}, {X: 620, Y: 520}, {X: 770, Y: 170}},
				Style:  canvas.Filled(canvas.RGBA(242, 92, 70, 220)),
			},
			shape.Polygon{
				Points: []canvas.Point{{X: 1710, Y: 170}, {X: 1860, Y: 520}, {X: 2010, Y: 170}},
				Style:  canvas.Filled(medalFesPennant),
			},
			shape.Laurel{Center: center, Radius: 360, Color: laurel, Side: shape.Left},
			shape.Laurel{Center: center, Radius: 360, Color: laurel, Side: shape.Right},
			shape.Ellipse{
				Box:   canvas.R(1030, 290, 1450, 710),
				Style: canvas.Style{Fill: canvas.RGB(255, 208, 96), Outline: canvas.RGB(228, 145, 33), Width: 14},
			},
			shape.Ellipse{Box: canvas.R(1108, 368, 1372, 632), Style: canvas.Filled(canvas.RGBA(255, 240, 176, 250))},
			shape.Star{Center: canvas.Pt(1240, 500), Outer: 94, Inner: 40, Fill: canvas.RGB(255, 198, 52)},
			shape.Confetti{
				Bounds: canvas.R(260, 180, 2240, 1260),
				Count:  110,
				Palette: []canvas.Color{
					canvas.RGBA(255, 190, 115, 220),
					canvas.RGBA(245, 102, 83, 220),
					canvas.RGBA(104, 160, 242, 220),
					canvas.RGBA(255, 234, 177, 215),
				},
				Seed: 456,
			},
		},
		Layout:  panel.DefaultPrize,
		Palette: medalFesPrizePalette,
	}
}
