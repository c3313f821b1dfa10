package variant

import (
	"github.com/gogpu/certgen/canvas"
	"github.com/gogpu/certgen/panel"
	"github.com/gogpu/certgen/shape"
)

var (
	adventureSurf    = canvas.RGBA(197, 239, 255, 190)
	adventureShallow = canvas.RGBA(3, 127, 187, 210)
	adventureDeep    = canvas.RGB(3, 103, 159)
)

var adventureRecordPalette = panel.Palette{
	panel.RolePanel:  canvas.RGB(26, 124, 182),
	panel.RoleAccent: canvas.RGB(20, 141, 207),
	panel.RoleHeader: canvas.RGB(204, 240, 255),
	panel.RoleSoft:   canvas.RGB(236, 249, 255),
	panel.RoleLine:   canvas.RGB(137, 205, 232),
}

var adventurePrizePalette = panel.Palette{
	panel.RolePanel:  canvas.RGB(26, 124, 182),
	panel.RoleAccent: canvas.RGB(20, 141, 207),
	panel.RoleSoft:   canvas.RGB(236, 249, 255),
}

// adventure is an underwater scene: surf and deep-water bands, rising
// bubbles and fish on the record; confetti, a medal and stars on the prize.
func adventure() Variant {
	return Variant{
		Name:   "adventure",
		Record: adventureRecord(),
		Prize:  adventurePrize(),
	}
}

func adventureRecord() Recipe {
	starFill := canvas.RGBA(255, 244, 183, 230)
	return Recipe{
		Top:    canvas.RGB(145, 224, 255),
		Bottom: canvas.RGB(19, 151, 223),
		Layers: []canvas.Drawer{
			shape.Wave{Anchor: shape.Top, Baseline: 360, Amplitude: 34, Wavelength: 420, Fill: adventureSurf},
			shape.Wave{Anchor: shape.Bottom, Baseline: 3340, Amplitude: 42, Wavelength: 450, Fill: adventureShallow},
			shape.Wave{Anchor: shape.Bottom, Baseline: 3415, Amplitude: 36, Wavelength: 360, Fill: adventureDeep},
			shape.Bubbles{From: 420, To: 3270, Step: 320},
			shape.Fish{At: canvas.Pt(230, 940), Size: 70, Color: canvas.RGBA(255, 236, 153, 220)},
			shape.Fish{At: canvas.Pt(2180, 1090), Size: 66, Color: canvas.RGBA(255, 236, 153, 210), Mirror: true},
			shape.Fish{At: canvas.Pt(250, 2520), Size: 72, Color: canvas.RGBA(255, 215, 136, 210)},
			shape.Fish{At: canvas.Pt(2150, 2730), Size: 68, Color: canvas.RGBA(255, 215, 136, 205), Mirror: true},
			shape.Star{Center: canvas.Pt(355, 520), Outer: 30, Inner: 12, Fill: starFill},
			shape.Star{Center: canvas.Pt(2080, 560), Outer: 26, Inner: 10, Fill: starFill},
			shape.Star{Center: canvas.Pt(430, 3030), Outer: 34, Inner: 13, Fill: starFill},
			shape.Star{Center: canvas.Pt(2050, 2980), Outer: 30, Inner: 12, Fill: starFill},
		},
		Layout:  panel.DefaultRecord,
		Palette: adventureRecordPalette,
	}
}

func adventurePrize() Recipe {
	starFill := canvas.RGBA(255, 248, 204, 235)
	return Recipe{
		Top:    canvas.RGB(147, 227, 255),
		Bottom: canvas.RGB(15, 146, 214),
		Layers: []canvas.Drawer{
			shape.Wave{Anchor: shape.Top, Baseline: 390, Amplitude: 38, Wavelength: 420, Fill: adventureSurf},
			shape.Wave{Anchor: shape.Bottom, Baseline: 3345, Amplitude: 46, Wavelength: 430, Fill: canvas.RGBA(3, 127, 187, 205)},
			shape.Wave{Anchor: shape.Bottom, Baseline: 3420, Amplitude: 34, Wavelength: 320, Fill: adventureDeep},
			shape.Confetti{
				Bounds: canvas.R(220, 210, 2260, 1180),
				Count:  90,
				Palette: []canvas.Color{
					canvas.RGBA(255, 244, 187, 220),
					canvas.RGBA(255, 220, 118, 220),
					canvas.RGBA(192, 245, 255, 210),
					canvas.RGBA(173, 224, 255, 220),
				},
				Seed: 108,
			},
			shape.Medal{Center: canvas.Pt(2040, 470), Radius: 130},
			shape.Star{Center: canvas.Pt(360, 460), Outer: 30, Inner: 12, Fill: starFill},
			shape.Star{Center: canvas.Pt(560, 330), Outer: 24, Inner: 10, Fill: starFill},
			shape.Star{Center: canvas.Pt(2050, 1040), Outer: 22, Inner: 9, Fill: starFill},
		},
		Layout:  panel.DefaultPrize,
		Palette: adventurePrizePalette,
	}
}
