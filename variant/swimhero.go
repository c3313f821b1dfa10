package variant

import (
	"github.com/gogpu/certgen/canvas"
	"github.com/gogpu/certgen/panel"
	"github.com/gogpu/certgen/shape"
)

var (
	swimHeroBolt   = canvas.Filled(canvas.RGBA(255, 242, 120, 220))
	swimHeroSpeech = canvas.Style{Fill: canvas.RGBA(255, 255, 255, 208), Outline: canvas.RGBA(43, 126, 217, 215), Width: 8}
	// Bubble tails share the bubble colors with a hairline outline.
	swimHeroTail = canvas.Style{Fill: swimHeroSpeech.Fill, Outline: swimHeroSpeech.Outline, Width: 1}
)

var swimHeroRecordPalette = panel.Palette{
	panel.RolePanel:  canvas.RGB(59, 121, 226),
	panel.RoleAccent: canvas.RGB(41, 146, 210),
	panel.RoleHeader: canvas.RGB(213, 239, 255),
	panel.RoleSoft:   canvas.RGB(241, 250, 255),
	panel.RoleLine:   canvas.RGB(152, 198, 238),
}

var swimHeroPrizePalette = panel.Palette{
	panel.RolePanel:  canvas.RGB(59, 121, 226),
	panel.RoleAccent: canvas.RGB(41, 146, 210),
	panel.RoleSoft:   canvas.RGB(241, 250, 255),
}

// swimHero is a comic-book look: a checkered pool floor under a sunburst,
// lightning bolts and speech bubbles on the record; an emblem with a star
// and confetti on the prize.
func swimHero() Variant {
	return Variant{
		Name:   "swim-hero",
		Record: swimHeroRecord(),
		Prize:  swimHeroPrize(),
	}
}

func swimHeroRecord() Recipe {
	return Recipe{
		Top:    canvas.RGB(155, 246, 228),
		Bottom: canvas.RGB(67, 175, 255),
		Layers: []canvas.Drawer{
			shape.Checkerboard{Square: 120, Fill: canvas.RGBA(255, 255, 255, 35)},
			shape.Rays{
				Center: canvas.Pt(1240, 420), Inner: 200, Outer: 2100,
				FromDeg: -85, ToDeg: 266, StepDeg: 9,
				Color: canvas.RGBA(255, 255, 255, 82), Width: 6,
			},
			shape.Polygon{
				Points: []canvas.Point{{X: 190, Y: 500}, {X: 400, Y: 430}, {X: 340, Y: 660}, {X: 510, Y: 740}, {X: 220, Y: 870}, {X: 290, Y: 650}},
				Style:  swimHeroBolt,
			},
			shape.Polygon{
				Points: []canvas.Point{{X: 2160, Y: 680}, {X: 1960, Y: 780}, {X: 2030, Y: 980}, {X: 1840, Y: 1020}, {X: 2050, Y: 1230}, {X: 2020, Y: 940}},
				Style:  swimHeroBolt,
			},
			shape.Ellipse{Box: canvas.R(210, 2390, 640, 2670), Style: swimHeroSpeech},
			shape.Polygon{
				Points: []canvas.Point{{X: 520, Y: 2570}, {X: 690, Y: 2640}, {X: 540, Y: 2690}},
				Style:  swimHeroTail,
			},
			shape.Ellipse{Box: canvas.R(1840, 2580, 2260, 2840), Style: swimHeroSpeech},
			shape.Polygon{
				Points: []canvas.Point{{X: 1960, Y: 2820}, {X: 1830, Y: 2940}, {X: 2050, Y: 2890}},
				Style:  swimHeroTail,
			},
		},
		Layout:  panel.DefaultRecord,
		Palette: swimHeroRecordPalette,
	}
}

func swimHeroPrize() Recipe {
	return Recipe{
		Top:    canvas.RGB(165, 246, 228),
		Bottom: canvas.RGB(62, 168, 255),
		Layers: []canvas.Drawer{
			shape.Checkerboard{Square: 120, Fill: canvas.RGBA(255, 255, 255, 32)},
			shape.Rays{
				Center: canvas.Pt(1240, 340), Inner: 240, Outer: 2160,
				FromDeg: -85, ToDeg: 266, StepDeg: 8,
				Color: canvas.RGBA(255, 255, 255, 86), Width: 7,
			},
			shape.Ellipse{
				Box:   canvas.R(1020, 210, 1460, 650),
				Style: canvas.Style{Fill: canvas.RGBA(255, 94, 88, 240), Outline: canvas.RGB(197, 56, 61), Width: 12},
			},
			shape.Ellipse{Box: canvas.R(1100, 290, 1380, 570), Style: canvas.Filled(canvas.RGBA(255, 233, 91, 245))},
			shape.Star{Center: canvas.Pt(1240, 430), Outer: 95, Inner: 40, Fill: canvas.RGBA(255, 111, 98, 250)},
			shape.Confetti{
				Bounds: canvas.R(270, 180, 2220, 1120),
				Count:  95,
				Palette: []canvas.Color{
					canvas.RGBA(255, 233, 92, 230),
					canvas.RGBA(255, 124, 109, 225),
					canvas.RGBA(83, 175, 255, 225),
					canvas.RGBA(255, 255, 255, 200),
				},
				Seed: 812,
			},
		},
		Layout:  panel.DefaultPrize,
		Palette: swimHeroPrizePalette,
	}
}
