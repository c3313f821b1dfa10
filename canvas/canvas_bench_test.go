package canvas

import "testing"

// BenchmarkNewGradient measures the background fill at full A4 size.
func BenchmarkNewGradient(b *testing.B) {
	top, bottom := RGB(145, 224, 255), RGB(19, 151, 223)
	b.ReportAllocs()
	for b.Loop() {
		_ = NewGradient(A4, top, bottom)
	}
}

// BenchmarkShapes compares the cost of the styled draw operations.
func BenchmarkShapes(b *testing.B) {
	c := New(Size{W: 1000, H: 1000}, RGB(255, 255, 255))
	box := R(100, 100, 900, 700)
	s := Style{Fill: RGBA(20, 141, 207, 200), Outline: RGB(26, 124, 182), Width: 8}

	benchmarks := []struct {
		name string
		draw func()
	}{
		{"Rectangle", func() { c.Rectangle(box, s) }},
		{"RoundedRectangle", func() { c.RoundedRectangle(box, 92, s) }},
		{"Ellipse", func() { c.Ellipse(box, s) }},
		{"Line", func() { c.Line(box.Min, box.Max, s.Outline, 6) }},
	}
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			for b.Loop() {
				bm.draw()
			}
		})
	}
}
