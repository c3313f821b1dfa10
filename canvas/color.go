package canvas

import "math"

// Color is a straight-alpha RGBA color with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color with an explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Opaque returns c with full alpha.
func (c Color) Opaque() Color {
	c.A = 255
	return c
}

// IsZero reports whether c is fully transparent. Transparent fills and
// outlines are skipped by the canvas.
func (c Color) IsZero() bool {
	return c.A == 0
}

// unit returns the channels scaled to [0, 1], the range gg expects.
func (c Color) unit() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// Blend linearly interpolates the RGB channels of start and end.
// Each channel is start + (end-start)*t truncated toward zero. t is not
// clamped; values outside [0, 1] extrapolate and the result saturates at the
// byte range. The returned color is opaque.
func Blend(start, end Color, t float64) Color {
	return Color{
		R: lerpChannel(start.R, end.R, t),
		G: lerpChannel(start.G, end.G, t),
		B: lerpChannel(start.B, end.B, t),
		A: 255,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Trunc(float64(a) + (float64(b)-float64(a))*t)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
