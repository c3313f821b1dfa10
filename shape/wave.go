package shape

import (
	"math"

	"github.com/gogpu/certgen/canvas"
)

// WaveStep is the horizontal sampling distance of a wave edge, in pixels.
const WaveStep = 28

// Anchor selects the canvas edge a wave band is closed against.
type Anchor int

const (
	// Top closes the band against y = 0.
	Top Anchor = iota
	// Bottom closes the band against y = H.
	Bottom
)

func (a Anchor) String() string {
	switch a {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Wave is a band spanning the full canvas width whose free edge follows
// y = Baseline + Amplitude*sin(2πx/Wavelength).
type Wave struct {
	Anchor     Anchor
	Baseline   float64
	Amplitude  float64
	Wavelength float64
	Fill       canvas.Color
}

// Points returns the closed outline of the band on a canvas of the given
// size: the anchored corner at x=0, the sampled edge, then the anchored
// corner at x=W.
func (w Wave) Points(size canvas.Size) []canvas.Point {
	edge := 0.0
	if w.Anchor == Bottom {
		edge = float64(size.H)
	}
	pts := make([]canvas.Point, 0, size.W/WaveStep+4)
	pts = append(pts, canvas.Pt(0, edge))
	for x := 0; x < size.W+WaveStep; x += WaveStep {
		fx := float64(x)
		pts = append(pts, canvas.Pt(fx, w.Baseline+math.Sin(fx/w.Wavelength*2*math.Pi)*w.Amplitude))
	}
	return append(pts, canvas.Pt(float64(size.W), edge))
}

// Draw implements canvas.Drawer.
func (w Wave) Draw(c *canvas.Canvas) {
	c.Polygon(w.Points(c.Size()), canvas.Filled(w.Fill))
}
