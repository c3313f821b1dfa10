package shape

import (
	"math/rand/v2"

	"github.com/gogpu/certgen/canvas"
)

// Piece size limits, inclusive.
const (
	PieceMinW = 16
	PieceMaxW = 42
	PieceMinH = 8
	PieceMaxH = 28
)

// pcgStream is the fixed PCG stream selector; Seed picks the state.
const pcgStream = 0x9e3779b97f4a7c15

// Confetti scatters Count small rectangles and ellipses over Bounds.
// Placement is driven by a generator seeded from Seed and private to each
// call, so the same value always produces the same pieces.
type Confetti struct {
	Bounds  canvas.Rect
	Count   int
	Palette []canvas.Color
	Seed    uint64
}

// Piece is one placed confetti shape. Box.Min is the anchor, which lies
// inside the Confetti bounds; the piece extends right and down from it.
type Piece struct {
	Box   canvas.Rect
	Color canvas.Color
	Round bool
}

// Pieces generates the placement. An empty palette yields no pieces.
func (f Confetti) Pieces() []Piece {
	if f.Count <= 0 || len(f.Palette) == 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(f.Seed, pcgStream))
	left, top := int(f.Bounds.Min.X), int(f.Bounds.Min.Y)
	right, bottom := int(f.Bounds.Max.X), int(f.Bounds.Max.Y)

	pieces := make([]Piece, f.Count)
	for i := range pieces {
		x := between(rng, left, right)
		y := between(rng, top, bottom)
		w := between(rng, PieceMinW, PieceMaxW)
		h := between(rng, PieceMinH, PieceMaxH)
		col := f.Palette[rng.IntN(len(f.Palette))]
		pieces[i] = Piece{
			Box:   canvas.R(float64(x), float64(y), float64(x+w), float64(y+h)),
			Color: col,
			Round: rng.Float64() <= 0.5,
		}
	}
	return pieces
}

// between returns a uniform integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// Draw implements canvas.Drawer.
func (f Confetti) Draw(c *canvas.Canvas) {
	for _, p := range f.Pieces() {
		if p.Round {
			c.Ellipse(p.Box, canvas.Filled(p.Color))
		} else {
			c.Rectangle(p.Box, canvas.Filled(p.Color))
		}
	}
}
