// Package shape holds the geometric primitives certificates are composed
// from: stars, wave bands, fish, confetti, medals, laurels and a few
// decorative patterns.
//
// Every primitive is a plain value whose fields name its parameters and
// which implements canvas.Drawer. Drawing never fails; shapes that extend
// past the canvas are clipped. Where the geometry is worth checking on its
// own, a primitive also exposes it (StarPoints, Wave.Points, Fish.Outline,
// Confetti.Pieces, Laurel.Leaves).
package shape
