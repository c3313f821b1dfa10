// Package certgen generates decorative certificate backgrounds.
//
// # Overview
//
// Each variant is a themed pair of images: a record certificate with a
// results table and a first-prize certificate. Both are composed from a
// vertical gradient, layers of shape primitives (waves, stars, confetti,
// medals, laurels and more) and an information panel drawn on top.
//
// # Quick Start
//
//	cfg := certgen.NewConfig(certgen.WithActiveVariant("swim-hero"))
//	g, err := certgen.NewGenerator(cfg, persister)
//	if err != nil {
//		return err
//	}
//	res, err := g.Generate(ctx)
//
// The persister decides where images go. The certgen command writes PNG
// files through its internal store.
//
// # Output
//
// Every variant is written to <OutputDir>/variants/<name>/ as
// record-certificate.png and first-prize-certificate.png. The active
// variant's two files are then copied to <OutputDir>/.
//
// # Packages
//
//   - canvas: raster surface, colors, gradients and styled drawing
//   - shape: the reusable primitives
//   - panel: record and prize layouts with their palettes
//   - variant: the named compositions
//
// Rendering uses github.com/gogpu/gg's software rasterizer.
package certgen
