package certgen

import (
	"context"
	"fmt"
	"image"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/certgen/canvas"
	"github.com/gogpu/certgen/variant"
)

// Persister stores rendered certificates and publishes one variant.
// Implementations must be safe for concurrent Save calls.
type Persister interface {
	// Save stores the certificate of the given kind for a variant.
	Save(name string, kind variant.Kind, img image.Image) error
	// Activate publishes both certificates of a previously saved variant.
	Activate(name string) error
}

// Result summarizes a generation pass.
type Result struct {
	Generated []string
	Active    string
}

// Generator renders the configured variants and hands them to a Persister.
type Generator struct {
	cfg   Config
	store Persister
}

// NewGenerator validates cfg and returns a Generator writing through p.
func NewGenerator(cfg Config, p Persister) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, store: p}, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// Render draws one certificate.
func (g *Generator) Render(name string, kind variant.Kind) (*canvas.Canvas, error) {
	v, err := variant.Lookup(name)
	if err != nil {
		return nil, err
	}
	c, err := v.Recipe(kind).Render(g.cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("render %s %s: %w", name, kind, err)
	}
	return c, nil
}

// Generate renders every configured variant in parallel, saves each image,
// then activates the configured variant. Activation runs only when every
// render and save succeeded. The first failure cancels images not yet
// started and is returned.
func (g *Generator) Generate(ctx context.Context) (Result, error) {
	log := Logger()
	start := time.Now()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)
	for _, name := range g.cfg.Variants {
		for _, kind := range variant.Kinds {
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return g.produce(name, kind)
			})
		}
	}
	if err := eg.Wait(); err != nil {
		log.Warn("certgen: generation failed", "error", err)
		return Result{}, err
	}

	if err := g.store.Activate(g.cfg.ActiveVariant); err != nil {
		return Result{}, fmt.Errorf("activate %s: %w", g.cfg.ActiveVariant, err)
	}
	log.Info("certgen: generation complete",
		"variants", g.cfg.Variants,
		"active", g.cfg.ActiveVariant,
		"elapsed", time.Since(start))

	return Result{Generated: g.cfg.Variants, Active: g.cfg.ActiveVariant}, nil
}

func (g *Generator) produce(name string, kind variant.Kind) error {
	log := Logger().With("variant", name, "artifact", kind.Artifact())

	t := time.Now()
	c, err := g.Render(name, kind)
	if err != nil {
		return err
	}
	log.Debug("certgen: rendered", "elapsed", time.Since(t))

	t = time.Now()
	if err := g.store.Save(name, kind, c.Image()); err != nil {
		return fmt.Errorf("save %s %s: %w", name, kind.Artifact(), err)
	}
	log.Debug("certgen: saved", "elapsed", time.Since(t))
	return nil
}
