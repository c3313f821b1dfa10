package certgen

import (
	"errors"
	"fmt"
	"runtime"
	"slices"

	"github.com/gogpu/certgen/canvas"
	"github.com/gogpu/certgen/variant"
)

// ErrInvalidConfig is returned by Config.Validate for settings that cannot
// drive a generation pass.
var ErrInvalidConfig = errors.New("invalid config")

// MaxPixels bounds the canvas area. A canvas costs 4 bytes per pixel for
// every concurrent worker; the limit admits A4 at 600 dpi.
const MaxPixels = 1 << 26

// Config is the immutable configuration of a generation pass.
type Config struct {
	// OutputDir is the published location; each variant is rendered into
	// OutputDir/variants/<name>/.
	OutputDir string
	// ActiveVariant is copied to OutputDir once every render has finished.
	ActiveVariant string
	// Variants lists the variants to render.
	Variants []string
	// Workers bounds the number of images rendered at once.
	Workers int
	// DPI is the resolution recorded in the written images.
	DPI int
	// Size is the canvas resolution.
	Size canvas.Size
}

// DefaultConfig renders every variant at A4 300 dpi into
// public/pdf-templates and activates "adventure".
func DefaultConfig() Config {
	return Config{
		OutputDir:     "public/pdf-templates",
		ActiveVariant: "adventure",
		Variants:      variant.Names(),
		Workers:       runtime.NumCPU(),
		DPI:           300,
		Size:          canvas.A4,
	}
}

// Option adjusts a Config built by NewConfig.
//
// Example:
//
//	cfg := certgen.NewConfig(
//		certgen.WithOutputDir("out"),
//		certgen.WithActiveVariant("medal-fes"),
//	)
type Option func(*Config)

// NewConfig returns DefaultConfig with opts applied in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOutputDir sets the published location.
func WithOutputDir(dir string) Option {
	return func(c *Config) { c.OutputDir = dir }
}

// WithActiveVariant sets the variant activated after rendering.
func WithActiveVariant(name string) Option {
	return func(c *Config) { c.ActiveVariant = name }
}

// WithVariants restricts rendering to the named variants.
func WithVariants(names ...string) Option {
	return func(c *Config) { c.Variants = slices.Clone(names) }
}

// WithWorkers sets the number of concurrent renders.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithDPI sets the resolution recorded in the written images.
func WithDPI(dpi int) Option {
	return func(c *Config) { c.DPI = dpi }
}

// WithSize sets the canvas resolution.
func WithSize(s canvas.Size) Option {
	return func(c *Config) { c.Size = s }
}

// Validate checks the configuration. Undefined variant names are reported
// as variant.ErrUnknown, every other problem as ErrInvalidConfig.
func (c Config) Validate() error {
	if err := variant.Check(c.Variants...); err != nil {
		return err
	}
	if err := variant.Check(c.ActiveVariant); err != nil {
		return fmt.Errorf("active %w", err)
	}
	switch {
	case c.OutputDir == "":
		return fmt.Errorf("%w: empty output directory", ErrInvalidConfig)
	case len(c.Variants) == 0:
		return fmt.Errorf("%w: no variants to render", ErrInvalidConfig)
	case hasDuplicate(c.Variants):
		return fmt.Errorf("%w: variants listed more than once: %v", ErrInvalidConfig, c.Variants)
	case !slices.Contains(c.Variants, c.ActiveVariant):
		return fmt.Errorf("%w: active variant %q is not rendered", ErrInvalidConfig, c.ActiveVariant)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	case c.DPI < 1:
		return fmt.Errorf("%w: dpi must be positive, got %d", ErrInvalidConfig, c.DPI)
	case c.Size.W < 1 || c.Size.H < 1:
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidConfig, c.Size.W, c.Size.H)
	case int64(c.Size.W)*int64(c.Size.H) > MaxPixels:
		return fmt.Errorf("%w: canvas size %dx%d exceeds %d pixels", ErrInvalidConfig, c.Size.W, c.Size.H, MaxPixels)
	}
	return nil
}

func hasDuplicate(names []string) bool {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return true
		}
		seen[n] = struct{}{}
	}
	return false
}
