package certgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/certgen/canvas"
	"github.com/gogpu/certgen/variant"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "public/pdf-templates", cfg.OutputDir)
	assert.Equal(t, "adventure", cfg.ActiveVariant)
	assert.Equal(t, variant.Names(), cfg.Variants)
	assert.Equal(t, 300, cfg.DPI)
	assert.Equal(t, canvas.A4, cfg.Size)
	assert.Positive(t, cfg.Workers)
}

func TestNewConfig(t *testing.T) {
	names := []string{"medal-fes", "swim-hero"}
	cfg := NewConfig(
		WithOutputDir("out"),
		WithVariants(names...),
		WithActiveVariant("medal-fes"),
		WithWorkers(2),
		WithDPI(150),
		WithSize(canvas.Size{W: 100, H: 200}),
	)
	names[0] = "changed"

	require.NoError(t, cfg.Validate())
	assert.Equal(t, Config{
		OutputDir:     "out",
		ActiveVariant: "medal-fes",
		Variants:      []string{"medal-fes", "swim-hero"},
		Workers:       2,
		DPI:           150,
		Size:          canvas.Size{W: 100, H: 200},
	}, cfg)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"unknown variant", []Option{WithVariants("adventure", "space-fest")}, variant.ErrUnknown},
		{"unknown active", []Option{WithActiveVariant("space-fest")}, variant.ErrUnknown},
		{"active not rendered", []Option{WithVariants("swim-hero")}, ErrInvalidConfig},
		{"no variants", []Option{WithVariants()}, ErrInvalidConfig},
		{"empty output", []Option{WithOutputDir("")}, ErrInvalidConfig},
		{"zero workers", []Option{WithWorkers(0)}, ErrInvalidConfig},
		{"zero dpi", []Option{WithDPI(0)}, ErrInvalidConfig},
		{"empty size", []Option{WithSize(canvas.Size{W: 0, H: 10})}, ErrInvalidConfig},
		{"duplicate variant", []Option{WithVariants("adventure", "medal-fes", "adventure")}, ErrInvalidConfig},
		{"oversized canvas", []Option{WithSize(canvas.Size{W: 100000, H: 100000})}, ErrInvalidConfig},
		{"wide strip over limit", []Option{WithSize(canvas.Size{W: MaxPixels, H: 2})}, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfig(tt.opts...).Validate()
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConfig_ValidateSizeLimit(t *testing.T) {
	// A4 at 600 dpi is the largest sheet the limit is meant to admit.
	require.NoError(t, NewConfig(WithSize(canvas.Size{W: 4960, H: 7016})).Validate())
	require.NoError(t, NewConfig(WithSize(canvas.Size{W: MaxPixels, H: 1})).Validate())
}
