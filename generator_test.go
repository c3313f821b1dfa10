package certgen

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/certgen/canvas"
	"github.com/gogpu/certgen/variant"
)

type saved struct {
	name string
	kind variant.Kind
}

type fakePersister struct {
	mu        sync.Mutex
	saves     []saved
	bounds    []image.Rectangle
	activated []string
	// savesAtActivate is len(saves) when Activate was called.
	savesAtActivate int
	failOn          *saved
}

var errDiskFull = errors.New("disk full")

func (f *fakePersister) Save(name string, kind variant.Kind, img image.Image) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn != nil && *f.failOn == (saved{name, kind}) {
		return errDiskFull
	}
	f.saves = append(f.saves, saved{name, kind})
	f.bounds = append(f.bounds, img.Bounds())
	return nil
}

func (f *fakePersister) Activate(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activated = append(f.activated, name)
	f.savesAtActivate = len(f.saves)
	return nil
}

// small keeps the recipes' coordinates but renders a cheap canvas.
var small = canvas.Size{W: 248, H: 351}

func testConfig(opts ...Option) Config {
	return NewConfig(append([]Option{WithSize(small), WithWorkers(3)}, opts...)...)
}

func TestGenerator_Generate(t *testing.T) {
	p := &fakePersister{}
	g, err := NewGenerator(testConfig(WithActiveVariant("medal-fes")), p)
	require.NoError(t, err)

	res, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Generated: variant.Names(), Active: "medal-fes"}, res)

	var want []saved
	for _, n := range variant.Names() {
		for _, k := range variant.Kinds {
			want = append(want, saved{n, k})
		}
	}
	assert.ElementsMatch(t, want, p.saves)
	for _, b := range p.bounds {
		assert.Equal(t, image.Rect(0, 0, small.W, small.H), b)
	}
	assert.Equal(t, []string{"medal-fes"}, p.activated)
	assert.Equal(t, len(want), p.savesAtActivate, "activation ran before every save finished")
}

func TestGenerator_UnknownVariantWritesNothing(t *testing.T) {
	p := &fakePersister{}
	_, err := NewGenerator(testConfig(WithVariants("adventure", "space-fest")), p)
	require.ErrorIs(t, err, variant.ErrUnknown)

	_, err = NewGenerator(testConfig(WithActiveVariant("space-fest")), p)
	require.ErrorIs(t, err, variant.ErrUnknown)

	assert.Empty(t, p.saves)
	assert.Empty(t, p.activated)
}

func TestGenerator_SaveFailure(t *testing.T) {
	p := &fakePersister{failOn: &saved{"swim-hero", variant.Prize}}
	g, err := NewGenerator(testConfig(WithWorkers(1)), p)
	require.NoError(t, err)

	_, err = g.Generate(context.Background())
	require.ErrorIs(t, err, errDiskFull)
	assert.Contains(t, err.Error(), "swim-hero first-prize-certificate")
	assert.Empty(t, p.activated)
}

func TestGenerator_Canceled(t *testing.T) {
	p := &fakePersister{}
	g, err := NewGenerator(testConfig(), p)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, p.saves)
	assert.Empty(t, p.activated)
}

func TestGenerator_RenderDeterministic(t *testing.T) {
	g, err := NewGenerator(testConfig(), &fakePersister{})
	require.NoError(t, err)

	for _, k := range variant.Kinds {
		a, err := g.Render("adventure", k)
		require.NoError(t, err)
		b, err := g.Render("adventure", k)
		require.NoError(t, err)
		assert.Equal(t, a.Pix(), b.Pix())
		assert.Equal(t, small, a.Size())
	}

	_, err = g.Render("space-fest", variant.Record)
	require.ErrorIs(t, err, variant.ErrUnknown)
}

func TestGenerator_DuplicateVariantRejected(t *testing.T) {
	p := &fakePersister{}
	_, err := NewGenerator(testConfig(WithVariants("adventure", "adventure", "adventure", "adventure"), WithWorkers(8)), p)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Empty(t, p.saves)
	assert.Empty(t, p.activated)
}
