package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/certgen/variant"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVariants(t *testing.T) {
	out, err := run(t, "variants")
	require.NoError(t, err)
	assert.Equal(t, "adventure\nmedal-fes\nswim-hero\n", out)
}

func TestActivate_Usage(t *testing.T) {
	_, err := run(t, "activate")
	require.ErrorIs(t, err, errUsage)
	assert.Contains(t, err.Error(), "available variants: adventure, medal-fes, swim-hero")
}

func TestActivate_Unknown(t *testing.T) {
	_, err := run(t, "activate", "space-fest", "--output", t.TempDir())
	require.ErrorIs(t, err, variant.ErrUnknown)
}

func TestGenerateAndActivate(t *testing.T) {
	t.Setenv("CERTGEN_SIZE", "248x351")
	dir := t.TempDir()

	out, err := run(t, "generate", "--output", dir, "--active", "swim-hero")
	require.NoError(t, err)
	assert.Equal(t, "Generated variants: adventure, medal-fes, swim-hero\nActive variant: swim-hero\n", out)

	for _, name := range variant.Names() {
		for _, k := range variant.Kinds {
			assert.FileExists(t, filepath.Join(dir, "variants", name, k.Artifact()+".png"))
		}
	}
	assertPublished(t, dir, "swim-hero")

	out, err = run(t, "activate", "medal-fes", "--output", dir)
	require.NoError(t, err)
	assert.Equal(t, "Activated variant: medal-fes\n", out)
	assertPublished(t, dir, "medal-fes")
}

func TestGenerate_UnknownActive(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "generate", "--output", dir, "--active", "space-fest")
	require.ErrorIs(t, err, variant.ErrUnknown)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_MissingConfigFile(t *testing.T) {
	_, err := run(t, "generate", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "config file not found")
}

func assertPublished(t *testing.T, dir, name string) {
	t.Helper()
	for _, k := range variant.Kinds {
		want, err := os.ReadFile(filepath.Join(dir, "variants", name, k.Artifact()+".png"))
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(dir, k.Artifact()+".png"))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(want, got), "%s is not %s's", k.Artifact(), name)
	}
}
