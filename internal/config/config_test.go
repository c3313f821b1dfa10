package config

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/certgen"
	"github.com/gogpu/certgen/canvas"
)

func getConfig(t *testing.T, cmd *cobra.Command, configFile string) (Config, Meta) {
	t.Helper()
	conf, meta, err := Load(cmd, configFile)
	require.NoError(t, err)
	return conf, meta
}

func checkFileConfig(t *testing.T, conf Config) {
	t.Helper()
	require.Equal(t, "/srv/certificates", conf.OutputDir)
	require.Equal(t, "swim-hero", conf.ActiveVariant)
	require.Equal(t, []string{"medal-fes", "swim-hero"}, conf.Variants)
	require.Equal(t, 2, conf.Workers)
	require.Equal(t, 300, conf.DPI)
	require.Equal(t, canvas.Size{W: 1240, H: 1754}, conf.Size)
	require.Equal(t, "debug", conf.Log.Level)
	require.Equal(t, "json", conf.Log.Format)
	require.Equal(t, 100, conf.Log.FileMaxSizeMB)
	require.NoError(t, conf.Certgen().Validate())
}

func TestConfigYAML(t *testing.T) {
	conf, meta := getConfig(t, nil, "testdata/config.yaml")
	require.False(t, meta.FileNotFound)
	checkFileConfig(t, conf)
}

func TestConfigTOML(t *testing.T) {
	conf, _ := getConfig(t, nil, "testdata/config.toml")
	checkFileConfig(t, conf)
}

func TestConfigJSON(t *testing.T) {
	conf, _ := getConfig(t, nil, "testdata/config.json")
	checkFileConfig(t, conf)
}

func TestConfigDefaults(t *testing.T) {
	conf, meta := getConfig(t, nil, "")
	require.False(t, meta.FileNotFound)
	require.Equal(t, certgen.DefaultConfig(), conf.Certgen())
	require.Equal(t, "info", conf.Log.Level)
	require.Equal(t, "text", conf.Log.Format)
}

func TestConfigFileNotFound(t *testing.T) {
	conf, meta := getConfig(t, nil, filepath.Join(t.TempDir(), "missing.yaml"))
	require.True(t, meta.FileNotFound)
	require.Equal(t, "public/pdf-templates", conf.OutputDir)
}

func TestConfigEnvVars(t *testing.T) {
	t.Setenv("CERTGEN_OUTPUT_DIR", "/tmp/env-out")
	t.Setenv("CERTGEN_VARIANTS", "adventure,medal-fes")
	t.Setenv("CERTGEN_ACTIVE_VARIANT", "medal-fes")
	t.Setenv("CERTGEN_SIZE", "620x877")
	t.Setenv("CERTGEN_LOG_LEVEL", "warn")

	conf, _ := getConfig(t, nil, "testdata/config.yaml")
	require.Equal(t, "/tmp/env-out", conf.OutputDir)
	require.Equal(t, []string{"adventure", "medal-fes"}, conf.Variants)
	require.Equal(t, "medal-fes", conf.ActiveVariant)
	require.Equal(t, canvas.Size{W: 620, H: 877}, conf.Size)
	require.Equal(t, "warn", conf.Log.Level)
	// Not overridden: still from the file.
	require.Equal(t, 2, conf.Workers)
}

func TestConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CERTGEN_OUTPUT_DIR", "/tmp/env-out")
	t.Setenv("CERTGEN_WORKERS", "6")

	cmd := &cobra.Command{Use: "test"}
	DefineFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--output", "/tmp/flag-out", "--log.format", "text"}))

	conf, _ := getConfig(t, cmd, "testdata/config.yaml")
	require.Equal(t, "/tmp/flag-out", conf.OutputDir)
	require.Equal(t, "text", conf.Log.Format)
	require.Equal(t, 6, conf.Workers)
	require.Equal(t, "swim-hero", conf.ActiveVariant)
}

func TestConfigUnchangedFlagKeepsDefault(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	DefineFlags(cmd)
	require.NoError(t, cmd.ParseFlags(nil))

	conf, _ := getConfig(t, cmd, "")
	require.Equal(t, runtime.NumCPU(), conf.Workers)
	require.Equal(t, "adventure", conf.ActiveVariant)
}

func TestParseSize(t *testing.T) {
	s, err := ParseSize(" 2480X3508 ")
	require.NoError(t, err)
	require.Equal(t, canvas.A4, s)

	for _, bad := range []string{"", "2480", "ax3508", "2480xb"} {
		_, err := ParseSize(bad)
		require.Error(t, err, bad)
	}
}
