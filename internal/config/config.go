// Package config loads the certgen command configuration from flags,
// CERTGEN_* environment variables and an optional yaml, toml or json file,
// in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/certgen"
	"github.com/gogpu/certgen/canvas"
	"github.com/gogpu/certgen/internal/logging"
)

// EnvPrefix prefixes every environment variable, e.g. CERTGEN_OUTPUT_DIR.
const EnvPrefix = "CERTGEN"

// Config is the file-facing configuration.
type Config struct {
	OutputDir     string         `mapstructure:"output_dir"`
	ActiveVariant string         `mapstructure:"active_variant"`
	Variants      []string       `mapstructure:"variants"`
	Workers       int            `mapstructure:"workers"`
	DPI           int            `mapstructure:"dpi"`
	Size          canvas.Size    `mapstructure:"size"`
	Log           logging.Config `mapstructure:"log"`
}

// Meta describes how the configuration was found.
type Meta struct {
	FileNotFound bool
}

// Certgen converts to the generator configuration.
func (c Config) Certgen() certgen.Config {
	return certgen.Config{
		OutputDir:     c.OutputDir,
		ActiveVariant: c.ActiveVariant,
		Variants:      c.Variants,
		Workers:       c.Workers,
		DPI:           c.DPI,
		Size:          c.Size,
	}
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"output":     "output_dir",
	"active":     "active_variant",
	"workers":    "workers",
	"log.level":  "log.level",
	"log.format": "log.format",
	"log.file":   "log.file",
}

// DefineFlags registers the persistent flags that override configuration.
func DefineFlags(cmd *cobra.Command) {
	def := certgen.DefaultConfig()
	logDef := logging.DefaultConfig()
	f := cmd.PersistentFlags()
	f.StringP("config", "c", "", "path to a yaml, toml or json config file")
	f.StringP("output", "o", def.OutputDir, "published output directory")
	f.StringP("active", "a", def.ActiveVariant, "variant to activate after generation")
	f.IntP("workers", "w", def.Workers, "number of images rendered at once")
	f.String("log.level", logDef.Level, "log level: debug, info, warn or error")
	f.String("log.format", logDef.Format, "log format: text or json")
	f.String("log.file", "", "optional log file, rotated by size")
}

func setDefaults(v *viper.Viper) {
	def := certgen.DefaultConfig()
	logDef := logging.DefaultConfig()
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("active_variant", def.ActiveVariant)
	v.SetDefault("variants", def.Variants)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("dpi", def.DPI)
	v.SetDefault("size", formatSize(def.Size))
	v.SetDefault("log.level", logDef.Level)
	v.SetDefault("log.format", logDef.Format)
	v.SetDefault("log.file", logDef.File)
	v.SetDefault("log.file_max_size_mb", logDef.FileMaxSizeMB)
	v.SetDefault("log.file_max_files", logDef.FileMaxFiles)
	v.SetDefault("log.file_max_age_days", logDef.FileMaxAgeDays)
}

// Load builds the configuration. cmd may be nil to skip flag binding;
// configFile may be empty. A missing file is reported in Meta, not as an
// error.
func Load(cmd *cobra.Command, configFile string) (Config, Meta, error) {
	v := viper.NewWithOptions(viper.WithDecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		StringToSizeHookFunc(),
	)))
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for flag, key := range flagKeys {
			if f := cmd.Flags().Lookup(flag); f != nil {
				_ = v.BindPFlag(key, f)
			}
		}
	}

	meta := Meta{}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var pathErr *os.PathError
			if !errors.As(err, &pathErr) {
				return Config{}, Meta{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
			}
			meta.FileNotFound = true
		}
	}

	conf := Config{}
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, Meta{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return conf, meta, nil
}

// StringToSizeHookFunc decodes "WxH" strings into canvas.Size.
func StringToSizeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(canvas.Size{}) {
			return data, nil
		}
		return ParseSize(data.(string))
	}
}

// ParseSize parses a "WxH" pixel size such as "2480x3508".
func ParseSize(s string) (canvas.Size, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return canvas.Size{}, fmt.Errorf("size %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return canvas.Size{}, fmt.Errorf("size %q: width: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return canvas.Size{}, fmt.Errorf("size %q: height: %w", s, err)
	}
	return canvas.Size{W: w, H: h}, nil
}

func formatSize(s canvas.Size) string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}
