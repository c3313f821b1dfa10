// Package logging builds the command's slog logger: level and format from
// configuration, stderr output, and an optional rotating log file.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrInvalid is returned for an unrecognized level or format.
var ErrInvalid = errors.New("invalid logging config")

// Config describes the desired logging configuration.
type Config struct {
	Level          string `mapstructure:"level"`
	Format         string `mapstructure:"format"`
	File           string `mapstructure:"file"`
	FileMaxSizeMB  int    `mapstructure:"file_max_size_mb"`
	FileMaxFiles   int    `mapstructure:"file_max_files"`
	FileMaxAgeDays int    `mapstructure:"file_max_age_days"`
}

// DefaultConfig logs info and above as text to stderr only.
func DefaultConfig() Config {
	return Config{
		Level:          "info",
		Format:         "text",
		FileMaxSizeMB:  100,
		FileMaxFiles:   3,
		FileMaxAgeDays: 30,
	}
}

// Validate reports an unknown level or format.
func (c Config) Validate() error {
	if !ValidLevel(c.Level) {
		return fmt.Errorf("%w: level %q", ErrInvalid, c.Level)
	}
	if !ValidFormat(c.Format) {
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}
	return nil
}

func (c Config) String() string {
	s := fmt.Sprintf("level=%s format=%s", c.Level, c.Format)
	if c.File != "" {
		s += fmt.Sprintf(" file=%s max_size=%dMB max_files=%d max_age=%dd",
			c.File, c.FileMaxSizeMB, c.FileMaxFiles, c.FileMaxAgeDays)
	}
	return s
}

// New returns a logger writing to w and, when cfg.File is set, to a rotating
// file as well. The returned closer releases the file and is nil otherwise.
func New(cfg Config, w io.Writer) (*slog.Logger, io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	writer, closer := buildWriter(cfg, w)
	return slog.New(buildHandler(writer, parseLevel(cfg.Level), cfg.Format)), closer, nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// buildWriter returns w alone, or a MultiWriter of w and a lumberjack file
// with the lumberjack logger as the closer.
func buildWriter(cfg Config, w io.Writer) (io.Writer, io.Closer) {
	if cfg.File == "" {
		return w, nil
	}

	maxSize := cfg.FileMaxSizeMB
	if maxSize <= 0 {
		maxSize = 100
	}
	maxFiles := cfg.FileMaxFiles
	if maxFiles <= 0 {
		maxFiles = 3
	}
	maxAge := cfg.FileMaxAgeDays
	if maxAge <= 0 {
		maxAge = 30
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    maxSize,
		MaxBackups: maxFiles,
		MaxAge:     maxAge,
	}
	return io.MultiWriter(w, lj), lj
}

func buildHandler(w io.Writer, leveler slog.Leveler, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: leveler}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ValidLevel reports whether s is a recognized log level.
func ValidLevel(s string) bool {
	switch s {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// ValidFormat reports whether s is a recognized log format.
func ValidFormat(s string) bool {
	switch s {
	case "text", "json":
		return true
	}
	return false
}
