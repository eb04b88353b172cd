// Package config reads the run configuration from the environment.
package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/sarchlab/ippcode/core"
)

// Environment variables read by Load.
const (
	EnvLogLevel = "IPPCODE_LOG_LEVEL"
	EnvFormat   = "IPPCODE_FORMAT"
)

// Config is the configuration of one run.
type Config struct {
	LogLevel slog.Level
	Format   string
}

// Default returns the configuration used when nothing is set: warnings only,
// XML output.
func Default() Config {
	return Config{
		LogLevel: slog.LevelWarn,
		Format:   "xml",
	}
}

// Load builds a configuration from the environment. getenv is usually
// os.Getenv.
func Load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		level, err := parseLevel(v)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}

	if v := strings.TrimSpace(getenv(EnvFormat)); v != "" {
		switch strings.ToLower(v) {
		case "xml", "yaml", "yml":
			cfg.Format = strings.ToLower(v)
		default:
			return Config{}, core.NewError(core.ErrInvocation,
				"%s=%q, expected xml or yaml", EnvFormat, v)
		}
	}

	return cfg, nil
}

func parseLevel(v string) (slog.Level, error) {
	if strings.EqualFold(v, "trace") {
		return core.LevelTrace, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return 0, core.NewError(core.ErrInvocation,
			"%s=%q, expected trace, debug, info, warn or error", EnvLogLevel, v)
	}

	return level, nil
}

// Logger returns a text logger at the configured level writing to w.
func (c Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: c.LogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if level, ok := a.Value.Any().(slog.Level); ok && level == core.LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
