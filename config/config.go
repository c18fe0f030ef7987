// Package config loads runtime settings for tools built on the overlay store.
package config

import (
	"io"
	"time"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/plus3/vtt/overlay"
	"github.com/plus3/vtt/shape"
)

type Config struct {
	LogLevel      string `config:"VTT_LOG_LEVEL"`
	LogPretty     bool   `config:"VTT_LOG_PRETTY"`
	StrictColours bool   `config:"VTT_STRICT_COLOURS"`
	ArcSegments   int    `config:"VTT_ARC_SEGMENTS"`
}

// Default returns the settings used when the environment is silent.
func Default() Config {
	return Config{
		LogLevel:    "info",
		ArcSegments: overlay.DefaultArcSegments,
	}
}

// Load reads the environment over the defaults.
func Load() (Config, error) {
	cfg := Default()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "load config from env")
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, eris.Wrapf(err, "VTT_LOG_LEVEL %q", cfg.LogLevel)
	}
	if cfg.ArcSegments < shape.MinArcSegments {
		return cfg, eris.Errorf("VTT_ARC_SEGMENTS must be at least %d, got %d", shape.MinArcSegments, cfg.ArcSegments)
	}
	return cfg, nil
}

// Logger builds a zerolog logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if c.LogPretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// StoreOptions turns the settings into overlay.Store options.
func (c Config) StoreOptions(logger zerolog.Logger) []overlay.Option {
	return []overlay.Option{
		overlay.WithLogger(logger),
		overlay.WithStrictColours(c.StrictColours),
		overlay.WithArcSegments(c.ArcSegments),
	}
}
