package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatSummary = "summary"
	FormatYAML    = "yaml"
	FormatBSON    = "bson"
)

// Config holds bibinspect settings.  Zero values are replaced by
// DefaultConfig; command line flags override values read from a file.
type Config struct {
	// Format is one of "summary", "yaml" or "bson".
	Format string `toml:"format"`

	// Watch keeps running and re-inspects files when they change.
	Watch bool `toml:"watch"`

	// LogLevel is a zerolog level name: "debug", "info", "warn", ...
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Format:   FormatSummary,
		LogLevel: zerolog.InfoLevel.String(),
	}
}

// LoadConfig reads a TOML config file on top of the defaults.  An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("reading config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// Validate checks that the format and log level are known.
func (c Config) Validate() error {
	switch c.Format {
	case FormatSummary, FormatYAML, FormatBSON:
	default:
		return fmt.Errorf("invalid format %q: must be %s, %s or %s", c.Format, FormatSummary, FormatYAML, FormatBSON)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}
