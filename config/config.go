// Package config loads the routeplan service configuration from TOML.
//
// Keys missing from the file keep their Default values.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig indicates a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of routeplan.toml.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Log     LogConfig     `toml:"log"`
	Metrics MetricsConfig `toml:"metrics"`
	Limits  LimitsConfig  `toml:"limits"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Listen string `toml:"listen"`
}

// LogConfig selects the zap logger.
// Level is one of debug, info, warn, error.
type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// LimitsConfig bounds uploaded graphs. MaxRoads 0 means no road limit.
type LimitsConfig struct {
	MaxCities int `toml:"max_cities"`
	MaxRoads  int `toml:"max_roads"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:  ServerConfig{Listen: ":8080"},
		Log:     LogConfig{Level: "info"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
		Limits:  LimitsConfig{MaxCities: 64, MaxRoads: 4096},
	}
}

// Load decodes path over Default and validates the result.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field and reports the first violation.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Server.Listen) == "":
		return fmt.Errorf("%w: server.listen is empty", ErrInvalidConfig)
	case !validLevel(c.Log.Level):
		return fmt.Errorf("%w: log.level %q, want one of %v", ErrInvalidConfig, c.Log.Level, logLevels)
	case c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/"):
		return fmt.Errorf("%w: metrics.path %q must start with /", ErrInvalidConfig, c.Metrics.Path)
	case c.Limits.MaxCities < 1:
		return fmt.Errorf("%w: limits.max_cities %d < 1", ErrInvalidConfig, c.Limits.MaxCities)
	case c.Limits.MaxRoads < 0:
		return fmt.Errorf("%w: limits.max_roads %d < 0", ErrInvalidConfig, c.Limits.MaxRoads)
	}

	return nil
}

func validLevel(level string) bool {
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}

	return false
}
