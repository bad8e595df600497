// Package config loads the breedplan application configuration from TOML.
//
//	catalog = "species.yaml"
//
//	[log]
//	level = "info"
//	timestamp = true
//	no_color = false
//
//	[render]
//	color = true
//	show_roles = true
//
// Missing keys keep their defaults; Validate rejects values the CLI cannot use.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/breedplan/logging"
)

// ErrInvalidConfig indicates a configuration value is out of range or unknown.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultPath is the file the CLI reads when --config is not given.
const DefaultPath = "breedplan.toml"

// Config is the application configuration.
type Config struct {
	// Catalog is the path of the species YAML file. Empty selects the builtin sample.
	Catalog string       `toml:"catalog"`
	Log     LogConfig    `toml:"log"`
	Render  RenderConfig `toml:"render"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
	NoColor   bool   `toml:"no_color"`
}

// RenderConfig configures terminal output.
type RenderConfig struct {
	Color     bool `toml:"color"`
	ShowRoles bool `toml:"show_roles"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Timestamp: true},
		Render: RenderConfig{Color: true, ShowRoles: true},
	}
}

// Load reads and validates the TOML file at path over Default().
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown keys %v in %s", ErrInvalidConfig, undecoded, path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadOptional behaves like Load but returns Default() when path does not exist.
func LoadOptional(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the values Load cannot type-check.
func (c Config) Validate() error {
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// Logging converts the [log] table into a logging.Config over the runtime
// defaults.
func (c Config) Logging() logging.Config {
	out := logging.DefaultConfig(logging.ProfileRuntime)
	if lvl, ok := logging.ParseLevel(c.Log.Level); ok {
		out.Level = lvl
	}
	out.Timestamp = c.Log.Timestamp
	out.NoColor = c.Log.NoColor

	return out
}
