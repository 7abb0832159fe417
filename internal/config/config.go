// Package config loads the service configuration from a TOML file with
// sensible defaults. CLI flags override file values at the call site.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	qceerrors "github.com/quantalab/qce/internal/errors"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "qce.toml"

// Config is the top-level configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig configures the HTTP boundary.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8002},
		Log:    LogConfig{Level: "info", Pretty: true},
	}
}

// Load reads the configuration file at path, merging it over the
// defaults. A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, qceerrors.NewConfigError("path", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, qceerrors.NewConfigError("file", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return qceerrors.NewConfigError("server.port", fmt.Sprintf("%d", c.Server.Port),
			fmt.Errorf("port must be in 1..65535"))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return qceerrors.NewConfigError("log.level", c.Log.Level,
			fmt.Errorf("level must be one of debug, info, warn, error"))
	}
	return nil
}
