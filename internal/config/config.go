// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	pricingerrors "snackbar/internal/errors"
	"snackbar/internal/logging"
)

// Environment variables that override the config file
const (
	EnvAddr     = "SNACKBAR_ADDR"
	EnvMenu     = "SNACKBAR_MENU"
	EnvLogLevel = "SNACKBAR_LOG_LEVEL"
	EnvOrigins  = "SNACKBAR_ALLOWED_ORIGINS"
	EnvAppEnv   = "APP_ENV"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP API settings
	Server ServerConfig `json:"server"`

	// Menu contains price table settings
	Menu MenuConfig `json:"menu"`

	// Output contains output settings
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// AllowedOrigins are the CORS origins accepted by the API
	AllowedOrigins []string `json:"allowed_origins,omitempty"`
}

// MenuConfig contains price table settings
type MenuConfig struct {
	// Path is an optional HCL menu file overriding unit prices
	Path string `json:"path,omitempty"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads a JSON config file over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, pricingerrors.Config("read "+path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, pricingerrors.Config("decode "+path, err)
	}
	return cfg, nil
}

// LoadEnv loads .env files outside production, then applies SNACKBAR_* overrides
func (c *Config) LoadEnv(files ...string) {
	if os.Getenv(EnvAppEnv) != "production" {
		_ = godotenv.Load(files...)
	}

	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvMenu); v != "" {
		c.Menu.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvOrigins); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.AllowedOrigins = origins
	}
}

// Save writes the configuration as indented JSON
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(cfg *Config) {
	globalConfig = cfg
}
