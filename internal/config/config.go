// Package config loads process configuration: defaults, then an optional
// YAML file, then environment variables. Read once at startup, immutable
// afterwards.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/casaops/casa/internal/logging"
)

// Environment variables recognized at startup. URL, token and TLS flag keep
// the names the original deployment used.
const (
	EnvBaseURL   = "HOME_ASSISTANT_URL"
	EnvToken     = "HOME_ASSISTANT_TOKEN"
	EnvVerifySSL = "VERIFY_SSL"
	EnvLogLevel  = "CASA_LOG_LEVEL"
)

// Duration is a time.Duration that unmarshals from YAML strings like "30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std converts to the standard library representation.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the full process configuration.
type Config struct {
	// BaseURL is the Home Assistant root URL.
	BaseURL string `yaml:"base_url"`
	// Token is the long-lived access token. Mandatory.
	Token string `yaml:"token"`
	// VerifySSL toggles TLS certificate verification for the backend.
	VerifySSL bool `yaml:"verify_ssl"`
	// CallTimeout bounds one tool dispatch including backend I/O.
	CallTimeout Duration `yaml:"call_timeout"`
	// ReadRetries is the retry budget for idempotent backend reads.
	ReadRetries int `yaml:"read_retries"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:     "http://homeassistant.local:8123",
		VerifySSL:   true,
		CallTimeout: Duration(30 * time.Second),
		ReadRetries: 2,
		LogLevel:    "info",
	}
}

// Load builds the configuration from defaults, the YAML file at path (if it
// exists) and the environment. A missing file at the default path is not an
// error; unparsable YAML is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// No file, env and defaults carry the configuration.
		default:
			return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		c.Token = v
	}
	if v := os.Getenv(EnvVerifySSL); v != "" {
		c.VerifySSL = strings.ToLower(v) == "true"
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks the invariants that must hold before serving. The token
// is the only mandatory setting.
func (c Config) Validate() error {
	if c.Token == "" {
		return errors.New(EnvToken + " is required")
	}
	if c.BaseURL == "" {
		return errors.New("base_url must not be empty")
	}
	return nil
}

// SlogLevel resolves the configured log level.
func (c Config) SlogLevel() slog.Level {
	return logging.ParseLevel(c.LogLevel)
}
