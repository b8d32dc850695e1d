// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

// Package config loads jobdeck configuration with precedence
// defaults → YAML file → command-line flags.
package config

import (
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/jobdeck/jobdeck/internal/auth"
)

// Token strategy names.
const (
	StrategyOpaque = "opaque"
	StrategySigned = "signed"
)

// Config holds the full process configuration.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	HTTP    HTTPConfig    `koanf:"http"`
	Metrics MetricsConfig `koanf:"metrics"`
	Auth    AuthConfig    `koanf:"auth"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Format string `koanf:"format"` // "json" or "text"
	Level  string `koanf:"level"`  // "debug", "info", "warn", "error"
}

// HTTPConfig controls the API listener.
type HTTPConfig struct {
	Addr string `koanf:"addr"`
}

// MetricsConfig controls the observability listener.
type MetricsConfig struct {
	Addr string `koanf:"addr"` // empty disables the server
}

// AuthConfig selects and parameterizes the session token strategy.
type AuthConfig struct {
	// TokenStrategy is "opaque" or "signed".
	TokenStrategy string `koanf:"token_strategy"`

	// TokenTTL bounds signed-token validity. Ignored by the opaque strategy.
	TokenTTL time.Duration `koanf:"token_ttl"`

	// Secret signs tokens under the signed strategy. Required there,
	// ignored otherwise.
	Secret string `koanf:"secret"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:     LogConfig{Format: "json", Level: "info"},
		HTTP:    HTTPConfig{Addr: "127.0.0.1:8080"},
		Metrics: MetricsConfig{Addr: "127.0.0.1:9100"},
		Auth: AuthConfig{
			TokenStrategy: StrategyOpaque,
			TokenTTL:      auth.DefaultTokenTTL,
		},
	}
}

// Load builds a Config from the optional YAML file at path and the flag
// set. Either may be empty/nil; later sources win.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, oops.Code("CONFIG_FILE_FAILED").
				With("path", path).
				Wrap(err)
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, oops.Code("CONFIG_FLAGS_FAILED").Wrap(err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, oops.Code("CONFIG_UNMARSHAL_FAILED").Wrap(err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable. Configuration errors
// are fatal here, at load time, never per request.
func (c *Config) Validate() error {
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return oops.Code("CONFIG_INVALID").
			With("log.format", c.Log.Format).
			Errorf("log format must be 'json' or 'text'")
	}
	switch c.Auth.TokenStrategy {
	case StrategyOpaque:
	case StrategySigned:
		if c.Auth.Secret == "" {
			return oops.Code("CONFIG_INVALID").
				Errorf("auth secret is required for the signed token strategy")
		}
		if c.Auth.TokenTTL <= 0 {
			return oops.Code("CONFIG_INVALID").
				Errorf("auth token TTL must be positive for the signed token strategy")
		}
	default:
		return oops.Code("CONFIG_INVALID").
			With("auth.token_strategy", c.Auth.TokenStrategy).
			Errorf("token strategy must be 'opaque' or 'signed'")
	}
	if c.HTTP.Addr == "" {
		return oops.Code("CONFIG_INVALID").Errorf("http address is required")
	}
	return nil
}
