// Package config holds the gateway's construction-time configuration.
// Values come from an optional TOML file, overridden by WPPGW_* environment
// variables. No package-level mutable state.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// Duration decodes from strings like "30s" in both TOML and the
// environment.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the complete gateway configuration.
type Config struct {
	// ListenAddr is the address the gateway's HTTP server binds to.
	ListenAddr string `toml:"listen_addr" envconfig:"LISTEN_ADDR"`
	// BackendURL is the base URL of the messaging backend service.
	BackendURL string `toml:"backend_url" envconfig:"BACKEND_URL"`
	// RequestTimeout bounds every outbound backend call.
	RequestTimeout Duration `toml:"request_timeout" envconfig:"REQUEST_TIMEOUT"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		ListenAddr:     ":8081",
		BackendURL:     "http://localhost:8080",
		RequestTimeout: Duration(30 * time.Second),
	}
}

// Load builds the effective configuration: defaults, then the TOML file at
// path (skipped when path is empty), then WPPGW_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := envconfig.Process("wppgw", &cfg); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid backend_url %q: must be an absolute http(s) URL", c.BackendURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("invalid request_timeout %v: must be positive", c.RequestTimeout.Std())
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	return nil
}
