// Package config loads the eligibility service settings from an optional
// YAML file with ELIGIBILITY_* environment overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. A missing file is not
// an error.
const DefaultPath = "eligibility.yaml"

// CatalogSource selects where the catalog is loaded from.
type CatalogSource string

const (
	SourceBuiltin CatalogSource = "builtin"
	SourceYAML    CatalogSource = "yaml"
	SourceSQLite  CatalogSource = "sqlite"
)

// Config is the root configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
	Session SessionConfig `yaml:"session"`
}

// CatalogConfig configures the question and program catalogs.
type CatalogConfig struct {
	Source CatalogSource `yaml:"source"` // builtin, yaml, sqlite
	Path   string        `yaml:"path"`
	// Strict aborts startup when the catalog self-check reports issues.
	Strict bool `yaml:"strict"`
}

// HTTPConfig configures the REST adapter.
type HTTPConfig struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allow_origins"`
}

// LogConfig configures zap.
type LogConfig struct {
	Mode  string `yaml:"mode"`  // dev, prod
	Level string `yaml:"level"` // debug, info, warn, error
}

// SessionConfig configures the wizard session registry.
type SessionConfig struct {
	IdleTTL       string `yaml:"idle_ttl"`
	SweepInterval string `yaml:"sweep_interval"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{Source: SourceBuiltin},
		HTTP: HTTPConfig{
			Addr:         ":8080",
			AllowOrigins: []string{"http://localhost:3000"},
		},
		Log: LogConfig{Mode: "dev", Level: "info"},
		Session: SessionConfig{
			IdleTTL:       "30m",
			SweepInterval: "1m",
		},
	}
}

// Load reads path (if it exists), applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ELIGIBILITY_CATALOG_SOURCE"); v != "" {
		c.Catalog.Source = CatalogSource(v)
	}
	if v := os.Getenv("ELIGIBILITY_CATALOG_PATH"); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv("ELIGIBILITY_CATALOG_STRICT"); v != "" {
		c.Catalog.Strict = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("ELIGIBILITY_HTTP_ADDR"); v != "" {
		c.HTTP.Addr = v
	}
	if v := os.Getenv("ELIGIBILITY_HTTP_ALLOW_ORIGINS"); v != "" {
		c.HTTP.AllowOrigins = splitList(v)
	}
	if v := os.Getenv("ELIGIBILITY_LOG_MODE"); v != "" {
		c.Log.Mode = v
	}
	if v := os.Getenv("ELIGIBILITY_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ELIGIBILITY_SESSION_IDLE_TTL"); v != "" {
		c.Session.IdleTTL = v
	}
}

// Validate checks enum values and durations.
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case SourceBuiltin:
	case SourceYAML, SourceSQLite:
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog.path is required for source %q", c.Catalog.Source)
		}
	default:
		return fmt.Errorf("invalid catalog.source %q: must be one of: builtin, yaml, sqlite", c.Catalog.Source)
	}

	switch c.Log.Mode {
	case "dev", "prod":
	default:
		return fmt.Errorf("invalid log.mode %q: must be dev or prod", c.Log.Mode)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q: must be one of: debug, info, warn, error", c.Log.Level)
	}

	if _, err := time.ParseDuration(c.Session.IdleTTL); err != nil {
		return fmt.Errorf("invalid session.idle_ttl %q: %w", c.Session.IdleTTL, err)
	}
	if _, err := time.ParseDuration(c.Session.SweepInterval); err != nil {
		return fmt.Errorf("invalid session.sweep_interval %q: %w", c.Session.SweepInterval, err)
	}
	return nil
}

// GetIdleTTL returns the session idle timeout. Zero disables expiry.
func (c *Config) GetIdleTTL() time.Duration {
	d, err := time.ParseDuration(c.Session.IdleTTL)
	if err != nil {
		return 30 * time.Minute
	}
	return d
}

// GetSweepInterval returns how often idle sessions are swept.
func (c *Config) GetSweepInterval() time.Duration {
	d, err := time.ParseDuration(c.Session.SweepInterval)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
