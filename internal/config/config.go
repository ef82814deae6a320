// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Providers ProvidersConfig `yaml:"providers"`
	Synthetic SyntheticConfig `yaml:"synthetic"`
	Contact   ContactConfig   `yaml:"contact"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// ProvidersConfig defines the partner API adapters.
type ProvidersConfig struct {
	Bayut          BayutConfig          `yaml:"bayut"`
	PropertyFinder PropertyFinderConfig `yaml:"property_finder"`
	RateLimit      RateLimitConfig      `yaml:"rate_limit"`
}

// BayutConfig defines Bayut partner API settings.
type BayutConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// PropertyFinderConfig defines Property Finder partner API settings.
type PropertyFinderConfig struct {
	Enabled      bool   `yaml:"enabled"`
	BaseURL      string `yaml:"base_url"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

// RateLimitConfig defines partner API rate limiting settings.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// SyntheticConfig defines the demo data generator.
type SyntheticConfig struct {
	Count int   `yaml:"count"`
	Seed  int64 `yaml:"seed"`
}

// ContactConfig defines WhatsApp contact defaults.
type ContactConfig struct {
	CountryCode     string `yaml:"country_code"`
	DefaultPhone    string `yaml:"default_phone"`
	MessageTemplate string `yaml:"message_template"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only; partner adapters stay disabled.
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyProviderDefaults(&cfg.Providers)
	applySyntheticDefaults(&cfg.Synthetic)
	applyContactDefaults(&cfg.Contact)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyProviderDefaults(p *ProvidersConfig) {
	if p.Bayut.BaseURL == "" {
		p.Bayut.BaseURL = "https://api.bayut.sa"
	}
	if p.PropertyFinder.BaseURL == "" {
		p.PropertyFinder.BaseURL = "https://api.propertyfinder.sa"
	}
	if p.RateLimit.PerSecond == 0 {
		p.RateLimit.PerSecond = 5.0
	}
	if p.RateLimit.Burst == 0 {
		p.RateLimit.Burst = 10
	}
}

func applySyntheticDefaults(s *SyntheticConfig) {
	if s.Count == 0 {
		s.Count = 40
	}
	if s.Seed == 0 {
		s.Seed = 17
	}
}

func applyContactDefaults(c *ContactConfig) {
	if c.CountryCode == "" {
		c.CountryCode = "966"
	}
	if c.MessageTemplate == "" {
		c.MessageTemplate = "Hello, I'm interested in this apartment: {title} in {district}. " +
			"Price: {price} {period}. Link: {url}"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Providers.Bayut.Enabled && cfg.Providers.Bayut.APIKey == "" {
		errs = append(errs, fmt.Errorf("providers.bayut.api_key is required when bayut is enabled"))
	}
	if cfg.Providers.PropertyFinder.Enabled {
		if cfg.Providers.PropertyFinder.ClientID == "" {
			errs = append(errs, fmt.Errorf("providers.property_finder.client_id is required when property_finder is enabled"))
		}
		if cfg.Providers.PropertyFinder.ClientSecret == "" {
			errs = append(errs, fmt.Errorf("providers.property_finder.client_secret is required when property_finder is enabled"))
		}
	}
	if cfg.Synthetic.Count < 0 {
		errs = append(errs, fmt.Errorf("synthetic.count must not be negative"))
	}

	return errors.Join(errs...)
}
