// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv.
const (
	EnvAPIKey    = "THREECOMMAS_API_KEY"
	EnvAPISecret = "THREECOMMAS_API_SECRET"
	EnvBaseURL   = "THREECOMMAS_BASE_URL"
)

// Config is the top-level application configuration.
type Config struct {
	ThreeCommas ThreeCommasConfig `yaml:"threecommas"`
	Logging     LoggingConfig     `yaml:"logging"`
	MockServer  MockServerConfig  `yaml:"mock_server"`
}

// ThreeCommasConfig holds the API credentials and endpoint. The request
// timeout is fixed by the client and not configurable.
type ThreeCommasConfig struct {
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
	BaseURL   string `yaml:"base_url"`
}

// String implements fmt.Stringer without exposing the secret.
func (c ThreeCommasConfig) String() string {
	return fmt.Sprintf("ThreeCommasConfig{BaseURL: %s, APIKey: %s}", c.BaseURL, mask(c.APIKey))
}

func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}

// MockServerConfig defines the Echo HTTP server settings of the local mock
// API.
type MockServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	FixturesDir  string        `yaml:"fixtures_dir"` // empty uses the embedded fixtures
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Variables already set are not overridden. Missing files are
// ignored; with no arguments ".env" is tried.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// FromEnv builds a config from THREECOMMAS_* environment variables when no
// file is given.
func FromEnv() (*Config, error) {
	cfg := &Config{
		ThreeCommas: ThreeCommasConfig{
			APIKey:    os.Getenv(EnvAPIKey),
			APISecret: os.Getenv(EnvAPISecret),
			BaseURL:   os.Getenv(EnvBaseURL),
		},
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyThreeCommasDefaults(&cfg.ThreeCommas)
	applyMockServerDefaults(&cfg.MockServer)
	applyLoggingDefaults(&cfg.Logging)
}

func applyThreeCommasDefaults(c *ThreeCommasConfig) {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.3commas.io"
	}
}

func applyMockServerDefaults(s *MockServerConfig) {
	if s.Host == "" {
		s.Host = "127.0.0.1"
	}
	if s.Port == 0 {
		s.Port = 8089
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
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

	if cfg.ThreeCommas.APIKey == "" {
		errs = append(errs, fmt.Errorf("threecommas.api_key is required"))
	}
	if cfg.ThreeCommas.APISecret == "" {
		errs = append(errs, fmt.Errorf("threecommas.api_secret is required"))
	}
	if u, err := url.Parse(cfg.ThreeCommas.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(
			errs,
			fmt.Errorf("threecommas.base_url must be an absolute URL (got %q)", cfg.ThreeCommas.BaseURL),
		)
	}

	if cfg.MockServer.Port < 0 || cfg.MockServer.Port > 65535 {
		errs = append(errs, fmt.Errorf("mock_server.port out of range (got %d)", cfg.MockServer.Port))
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(
			errs,
			fmt.Errorf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level),
		)
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(
			errs,
			fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format),
		)
	}

	return errors.Join(errs...)
}
