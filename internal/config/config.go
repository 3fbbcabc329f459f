// Package config loads configuration from environment variables following
// 12-factor principles. Defaults suit local development against cmd/shopapi.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Client configures the storefront application.
type Client struct {
	APIBaseURL  string `envconfig:"API_BASE_URL" default:"http://localhost:8080/api"`
	HTTPTimeout int    `envconfig:"HTTP_TIMEOUT" default:"15"` // seconds
	RedisURL    string `envconfig:"REDIS_URL" default:""`      // empty: in-memory basket slot
	BasketKey   string `envconfig:"BASKET_KEY" default:"shopfront:basket"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

// Server configures the cmd/shopapi mock shop service.
type Server struct {
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	Port            string `envconfig:"PORT" default:"8080"`
	ReadTimeout     int    `envconfig:"READ_TIMEOUT" default:"15"`
	WriteTimeout    int    `envconfig:"WRITE_TIMEOUT" default:"15"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"30"`
	SeedFile        string `envconfig:"SEED_FILE" default:""` // YAML catalog; empty: built-in seed
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadClient reads storefront configuration from the environment.
func LoadClient() (*Client, error) {
	var cfg Client
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// LoadServer reads mock shop service configuration from the environment.
func LoadServer() (*Server, error) {
	var cfg Server
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Client) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return validateLogLevel(c.LogLevel)
}

// Timeout returns the HTTP client timeout as a duration.
func (c *Client) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func validateLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", level)
}
