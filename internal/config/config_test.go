package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClient_Defaults(t *testing.T) {
	cfg, err := LoadClient()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, 15, cfg.HTTPTimeout)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, "shopfront:basket", cfg.BasketKey)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadClient_FromEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://shop.example.com/api")
	t.Setenv("HTTP_TIMEOUT", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadClient()
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 5, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestClientValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Client)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Client) {},
		},
		{
			name:    "missing base URL",
			mutate:  func(c *Client) { c.APIBaseURL = "" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Client) { c.HTTPTimeout = 0 },
			wantErr: true,
		},
		{
			name:    "bogus log level",
			mutate:  func(c *Client) { c.LogLevel = "verbose" },
			wantErr: true,
		},
		{
			name:   "log level case insensitive",
			mutate: func(c *Client) { c.LogLevel = "WARN" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Client{
				APIBaseURL:  "http://localhost:8080/api",
				HTTPTimeout: 15,
				LogLevel:    "info",
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadServer_BadLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	_, err := LoadServer()
	assert.Error(t, err)
}
