package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the account console.
//
// Fields:
//   - APIEndpointURL: absolute URL of the satellite console GraphQL endpoint.
//   - AuthToken: bearer token of the signed-in user; empty means signed out.
//   - RequestTimeout: upper bound of a single API call.
//   - LogLevel / LogFormat: slog level (debug|info|warn|error) and format (text|json).
type Config struct {
	APIEndpointURL string
	AuthToken      string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIEndpointURL = "http://127.0.0.1:10100/api/graphql/v0"
	c.AuthToken = ""
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}

// String renders the config with the token redacted, safe for logging.
func (c *Config) String() string {
	token := ""
	if c.AuthToken != "" {
		token = "[REDACTED]"
	}
	return fmt.Sprintf("Config{API: %s, Token: %s, Timeout: %s, Log: %s/%s}",
		c.APIEndpointURL, token, c.RequestTimeout, c.LogLevel, c.LogFormat)
}
