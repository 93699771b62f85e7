package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names understood by parseEnv.
const (
	EnvAPIURL    = "SATCONSOLE_API_URL"
	EnvToken     = "SATCONSOLE_TOKEN"
	EnvTimeout   = "SATCONSOLE_TIMEOUT"
	EnvLogLevel  = "SATCONSOLE_LOG_LEVEL"
	EnvLogFormat = "SATCONSOLE_LOG_FORMAT"
)

// dotenvFiles are loaded, if present, before the environment is read.
// Variables already set in the process environment win over the files.
var dotenvFiles = []string{".env"}

// parseEnv overlays cfg with SATCONSOLE_* variables. Unset or empty
// variables keep the current value; an unparsable timeout is ignored.
func parseEnv(cfg *Config) {
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}

	cfg.APIEndpointURL = getEnvOrDefault(EnvAPIURL, cfg.APIEndpointURL)
	cfg.AuthToken = getEnvOrDefault(EnvToken, cfg.AuthToken)
	cfg.RequestTimeout = getDurationOrDefault(EnvTimeout, cfg.RequestTimeout)
	cfg.LogLevel = getEnvOrDefault(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault(EnvLogFormat, cfg.LogFormat)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
