package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	base := Config{
		APIEndpointURL: "http://default",
		RequestTimeout: 1500 * time.Millisecond,
		LogLevel:       "info",
		LogFormat:      "text",
	}

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"-a", "https://sat:10100/api/graphql/v0", "-t", "tok", "-r", "5", "-l", "debug"},
			expected: &Config{APIEndpointURL: "https://sat:10100/api/graphql/v0", AuthToken: "tok",
				RequestTimeout: 5 * time.Second, LogLevel: "debug", LogFormat: "text"}},
		{name: "no timeout flag keeps sub-second value", args: []string{"-t", "tok"},
			expected: &Config{APIEndpointURL: "http://default", AuthToken: "tok",
				RequestTimeout: 1500 * time.Millisecond, LogLevel: "info", LogFormat: "text"}},
		{name: "foreign flags ignored", args: []string{"-c", "cfg.json", "-x", "-l", "warn"},
			expected: &Config{APIEndpointURL: "http://default",
				RequestTimeout: 1500 * time.Millisecond, LogLevel: "warn", LogFormat: "text"}},
		{name: "incorrect timeout", args: []string{"-r", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(&cfg, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(&cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, &cfg))
		})
	}
}
