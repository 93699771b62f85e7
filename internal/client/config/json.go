package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/satconsole/internal/flagx"
	"github.com/dmitrijs2005/satconsole/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// zero-checked fields let a file set only some values.
type JsonConfig struct {
	APIEndpointURL string          `json:"api_endpoint_url"`
	AuthToken      string          `json:"auth_token"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       string          `json:"log_level"`
	LogFormat      string          `json:"log_format"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config
// in args. Without such a flag nothing happens. Read or unmarshal errors
// panic; the caller decides whether to recover.
func parseJson(cfg *Config, args []string) {
	path := flagx.JSONConfigFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIEndpointURL != "" {
		cfg.APIEndpointURL = jc.APIEndpointURL
	}
	if jc.AuthToken != "" {
		cfg.AuthToken = jc.AuthToken
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
}
