// Package config loads runtime configuration for the account console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables SATCONSOLE_*, optionally read from a .env file
//     in the working directory (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   satellite console GraphQL endpoint URL
//	-t string   auth token
//	-r int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "10s" or
// integer nanoseconds:
//
//	{
//	  "api_endpoint_url": "http://127.0.0.1:10100/api/graphql/v0",
//	  "auth_token": "...",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
