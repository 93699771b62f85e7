package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/satconsole/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   GraphQL endpoint URL
//	-t string   auth token
//	-r int      request timeout (in seconds)
//	-l string   log level
//
// Only these flags are kept from args (see flagx.FilterArgs), so the JSON
// stage's -c/-config does not interfere. Invalid values panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIEndpointURL, "a", cfg.APIEndpointURL, "satellite console GraphQL endpoint")
	fs.StringVar(&cfg.AuthToken, "t", cfg.AuthToken, "auth token")
	timeout := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "r" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
