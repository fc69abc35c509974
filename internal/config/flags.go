package config

import (
	"flag"
	"time"
)

// ParseFlags parses pm's global flags, accepted before the subcommand
// name (e.g. `pm -store /path add demo`), and returns the config they
// describe together with the remaining, unparsed arguments (the
// subcommand and its own arguments), which the caller forwards to
// internal/cliapp's command dispatcher.
//
//	-store       override the store root directory
//	-session-ttl override the session cache TTL (e.g. "5m")
//	-c/-config   JSON config file path
func ParseFlags(args []string) (*Config, []string, error) {
	fs := flag.NewFlagSet("pm", flag.ContinueOnError)

	var storeRoot string
	var sessionTTL time.Duration
	var jsonConfigPath string

	fs.StringVar(&storeRoot, "store", "", "Store root directory")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session cache TTL (e.g. 5m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := &Config{
		Store:        Store{Root: storeRoot},
		Session:      Session{TTL: sessionTTL},
		JSONFilePath: jsonConfigPath,
	}
	return cfg, fs.Args(), nil
}
