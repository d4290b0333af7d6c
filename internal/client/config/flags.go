package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/sitekeeper/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-d string   database file (relative to the data dir unless absolute)
//	-l string   log level: debug, info, warn, error
//	-t int      request timeout for external services, in seconds
//
// Only these flags are read from os.Args; others are left to their owners.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-t"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)

	fs.StringVar(&cfg.DBFile, "d", cfg.DBFile, "database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
