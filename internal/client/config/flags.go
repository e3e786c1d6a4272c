package config

import (
	"flag"
	"os"
	"time"

	"qkart-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Args are pre-filtered with flagx.FilterArgs so flags owned by other
// packages do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-w", "-s", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointURL, "a", cfg.EndpointURL, "base URL of the backend API")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	debounceWindow := fs.Int("w", int(cfg.DebounceWindow.Milliseconds()), "search debounce window (in milliseconds)")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "path of the session file")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.DebounceWindow = time.Duration(*debounceWindow) * time.Millisecond
}
