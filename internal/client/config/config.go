package config

import "time"

// Config holds runtime settings for the QKart CLI.
type Config struct {
	// EndpointURL is the backend API base, including the API prefix.
	EndpointURL string
	// RequestTimeout bounds every backend request.
	RequestTimeout time.Duration
	// DebounceWindow is the delay after the last keystroke before a
	// search is dispatched.
	DebounceWindow time.Duration
	// SessionFile is where the authenticated session is persisted.
	SessionFile string
	// Verbose enables debug-level logging.
	Verbose bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.EndpointURL = "http://localhost:8082/api/v1"
	c.RequestTimeout = 10 * time.Second
	c.DebounceWindow = 500 * time.Millisecond
	c.SessionFile = "qkart_session.json"
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
