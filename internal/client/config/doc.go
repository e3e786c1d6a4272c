// Package config loads runtime configuration for the QKart CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      per-request timeout (seconds)
//	-w int      search debounce window (milliseconds)
//	-s string   path of the session file
//	-v          verbose logging
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "500ms" or
// integer nanoseconds:
//
//	{
//	  "endpoint_url": "http://localhost:8082/api/v1",
//	  "request_timeout": "10s",
//	  "debounce_window": "500ms",
//	  "session_file": "qkart_session.json",
//	  "verbose": false
//	}
package config
