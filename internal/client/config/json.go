package config

import (
	"encoding/json"
	"os"

	"qkart-cli/internal/flagx"
	"qkart-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// go through timex.Duration so the file can specify "500ms" or integer
// nanoseconds. Parsed values are copied into the runtime Config.
type JsonConfig struct {
	EndpointURL    string         `json:"endpoint_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DebounceWindow timex.Duration `json:"debounce_window"`
	SessionFile    string         `json:"session_file"`
	Verbose        bool           `json:"verbose"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flags. Absent flag means no JSON source. Only fields present
// in the file override the current values; read or unmarshal errors panic
// (caller may recover).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.EndpointURL != "" {
		cfg.EndpointURL = jc.EndpointURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DebounceWindow.Duration != 0 {
		cfg.DebounceWindow = jc.DebounceWindow.Duration
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.Verbose {
		cfg.Verbose = true
	}
}
