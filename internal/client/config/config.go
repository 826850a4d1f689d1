// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the Daybook CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - DatabasePath: path of the local SQLite database (backups + session).
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - AutosaveDebounce: quiet period before an edited draft is saved.
//   - SavedStatusWindow: how long the "saved" indicator stays up.
//   - SettingsDebounce: quiet period before changed appearance settings are saved.
type Config struct {
	ServerBaseURL       string
	DatabasePath        string
	OnlineCheckInterval time.Duration
	AutosaveDebounce    time.Duration
	SavedStatusWindow   time.Duration
	SettingsDebounce    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "daybook.db"
	c.OnlineCheckInterval = 3 * time.Second
	c.AutosaveDebounce = 1000 * time.Millisecond
	c.SavedStatusWindow = 3000 * time.Millisecond
	c.SettingsDebounce = 1000 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
