// Package config loads runtime settings for the blogctl client.
package config

import "time"

// Config holds runtime settings for the blog client.
//
// Fields:
//   - BaseURL: root URL of the blog backend (all API paths are relative to it).
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionDBPath: path of the local sqlite file holding the persisted
//     session cookies.
//   - LogLevel: minimal slog level ("debug", "info", "warn", "error").
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SessionDBPath  string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://playground-022-backend.vercel.app"
	c.RequestTimeout = 30 * time.Second
	c.SessionDBPath = "session.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file), a JSON file and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
