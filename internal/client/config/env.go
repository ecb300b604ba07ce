package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; real environment variables
// win over the file.
//
// Recognized variables:
//
//	BLOGCTL_BASE_URL    — backend root URL
//	BLOGCTL_TIMEOUT     — request timeout, duration string ("30s")
//	BLOGCTL_SESSION_DB  — session database path
//	BLOGCTL_LOG_LEVEL   — minimal log level
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BLOGCTL_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("BLOGCTL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("BLOGCTL_SESSION_DB"); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv("BLOGCTL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
