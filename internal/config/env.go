package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; real
// environment variables win over .env entries (godotenv never overrides).
//
// Recognized variables:
//
//	VIDEOPICK_DATABASE      — database file path
//	VIDEOPICK_TEMPLATE      — bundled template database path
//	VIDEOPICK_SCAN_TIMEOUT  — duration string, e.g. "30s"
//	VIDEOPICK_EXTENSIONS    — comma-separated extension list
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("VIDEOPICK_DATABASE"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("VIDEOPICK_TEMPLATE"); v != "" {
		cfg.TemplatePath = v
	}
	if v := os.Getenv("VIDEOPICK_SCAN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ScanTimeout = d
		}
	}
	if v := os.Getenv("VIDEOPICK_EXTENSIONS"); v != "" {
		cfg.VideoExtensions = SplitExtensions(v)
	}
}

// SplitExtensions parses a comma-separated extension list, dropping empty
// items and surrounding whitespace.
func SplitExtensions(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
