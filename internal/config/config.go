package config

import "time"

// DefaultVideoExtensions is the allow-list of recognized video files.
// Configuration may override it; matching is case-insensitive.
var DefaultVideoExtensions = []string{".mp4", ".avi", ".mkv", ".mov"}

// Config holds runtime settings for the videopick CLI.
//
// Fields:
//   - DatabasePath: location of the history database. Empty means the
//     default file under the per-user application data directory.
//   - TemplatePath: optional bundled template database copied into place on
//     first run.
//   - ScanTimeout: upper bound for one directory scan; zero disables it.
//   - VideoExtensions: recognized file extensions.
type Config struct {
	DatabasePath    string
	TemplatePath    string
	ScanTimeout     time.Duration
	VideoExtensions []string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = ""
	c.TemplatePath = ""
	c.ScanTimeout = 30 * time.Second
	c.VideoExtensions = append([]string(nil), DefaultVideoExtensions...)
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), a JSON config
// file (if given via -c/-config) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
