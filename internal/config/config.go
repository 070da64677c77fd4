package config

import "time"

// Config holds runtime settings for the otpdesk CLI.
//
// Fields:
//   - DatabasePath: location of the local SQLite file.
//   - ExportDir: directory export files are written into.
//   - TickInterval: how often the countdown watcher recomputes remaining time.
//
// Units: TickInterval is a time.Duration (e.g., time.Second).
type Config struct {
	DatabasePath string
	ExportDir    string
	TickInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "otpdesk.db"
	c.ExportDir = "exports"
	c.TickInterval = time.Second
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
