package config

import "time"

// Config holds runtime settings for the voice notes app.
//
// Fields:
//   - DatabasePath: path of the local SQLite blob store.
//   - MediaDir: directory where captured media files are kept.
//   - ExportDir: directory the share facility exports into; empty
//     disables sharing.
//   - TickInterval: period of the visible capture counter.
type Config struct {
	DatabasePath string
	MediaDir     string
	ExportDir    string
	TickInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "notes.db"
	c.MediaDir = "media"
	c.ExportDir = "export"
	c.TickInterval = time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
