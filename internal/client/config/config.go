package config

import "time"

// Config holds runtime settings for the phonestock CLI.
//
// Fields:
//   - APIBaseURL: base URL of the marketplace REST API, including the
//     path prefix (e.g. "http://127.0.0.1:8080/api").
//   - RequestTimeout: per-request timeout for API calls.
//   - DatabasePath: path to the local SQLite file holding stored credentials.
//   - LowStockThreshold: quantity below which an item appears in the
//     restock view.
type Config struct {
	APIBaseURL        string
	RequestTimeout    time.Duration
	DatabasePath      string
	LowStockThreshold int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 12 * time.Second
	c.DatabasePath = "phonestock.db"
	c.LowStockThreshold = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
