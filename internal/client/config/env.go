package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first if present; it never
// overrides variables already set in the environment.
//
// Recognized variables:
//
//	PHONESTOCK_API_URL    — base URL of the marketplace API
//	PHONESTOCK_TIMEOUT    — request timeout, e.g. "12s"
//	PHONESTOCK_DB_PATH    — local credentials database path
//	PHONESTOCK_LOW_STOCK  — restock threshold (integer)
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PHONESTOCK_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("PHONESTOCK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("PHONESTOCK_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("PHONESTOCK_LOW_STOCK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LowStockThreshold = n
		}
	}
}
