// Package config provides application configuration loaded from
// environment variables.
package config

import (
	"fmt"
	"os"
)

// Mode determines whether the monitor reads real spreadsheets or local
// JSON fixtures.
type Mode string

const (
	ModeStub       Mode = "stub"
	ModeProduction Mode = "production"
)

// Default A1 ranges for the three source tables.
const (
	DefaultStockRange  = "balance!A1:P3"
	DefaultPartsRange  = "parts_balance!A1:H3"
	DefaultLedgerRange = "summary!A:BZ"
)

// Config holds all application configuration.
type Config struct {
	Mode        Mode
	FixturesDir string

	SpecSheetID     string
	LedgerSheetID   string
	WebhookURL      string
	CredentialsFile string

	StockRange  string
	PartsRange  string
	LedgerRange string

	// DataDir is where baseline state files live.
	DataDir string

	LogLevel   string
	EnableOTel bool
}

// LoadFromEnv reads configuration from environment variables with
// sensible defaults and validates eagerly: a missing required identifier
// aborts before any component is built.
func LoadFromEnv() (Config, error) {
	cfg := Config{
		Mode:            Mode(envOr("STOCKWATCH_MODE", "production")),
		FixturesDir:     os.Getenv("FIXTURES_DIR"),
		SpecSheetID:     os.Getenv("SPECIFICATION_SHEET_ID"),
		LedgerSheetID:   os.Getenv("INVENTORY_SHEET_ID"),
		WebhookURL:      os.Getenv("SPACE_WEBHOOK_URL"),
		CredentialsFile: envOr("STOCKWATCH_CREDENTIALS_FILE", "service-account.json"),
		StockRange:      envOr("STOCKWATCH_STOCK_RANGE", DefaultStockRange),
		PartsRange:      envOr("STOCKWATCH_PARTS_RANGE", DefaultPartsRange),
		LedgerRange:     envOr("STOCKWATCH_LEDGER_RANGE", DefaultLedgerRange),
		DataDir:         dataDir(),
		LogLevel:        envOr("STOCKWATCH_LOG_LEVEL", "info"),
		EnableOTel:      os.Getenv("STOCKWATCH_OTEL") == "1",
	}

	if cfg.Mode != ModeStub && cfg.Mode != ModeProduction {
		return Config{}, fmt.Errorf("config: invalid STOCKWATCH_MODE %q (must be stub or production)", cfg.Mode)
	}

	if cfg.Mode == ModeProduction {
		if cfg.SpecSheetID == "" {
			return Config{}, fmt.Errorf("config: SPECIFICATION_SHEET_ID environment variable not set")
		}
		if cfg.LedgerSheetID == "" {
			return Config{}, fmt.Errorf("config: INVENTORY_SHEET_ID environment variable not set")
		}
		if cfg.WebhookURL == "" {
			return Config{}, fmt.Errorf("config: SPACE_WEBHOOK_URL environment variable not set")
		}
	} else if cfg.FixturesDir == "" {
		return Config{}, fmt.Errorf("config: FIXTURES_DIR required in stub mode")
	}

	return cfg, nil
}

// dataDir resolves the state directory: the CI workspace root when the
// job runs under GitHub Actions, else the working directory.
func dataDir() string {
	if ws := os.Getenv("GITHUB_WORKSPACE"); ws != "" {
		return ws
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
