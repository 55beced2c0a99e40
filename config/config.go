package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Catalog source names accepted by LISTING_SOURCE and DETAIL_SOURCE
const (
	SourceStatic   = "static"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Port          string
	ContentRoot   string
	FundsFile     string
	ListingSource string
	DetailSource  string
	PGURL         string
	LogLevel      log.Level
	NAVCurrency   string
}

// Load reads configuration from environment variables.
// Values from a .env file in the working directory are used only when the
// variable is not already set in the environment.
func Load() (*Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		ContentRoot:   getEnv("CONTENT_ROOT", "wwwroot"),
		FundsFile:     getEnv("FUNDS_FILE", "data/funds.json"),
		ListingSource: strings.ToLower(getEnv("LISTING_SOURCE", SourceStatic)),
		DetailSource:  strings.ToLower(getEnv("DETAIL_SOURCE", SourceFile)),
		PGURL:         os.Getenv("PG_URL"),
		NAVCurrency:   strings.ToUpper(getEnv("NAV_CURRENCY", "USD")),
	}

	for name, source := range map[string]string{"LISTING_SOURCE": cfg.ListingSource, "DETAIL_SOURCE": cfg.DetailSource} {
		switch source {
		case SourceStatic, SourceFile, SourcePostgres:
		default:
			return nil, fmt.Errorf("%s must be one of static, file, postgres; got %q", name, source)
		}
	}

	if money.GetCurrency(cfg.NAVCurrency) == nil {
		return nil, fmt.Errorf("NAV_CURRENCY must be an ISO 4217 currency code; got %q", cfg.NAVCurrency)
	}

	if cfg.UsesPostgres() && cfg.PGURL == "" {
		return nil, fmt.Errorf("PG_URL environment variable is required when a catalog source is postgres")
	}

	level, err := log.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

// UsesPostgres reports whether either catalog is backed by Postgres
func (c *Config) UsesPostgres() bool {
	return c.ListingSource == SourcePostgres || c.DetailSource == SourcePostgres
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
