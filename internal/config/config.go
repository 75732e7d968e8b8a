package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Descriptor catalog
	CatalogDir string

	// Auth
	APIKey string

	// Request limits
	MaxBodyBytes int64
}

func Load() Config {
	cfg := Config{
		Port:         envOr("PORT", "8091"),
		CatalogDir:   envOr("CATALOG_DIR", "catalog"),
		APIKey:       os.Getenv("TAGBIND_API_KEY"),
		MaxBodyBytes: envInt64("MAX_BODY_BYTES", 1<<20), // 1MB
	}

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}

	return cfg
}

func (c Config) Validate() error {
	if c.CatalogDir == "" {
		return fmt.Errorf("CATALOG_DIR is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("TAGBIND_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
