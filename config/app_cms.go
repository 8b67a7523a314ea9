package config

import (
	"os"
	"time"
)

const defaultContentCacheTTL = 5 * time.Minute

// CMSConfig holds the connection settings for the headless CMS the content
// proxy reads from.
type CMSConfig struct {
	BaseURL  string
	APIToken string
	CacheTTL time.Duration
}

func NewCMSConfig() *CMSConfig {
	cfg := &CMSConfig{
		BaseURL:  os.Getenv("CMS_BASE_URL"),
		APIToken: os.Getenv("CMS_API_TOKEN"),
		CacheTTL: defaultContentCacheTTL,
	}

	if ttlStr := os.Getenv("CONTENT_CACHE_TTL"); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil && parsed > 0 {
			cfg.CacheTTL = parsed
		}
	}

	return cfg
}

func (cc *CMSConfig) IsConfigured() bool {
	return cc.BaseURL != ""
}
