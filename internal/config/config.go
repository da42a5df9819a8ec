package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPAddr        = ":8080"
	defaultTokenTTL        = "168h" // 7 days, matches session lifetime
	defaultSessionTTL      = "168h"
	defaultExchangeTimeout = "10s"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultIdentityURL     = "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"
)

type Config struct {
	HTTPAddr            string
	DatabaseURL         string
	JWTSecret           string
	TokenTTL            time.Duration
	SessionTTL          time.Duration
	IdentityExchangeURL string
	ExchangeTimeout     time.Duration
	CORSOrigins         []string
}

func Load() (*Config, error) {
	cfg := &Config{}

	cfg.HTTPAddr = getEnv("HTTP_ADDR", defaultHTTPAddr)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.IdentityExchangeURL = strings.TrimSpace(getEnv("IDENTITY_EXCHANGE_URL", defaultIdentityURL))

	var err error
	cfg.TokenTTL, err = parseDurationEnv("TOKEN_TTL", defaultTokenTTL)
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	cfg.ExchangeTimeout, err = parseDurationEnv("IDENTITY_EXCHANGE_TIMEOUT", defaultExchangeTimeout)
	if err != nil {
		return nil, err
	}

	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}
