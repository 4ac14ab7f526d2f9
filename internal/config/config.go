package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port string

	DatabaseDriver string
	DatabaseURL    string

	JWTSecret    string
	SessionTTL   time.Duration
	CookieDomain string
	CookieSecure bool

	LogLevel  string
	LogFormat string

	AuthRateLimit int
	AuthRateBurst int
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET environment variable is not set")

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, relying on environment variables")
	}

	cfg := Config{
		Port:           getEnv("PORT", "3000"),
		DatabaseDriver: strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		CookieDomain:   os.Getenv("COOKIE_DOMAIN"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "24h")); err != nil {
		return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	if cfg.CookieSecure, err = strconv.ParseBool(getEnv("COOKIE_SECURE", "true")); err != nil {
		return Config{}, fmt.Errorf("invalid COOKIE_SECURE: %w", err)
	}

	if cfg.AuthRateLimit, err = strconv.Atoi(getEnv("AUTH_RATE_LIMIT", "5")); err != nil {
		return Config{}, fmt.Errorf("invalid AUTH_RATE_LIMIT: %w", err)
	}

	if cfg.AuthRateBurst, err = strconv.Atoi(getEnv("AUTH_RATE_BURST", "10")); err != nil {
		return Config{}, fmt.Errorf("invalid AUTH_RATE_BURST: %w", err)
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}

	if cfg.DatabaseURL == "" {
		if cfg.DatabaseDriver != "sqlite" {
			return Config{}, errors.New("DATABASE_URL environment variable is not set")
		}
		cfg.DatabaseURL = "ohcard.db"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
