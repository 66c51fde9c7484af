package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort       = "8080"
	defaultEnv        = "development"
	defaultSessionTTL = 30 * 24 * time.Hour
)

type Config struct {
	Port           string
	Environment    string
	PostgresURL    string
	JWTSecret      string
	SessionTTL     time.Duration
	CookieSecure   bool
	MigrateOnStart bool

	StripeSecretKey     string
	StripeWebhookSecret string
	StripePriceID       string
	CanonicalURL        string
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:                withDefault(getenv("PORT"), defaultPort),
		Environment:         withDefault(getenv("APP_ENV"), defaultEnv),
		PostgresURL:         getenv("POSTGRES_URL"),
		JWTSecret:           getenv("JWT_SECRET"),
		StripeSecretKey:     getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: getenv("STRIPE_WEBHOOK_SECRET"),
		StripePriceID:       getenv("STRIPE_PRICE_ID"),
		CanonicalURL:        strings.TrimRight(getenv("CANONICAL_URL"), "/"),
	}

	if cfg.CanonicalURL == "" {
		cfg.CanonicalURL = "http://localhost:" + cfg.Port
	}

	var missing []string
	for _, required := range []struct{ key, value string }{
		{"POSTGRES_URL", cfg.PostgresURL},
		{"JWT_SECRET", cfg.JWTSecret},
		{"STRIPE_SECRET_KEY", cfg.StripeSecretKey},
		{"STRIPE_WEBHOOK_SECRET", cfg.StripeWebhookSecret},
		{"STRIPE_PRICE_ID", cfg.StripePriceID},
	} {
		if required.value == "" {
			missing = append(missing, required.key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}

	var err error
	if cfg.SessionTTL, err = parseDuration(getenv("SESSION_TTL"), defaultSessionTTL); err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if cfg.CookieSecure, err = parseBool(getenv("COOKIE_SECURE"), false); err != nil {
		return nil, fmt.Errorf("COOKIE_SECURE: %w", err)
	}
	if cfg.MigrateOnStart, err = parseBool(getenv("MIGRATE_ON_START"), true); err != nil {
		return nil, fmt.Errorf("MIGRATE_ON_START: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseDuration(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", raw)
	}
	return d, nil
}

func parseBool(raw string, fallback bool) (bool, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseBool(raw)
}
