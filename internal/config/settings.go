package config

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
)

// Settings holds the non-database configuration, all env-driven with
// defaults suitable for local development.
type Settings struct {
	Port string

	// Pricing epoch: at TransitionDate the organization-wide monthly
	// price changes from MonthlyFareBefore to MonthlyFareAfter, and the
	// sweep supersedes fares effective before that instant.
	TransitionDate    time.Time
	MonthlyFareBefore decimal.Decimal
	MonthlyFareAfter  decimal.Decimal

	// How often the fare transition sweep runs.
	FareSweepInterval time.Duration

	// Base URL of the external users/organizations service for response
	// enrichment. Empty disables enrichment.
	UserServiceURL string
}

// LoadSettings reads the service settings from the environment. Malformed
// values fall back to the defaults with a log line rather than aborting.
func LoadSettings() Settings {
	s := Settings{
		Port:              getEnv("PORT", "8080"),
		TransitionDate:    parseDateEnv("TRANSITION_DATE", "2025-11-01"),
		MonthlyFareBefore: parseDecimalEnv("MONTHLY_FARE_BEFORE", "15.00"),
		MonthlyFareAfter:  parseDecimalEnv("MONTHLY_FARE_AFTER", "20.00"),
		FareSweepInterval: parseDurationEnv("FARE_SWEEP_INTERVAL", time.Hour),
		UserServiceURL:    getEnv("USER_SERVICE_URL", ""),
	}
	return s
}

func parseDateEnv(key, defaultValue string) time.Time {
	raw := getEnv(key, defaultValue)
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s", key, raw, defaultValue)
		t, _ = time.Parse("2006-01-02", defaultValue)
	}
	return t
}

func parseDecimalEnv(key, defaultValue string) decimal.Decimal {
	raw := getEnv(key, defaultValue)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s", key, raw, defaultValue)
		d, _ = decimal.NewFromString(defaultValue)
	}
	return d
}

func parseDurationEnv(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("invalid %s=%q, using default %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
