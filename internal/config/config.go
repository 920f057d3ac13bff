package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string
	DBPath       string
	LogLevel     string
	ForecastDays int
	InsightLimit int
	DueCardCap   int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:         envOr("ADDR", ":8080"),
		DBPath:       envOr("DB_PATH", "studypath.db"),
		LogLevel:     envOr("LOG_LEVEL", "INFO"),
		ForecastDays: envIntOr("FORECAST_DAYS", 7),
		InsightLimit: envIntOr("INSIGHT_LIMIT", 3),
		DueCardCap:   envIntOr("DUE_CARD_CAP", 100),
	}
}

// Validate checks the configuration and reports every problem it finds.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	if c.ForecastDays < 1 || c.ForecastDays > 90 {
		problems = append(problems, fmt.Sprintf("FORECAST_DAYS must be between 1 and 90, got %d", c.ForecastDays))
	}
	if c.InsightLimit < 1 {
		problems = append(problems, fmt.Sprintf("INSIGHT_LIMIT must be at least 1, got %d", c.InsightLimit))
	}
	if c.DueCardCap < 1 {
		problems = append(problems, fmt.Sprintf("DUE_CARD_CAP must be at least 1, got %d", c.DueCardCap))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
