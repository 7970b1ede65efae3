package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hrkit/biotime-bridge-go/internal/pkg/timeofday"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Rules    RulesConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// UpstreamConfig holds the connection settings for the upstream
// time-clock service.
type UpstreamConfig struct {
	BaseURL  string
	Username string
	Password string
}

// RulesConfig holds the attendance rule thresholds. Parsed once at startup;
// an invalid threshold format fails Load.
type RulesConfig struct {
	WorkStart  timeofday.TimeOfDay
	LateAfter  timeofday.TimeOfDay
	EarlyLeave timeofday.TimeOfDay
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.Upstream = UpstreamConfig{
		BaseURL:  normalizeBaseURL(getEnv("BIOTIME_BASE", "http://localhost:8080")),
		Username: getEnv("BIOTIME_USERNAME", "admin"),
		Password: getEnv("BIOTIME_PASSWORD", "password"),
	}

	workStart, err := timeofday.Parse(getEnv("WORK_START_TIME", "08:00:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_START_TIME: %w", err)
	}
	lateAfter, err := timeofday.Parse(getEnv("LATE_AFTER_TIME", "08:05:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_AFTER_TIME: %w", err)
	}
	earlyLeave, err := timeofday.Parse(getEnv("EARLY_LEAVE_TIME", "17:00:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid EARLY_LEAVE_TIME: %w", err)
	}

	config.Rules = RulesConfig{
		WorkStart:  workStart,
		LateAfter:  lateAfter,
		EarlyLeave: earlyLeave,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("BIOTIME_BASE is required")
	}
	if c.Upstream.Username == "" {
		return fmt.Errorf("BIOTIME_USERNAME is required")
	}
	if c.Upstream.Password == "" {
		return fmt.Errorf("BIOTIME_PASSWORD is required")
	}
	return nil
}

// normalizeBaseURL ensures the upstream base always carries a scheme and no
// trailing slash.
func normalizeBaseURL(raw string) string {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "http://" + raw
	}
	return strings.TrimRight(raw, "/")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
