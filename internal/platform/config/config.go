package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the demo. Everything has a default; a
// .env file or environment variables override.
type Config struct {
	AppVersion string

	// PaymentDelay is the simulated payment-gateway round-trip.
	PaymentDelay time.Duration

	LogLevel string
	// LogFile enables a rotating file sink when set; empty logs to stderr.
	LogFile string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		PaymentDelay: time.Duration(getEnvAsInt("PAYMENT_DELAY_MS", 1500)) * time.Millisecond,
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
