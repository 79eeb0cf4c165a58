// Package config provides environment-driven configuration for the server.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"sie-mcp/internal/sie"
)

// Config holds all runtime configuration.
type Config struct {
	// Token is the SIE API access token (BANXICO_API_TOKEN). May be
	// empty; tools then report a configuration error instead of
	// calling upstream.
	Token string

	// BaseURL is the SIE API base address (BANXICO_BASE_URL).
	BaseURL string

	// Timeout bounds each upstream request (BANXICO_TIMEOUT_SECONDS).
	Timeout time.Duration

	// HealthPort, when positive, enables the HTTP liveness listener
	// for container probes (HEALTH_PORT).
	HealthPort int
}

// Load reads configuration from the environment, with a best-effort
// .env load first so local development does not need exported variables.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Token:      os.Getenv("BANXICO_API_TOKEN"),
		BaseURL:    getEnvOrDefault("BANXICO_BASE_URL", sie.DefaultBaseURL),
		Timeout:    time.Duration(getEnvInt("BANXICO_TIMEOUT_SECONDS", 30)) * time.Second,
		HealthPort: getEnvInt("HEALTH_PORT", 0),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
