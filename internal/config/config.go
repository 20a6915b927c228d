// Package config provides configuration loading and management for the application.
package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultIndexerBaseURL is the upstream indexer the service proxies when
// INDEXER_BASE_URL is not set. All endpoint suffixes are appended to it.
const DefaultIndexerBaseURL = "https://api.vaultindexer.xyz/v1"

// Config holds all application configuration. It is constructed once at
// startup and injected into the indexer client and the API server; nothing
// below the entrypoint reads the environment directly.
type Config struct {
	// HTTP server port
	Port string

	// Base URL of the upstream vault indexer
	IndexerBaseURL string

	// API key forwarded to the indexer, empty if the indexer is open
	IndexerAPIKey string

	// OpenTelemetry endpoint for observability
	OtelEndpoint string

	// Timeout for a single upstream round-trip
	RequestTimeout time.Duration

	// Transport-level retries for upstream calls. Upstream failures are
	// surfaced verbatim, so this defaults to zero.
	UpstreamRetryMax int

	// Default trade size (USD notional) for price-impact queries
	DefaultTradeSize string

	// Advisory Cache-Control revalidation windows, in seconds
	RevalidateHistorical int
	RevalidateLive       int

	// Rate limiting settings (disabled when RateLimitRPS is zero)
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load creates a new Config from environment variables
func Load() Config {
	return Config{
		Port:                 GetEnvOrDefault("PORT", "8080"),
		IndexerBaseURL:       GetEnvOrDefault("INDEXER_BASE_URL", DefaultIndexerBaseURL),
		IndexerAPIKey:        GetEnvOrDefault("INDEXER_API_KEY", ""),
		OtelEndpoint:         GetEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		RequestTimeout:       GetEnvAsDuration("REQUEST_TIMEOUT", 10*time.Second),
		UpstreamRetryMax:     GetEnvAsInt("UPSTREAM_RETRY_MAX", 0),
		DefaultTradeSize:     GetEnvOrDefault("DEFAULT_TRADE_SIZE", "10000"),
		RevalidateHistorical: GetEnvAsInt("REVALIDATE_HISTORICAL", 300),
		RevalidateLive:       GetEnvAsInt("REVALIDATE_LIVE", 15),
		RateLimitRPS:         GetEnvAsFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst:       GetEnvAsInt("RATE_LIMIT_BURST", 20),
	}
}

// GetEnv retrieves an environment variable and whether it exists
func GetEnv(key string) (string, bool) {
	value, exists := os.LookupEnv(key)
	return value, exists
}

// GetEnvOrDefault retrieves an environment variable or returns the default value if not set
func GetEnvOrDefault(key, defaultValue string) string {
	if value, exists := GetEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt retrieves an environment variable as an integer with a default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value, exists := GetEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsFloat retrieves an environment variable as a float with a default value
func GetEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := GetEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration retrieves an environment variable as a duration with a default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := GetEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
