package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, DefaultIndexerBaseURL, cfg.IndexerBaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 0, cfg.UpstreamRetryMax, "upstream calls must default to single round-trips")
	assert.Equal(t, "10000", cfg.DefaultTradeSize)
	assert.Equal(t, 300, cfg.RevalidateHistorical)
	assert.Equal(t, 15, cfg.RevalidateLive)
	assert.Zero(t, cfg.RateLimitRPS)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INDEXER_BASE_URL", "http://localhost:9000")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("UPSTREAM_RETRY_MAX", "3")
	t.Setenv("RATE_LIMIT_RPS", "10.5")

	cfg := Load()

	assert.Equal(t, "http://localhost:9000", cfg.IndexerBaseURL)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3, cfg.UpstreamRetryMax)
	assert.Equal(t, 10.5, cfg.RateLimitRPS)
}

func TestTypedGetters_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SOME_INT", "not-an-int")
	t.Setenv("SOME_DURATION", "soon")

	assert.Equal(t, 7, GetEnvAsInt("SOME_INT", 7))
	assert.Equal(t, time.Minute, GetEnvAsDuration("SOME_DURATION", time.Minute))
	assert.Equal(t, 1.5, GetEnvAsFloat("SOME_INT", 1.5))
}
