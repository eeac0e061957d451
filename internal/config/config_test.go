package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/historymap")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://prozhito.org", cfg.ScraperBaseURL)
	assert.Equal(t, 10*time.Second, cfg.ScraperTimeout)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, 10, cfg.MLBatchSize)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_InvalidCacheTTL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/historymap")
	t.Setenv("CACHE_TTL", "-5m")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_TTL")
}

func TestCORSOriginList(t *testing.T) {
	cfg := &Config{CORSOrigins: "http://a.example, http://b.example ,,"}
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOriginList())
}
