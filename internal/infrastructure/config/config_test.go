package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mysql", cfg.SQL.Driver)
	assert.Equal(t, 10, cfg.DefaultResultLimit)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 4, cfg.Audit.Workers)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":                  "production",
		"DB_DRIVER":            "sqlite",
		"DB_DSN":               "file:catalog.db",
		"CACHE_ENABLED":        "false",
		"CACHE_TTL":            "2m",
		"DEFAULT_RESULT_LIMIT": "25",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "sqlite", cfg.SQL.Driver)
	assert.Equal(t, "file:catalog.db", cfg.SQL.DSN)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 2*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, 25, cfg.DefaultResultLimit)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"DB_DRIVER": "oracle",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestLoad_RejectsNonPositiveLimit(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"DEFAULT_RESULT_LIMIT": "0",
	}))
	require.Error(t, err)
}
