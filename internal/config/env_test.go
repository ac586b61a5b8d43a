package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("ENGINE_MAX_DEPTH", "16")
	t.Setenv("STORAGE_DB_DRIVER", "sqlite3")
	t.Setenv("STORAGE_DB_DATABASE_URI", "file:contracts.db")
	t.Setenv("SERVER_ADDRESS", "localhost:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "2m")
	t.Setenv("CONFIG", "/tmp/cfg.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, 16, cfg.Engine.MaxDepth)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:contracts.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Zero(t, cfg.Engine.MaxDepth)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("ENGINE_MAX_DEPTH", "not-a-number")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
