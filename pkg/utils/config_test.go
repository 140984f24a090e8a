package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-file\nDB_NAME=turfs\nSTORAGE_TIMEOUT=2s\nCORS_ORIGINS=https://app.example.com, https://admin.example.com,\n"), 0o600))
	t.Setenv("PORT", "9090")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", config.JWT.Secret)
	assert.Equal(t, "turfs", config.Database.Name)
	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, 2*time.Second, config.App.StorageTimeout)
	assert.Equal(t, 15*time.Second, config.App.RequestTimeout)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.Equal(t, "0 0 3 * * *", config.Jobs.SessionCleanupCron)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, config.App.CORSOrigins)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", config.JWT.Secret)
	assert.Equal(t, []string{"*"}, config.App.CORSOrigins)

	loc, err := config.App.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
