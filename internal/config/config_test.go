package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govilvipul/HealthcareCM/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "us-east-1", cfg.Dynamo.Region)
	assert.Equal(t, "HealthCareCases", cfg.Dynamo.Table)
	assert.Equal(t, int64(3600), cfg.S3.PresignExpiry)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HCM_SERVER_PORT", ":9090")
	t.Setenv("HCM_DYNAMO_TABLE", "StagingCases")
	t.Setenv("HCM_DYNAMO_ENDPOINT", "http://localhost:8000")
	t.Setenv("HCM_S3_PRESIGN_EXPIRY", "600")
	t.Setenv("HCM_CORS_ALLOWED_ORIGINS", "https://review.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "StagingCases", cfg.Dynamo.Table)
	assert.Equal(t, "http://localhost:8000", cfg.Dynamo.Endpoint)
	assert.Equal(t, int64(600), cfg.S3.PresignExpiry)
	assert.Equal(t, []string{"https://review.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7001")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":7001", cfg.Server.Port)
}
