package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndLegacyEnv(t *testing.T) {
	t.Setenv("SECRET_KEY", "top-secret")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/app")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")
	t.Setenv("BACKEND_CORS_ORIGINS", `["https://a.example","https://b.example"]`)

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "top-secret", cfg.Auth.SecretKey)
	assert.Equal(t, "postgres://u:p@db:5432/app", cfg.Database.DSN)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.Origins)

	assert.Equal(t, "serviceflow-api", cfg.App.Name)
	assert.Equal(t, 8000, cfg.App.Port)
	assert.Equal(t, "X-API-KEY", cfg.Auth.APIKeyHeader)
	assert.Equal(t, "sf_", cfg.Auth.APIKeyPrefix)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.APIKeyCacheTTL())
	assert.Equal(t, 10*time.Second, cfg.MetricExportInterval())
}

func TestLoad_DottedEnv(t *testing.T) {
	t.Setenv("AUTH_SECRETKEY", "k")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	t.Setenv("AUTH_SECRETKEY", "")

	_, err := LoadFrom(viper.New())
	assert.ErrorContains(t, err, "auth.secretkey")
}

func TestAccessTokenTTL_Fallback(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenTTL())
	assert.Equal(t, 10*time.Second, cfg.MetricExportInterval())

	cfg.Telemetry.MetricIntervalSec = 30
	assert.Equal(t, 30*time.Second, cfg.MetricExportInterval())
}
