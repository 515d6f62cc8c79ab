package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"DATABASE_URL", "SERVER_PORT", "SESSION_TTL", "REDIS_URL",
		"DEFAULT_REQUIRED_HOURS", "LOG_LEVEL", "COOKIE_SECURE",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "", cfg.RedisURL)
	assert.Equal(t, 500.0, cfg.DefaultRequiredHours)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.CookieSecure)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("DEFAULT_REQUIRED_HOURS", "486")
	t.Setenv("COOKIE_SECURE", "true")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "redis://localhost:6379/1", cfg.RedisURL)
	assert.Equal(t, 486.0, cfg.DefaultRequiredHours)
	assert.True(t, cfg.CookieSecure)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("DEFAULT_REQUIRED_HOURS", "-3")
	t.Setenv("COOKIE_SECURE", "maybe")

	cfg := Load()

	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 500.0, cfg.DefaultRequiredHours)
	assert.False(t, cfg.CookieSecure)
}
