package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 9300, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 20, cfg.Database.MaxConnections)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 10*time.Second, cfg.Push.HeartbeatInterval)
	assert.Equal(t, 16, cfg.Push.SubscriberBuffer)
	assert.Equal(t, "auth-hub", cfg.Auth.BackendTokenIssuer)
	assert.Equal(t, "pipeshare", cfg.Auth.BackendTokenAudience)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("PUSH_HEARTBEAT_INTERVAL", "5s")
	t.Setenv("PUSH_SUBSCRIBER_BUFFER", "64")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")
	t.Setenv("BACKEND_TOKEN_SECRET", "sekrit")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Push.HeartbeatInterval)
	assert.Equal(t, 64, cfg.Push.SubscriberBuffer)
	assert.Equal(t, "redis://cache:6379/2", cfg.Redis.URL)
	assert.Equal(t, "sekrit", cfg.Auth.BackendTokenSecret)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("PUSH_HEARTBEAT_INTERVAL", "soon")

	cfg := Load()

	assert.Equal(t, 9300, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Push.HeartbeatInterval)
}
