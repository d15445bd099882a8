package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("APP_MODE", "dev")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.True(t, cfg.IsDev())
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, StorageMemory, cfg.Session.Storage)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, 30*time.Minute, cfg.SessionIdle())
	assert.False(t, cfg.AuthGuardStrict)
	assert.Equal(t, "@every 15m", cfg.GoldRateRefresh)
	assert.Equal(t, "*", cfg.GetAllowedOrigins())
}

func TestParse_ModePrefixedDatabase(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("PROD_DB_HOST", "db.internal")
	t.Setenv("PROD_DB_NAME", "loans")
	t.Setenv("DEV_DB_HOST", "ignored")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "loans", cfg.Database.DBName)
	assert.Equal(t, "3306", cfg.Database.Port)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("APP_MODE", " dev ")
	t.Setenv("API_BASE_URL", "https://api.example.com/api/")
	t.Setenv("API_TIMEOUT", "0s")
	t.Setenv("SESSION_STORAGE", "Redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("AUTH_GUARD_STRICT", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://portal.example.com")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppMode)
	assert.Equal(t, "https://api.example.com/api", cfg.API.BaseURL)
	assert.Zero(t, cfg.API.Timeout)
	assert.Equal(t, StorageRedis, cfg.Session.Storage)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.AuthGuardStrict)
	assert.Equal(t, "https://portal.example.com", cfg.GetAllowedOrigins())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad mode", "APP_MODE", "staging"},
		{"bad storage", "SESSION_STORAGE", "etcd"},
		{"bad timeout", "API_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_MODE", "dev")
			t.Setenv(tt.key, tt.val)

			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN(DatabaseConfig{Host: "h", Port: "3306", User: "u", Password: "p", DBName: "d"})
	assert.Equal(t, "u:p@tcp(h:3306)/d?charset=utf8mb4&parseTime=True&loc=Local", dsn)
}
