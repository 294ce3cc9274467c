package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "sqlite3", cfg.DB.Driver)
	assert.Equal(t, "data/sessions", cfg.Storage.SessionsDir)
	assert.Equal(t, time.Hour, cfg.CacheTTL.Session)
	assert.False(t, cfg.Auth.Enabled)
	assert.Empty(t, cfg.Redis.Address)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("REDIS_ADDRESS", "localhost:6380")
	t.Setenv("SESSIONS_DIR", "/tmp/career-sessions")
	t.Setenv("DB_DRIVER", "oracle")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "localhost:6380", cfg.Redis.Address)
	assert.Equal(t, "/tmp/career-sessions", cfg.Storage.SessionsDir)
	assert.Equal(t, "oracle", cfg.DB.Driver)
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{DB: DBConfig{Driver: "oracle", User: "career", Password: "secret", Host: "db", Port: 1521, DBName: "XEPDB1"}}
	assert.Equal(t, "oracle://career:secret@db:1521/XEPDB1", cfg.GetDSN())

	cfg = &Config{DB: DBConfig{Driver: "sqlite3", Path: "data/test.db"}}
	assert.Equal(t, "data/test.db?_journal_mode=WAL&_foreign_keys=on", cfg.GetDSN())
}
