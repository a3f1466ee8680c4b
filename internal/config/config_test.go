package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("MINIO_PRESIGN_TTL_SEC", "60")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, time.Minute, cfg.MinIO.PresignTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_TZ", "MINIO_BUCKET", "DB_AUTO_MIGRATE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "UTC", cfg.TimeZone)
	assert.Equal(t, "reports", cfg.MinIO.Bucket)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLocation(t *testing.T) {
	cfg := &AppConfig{TimeZone: "Local"}
	assert.Equal(t, time.Local, cfg.Location())

	cfg.TimeZone = "Mars/Olympus_Mons"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestEnvSource(t *testing.T) {
	t.Setenv("TEST_ENV_VAR", "value")
	t.Setenv("TEST_BOOL_VAR", "true")
	t.Setenv("TEST_BAD_BOOL", "invalid")
	t.Setenv("TEST_INT_VAR", "123")
	t.Setenv("TEST_BAD_INT", "invalid")

	e := newEnv()

	assert.Equal(t, "value", e.get("TEST_ENV_VAR", "default"))
	assert.Equal(t, "default", e.get("NON_EXISTENT", "default"))

	assert.True(t, e.getBool("TEST_BOOL_VAR", false))
	assert.True(t, e.getBool("TEST_BAD_BOOL", true))
	assert.False(t, e.getBool("NON_EXISTENT", false))

	assert.Equal(t, 123, e.getInt("TEST_INT_VAR", 0))
	assert.Equal(t, 10, e.getInt("TEST_BAD_INT", 10))
	assert.Equal(t, 10, e.getInt("NON_EXISTENT", 10))
}

func TestLoad_UnparsableFallsBack(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "lots")
	t.Setenv("MINIO_USE_SSL", "maybe")
	t.Setenv("PORT", "  ")

	cfg := Load()

	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.False(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "8080", cfg.Port)
}
