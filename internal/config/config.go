package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	// URL, when set, is used as the DSN and the discrete fields are ignored.
	URL                string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	AutoMigrate        bool
	// LogQueries traces every statement through the root logger at debug level.
	LogQueries bool
}

// MinIOConfig holds object storage settings for report exports.
type MinIOConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	UseSSL     bool
	PresignTTL time.Duration
}

// LogConfig controls the zerolog root logger.
type LogConfig struct {
	Level  string
	Pretty bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	TimeZone string
	Log      LogConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file is auto-loaded by importing _ "github.com/joho/godotenv/autoload" in main;
// real environment variables take precedence. Empty or unparsable values fall back to defaults.
func Load() *AppConfig {
	e := newEnv()
	return &AppConfig{
		AppHost:  e.get("APP_HOST", "localhost:8080"),
		Port:     e.get("PORT", "8080"),
		TimeZone: e.get("APP_TZ", "UTC"),
		Log: LogConfig{
			Level:  e.get("LOG_LEVEL", "info"),
			Pretty: e.getBool("LOG_PRETTY", false),
		},
		Database: DatabaseConfig{
			URL:                e.get("DATABASE_URL", ""),
			Host:               e.get("DB_HOST", ""),
			Port:               e.get("DB_PORT", "5432"),
			User:               e.get("DB_USER", ""),
			Password:           e.get("DB_PASSWORD", ""),
			Name:               e.get("DB_NAME", ""),
			SSLMode:            e.get("DB_SSLMODE", "disable"),
			MaxOpenConns:       e.getInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       e.getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: e.getInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			AutoMigrate:        e.getBool("DB_AUTO_MIGRATE", true),
			LogQueries:         e.getBool("DB_LOG_QUERIES", false),
		},
		MinIO: MinIOConfig{
			Endpoint:   e.get("MINIO_ENDPOINT", ""),
			AccessKey:  e.get("MINIO_ACCESS_KEY", ""),
			SecretKey:  e.get("MINIO_SECRET_KEY", ""),
			Bucket:     e.get("MINIO_BUCKET", "reports"),
			UseSSL:     e.getBool("MINIO_USE_SSL", false),
			PresignTTL: time.Duration(e.getInt("MINIO_PRESIGN_TTL_SEC", 900)) * time.Second,
		},
	}
}

// Location resolves TimeZone, falling back to UTC for unknown names.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// envSource is a flat view of the process environment, keyed by variable name.
type envSource struct {
	k *koanf.Koanf
}

func newEnv() envSource {
	k := koanf.New(".")
	// The env provider never fails; a nil error is all it returns.
	_ = k.Load(env.Provider("", ".", func(s string) string { return s }), nil)
	return envSource{k: k}
}

func (e envSource) get(key, def string) string {
	if v := strings.TrimSpace(e.k.String(key)); v != "" {
		return v
	}
	return def
}

func (e envSource) getBool(key string, def bool) bool {
	if v := e.get(key, ""); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func (e envSource) getInt(key string, def int) int {
	if v := e.get(key, ""); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
