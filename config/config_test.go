package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("SKILLHUB_INT", "42")
	t.Setenv("SKILLHUB_BAD_INT", "forty-two")
	t.Setenv("SKILLHUB_BOOL", "true")
	t.Setenv("SKILLHUB_BAD_BOOL", "maybe")
	t.Setenv("SKILLHUB_LIST", " http://a.test , ,http://b.test ")
	t.Setenv("SKILLHUB_EMPTY_LIST", " , ")

	assert.Equal(t, 42, GetEnvInt("SKILLHUB_INT", 1))
	assert.Equal(t, 1, GetEnvInt("SKILLHUB_BAD_INT", 1))
	assert.Equal(t, 1, GetEnvInt("SKILLHUB_MISSING", 1))

	assert.True(t, GetEnvBool("SKILLHUB_BOOL", false))
	assert.False(t, GetEnvBool("SKILLHUB_BAD_BOOL", false))

	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetEnvList("SKILLHUB_LIST", nil))
	assert.Equal(t, []string{"*"}, GetEnvList("SKILLHUB_EMPTY_LIST", []string{"*"}))
	assert.Equal(t, "fallback", GetEnv("SKILLHUB_MISSING", "fallback"))
}

func TestLoad(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "skillhub.db")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://skillhub.id")

	cfg := Load()

	assert.Same(t, cfg, AppConfig)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "skillhub.db", cfg.DatabaseURL)
	assert.True(t, cfg.AuthEnabled)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.False(t, cfg.AllowAllOrigins())
}

func TestAllowAllOrigins(t *testing.T) {
	assert.True(t, (&Config{}).AllowAllOrigins())
	assert.True(t, (&Config{CORSAllowedOrigins: []string{"https://a.test", "*"}}).AllowAllOrigins())
	assert.False(t, (&Config{CORSAllowedOrigins: []string{"https://a.test"}}).AllowAllOrigins())
}
