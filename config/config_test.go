package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "")

	_, err := Load("testdata/missing.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadRequiresMongoURIForMongoDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load("testdata/missing.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGODB_URI")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("RATE_LIMIT_BACKEND", "redis")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := Load("testdata/missing.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "users", cfg.Mongo.Collections.Users)
	assert.Equal(t, 3, cfg.RateLimit.Max)
	assert.Equal(t, time.Hour, cfg.RateLimit.Window)
	assert.Equal(t, "memory", cfg.RateLimit.Backend, "redis backend without REDIS_ADDR falls back")
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "30m")
	t.Setenv("JWT_EXPIRY_HOURS", "not-a-number")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://egharbari.com")

	cfg, err := Load("testdata/missing.env")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.RateLimit.Max)
	assert.Equal(t, 30*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiry, "unparsable value keeps the default")
	assert.Equal(t, []string{"http://localhost:3000", "https://egharbari.com"}, cfg.CORSOrigins)
}
