package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperRequiresTokenKey(t *testing.T) {
	t.Setenv("TOKEN_KEY", "")
	v := newViper()
	_, err := FromViper(v)
	assert.ErrorIs(t, err, ErrNoTokenKey)
}

func TestFromViperDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "WEATHER_CACHE_TTL", "GEMINI_MODEL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "TLS_CERT", "TLS_KEY"} {
		t.Setenv(k, "")
	}
	v := newViper()
	v.Set("TOKEN_KEY", "secret")

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Minute, cfg.WeatherCacheTTL)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, float64(5), cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.False(t, cfg.TLSEnabled())
}

func TestFromViperEnvOverride(t *testing.T) {
	t.Setenv("TOKEN_KEY", "from-env")
	t.Setenv("WEATHER_CACHE_TTL", "90s")
	t.Setenv("TLS_CERT", "server.crt")
	t.Setenv("TLS_KEY", "server.key")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.TokenKey)
	assert.Equal(t, 90*time.Second, cfg.WeatherCacheTTL)
	assert.True(t, cfg.TLSEnabled())
}
