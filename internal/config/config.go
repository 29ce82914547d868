package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr string
	TLSCert  string
	TLSKey   string

	TokenKey    string
	DatabaseURL string

	RedisAddr       string
	WeatherCacheTTL time.Duration
	OpenMeteoURL    string

	GeminiAPIKey string
	GeminiModel  string

	LogLevel  string
	LogFormat string

	RateLimitRPS   float64
	RateLimitBurst int
}

var ErrNoTokenKey = errors.New("TOKEN_KEY environment variable is not set")

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("WEATHER_CACHE_TTL", "10m")
	v.SetDefault("OPEN_METEO_URL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	return v
}

func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		TLSCert:         v.GetString("TLS_CERT"),
		TLSKey:          v.GetString("TLS_KEY"),
		TokenKey:        v.GetString("TOKEN_KEY"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		WeatherCacheTTL: v.GetDuration("WEATHER_CACHE_TTL"),
		OpenMeteoURL:    v.GetString("OPEN_METEO_URL"),
		GeminiAPIKey:    v.GetString("GEMINI_API_KEY"),
		GeminiModel:     v.GetString("GEMINI_MODEL"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		RateLimitRPS:    v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:  v.GetInt("RATE_LIMIT_BURST"),
	}
	if cfg.TokenKey == "" {
		return nil, ErrNoTokenKey
	}
	if cfg.WeatherCacheTTL <= 0 {
		cfg.WeatherCacheTTL = 10 * time.Minute
	}
	if cfg.RateLimitRPS <= 0 {
		cfg.RateLimitRPS = 5
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = 10
	}
	return cfg, nil
}

// TLSEnabled reports whether both halves of the key pair are configured.
func (c *Config) TLSEnabled() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}
