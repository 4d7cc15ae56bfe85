// Package config loads application configuration from the environment.
// Values are read once at startup and injected explicitly; business code
// never reads ambient globals.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries all runtime settings for the service.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// DatabaseDSN is the postgres connection string.
	DatabaseDSN string

	// RunMigrations enables AutoMigrate at startup.
	RunMigrations bool

	// JWTSecret signs access tokens.
	JWTSecret string

	// AccessTokenTTL is the lifetime of issued access tokens.
	AccessTokenTTL time.Duration

	// GoogleMapsAPIKey is served to the frontend via /google-maps-key.
	GoogleMapsAPIKey string

	// CORSOrigin is the allowed frontend origin.
	CORSOrigin string

	// RedisAddr and RedisPassword configure the optional redis client.
	RedisAddr     string
	RedisPassword string

	// CacheTTL bounds the lifetime of cached location reads.
	CacheTTL time.Duration

	// LoginRateLimit is the number of login attempts allowed per client IP
	// within LoginRateWindow. Zero disables the limiter.
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// Load builds a Config from environment variables, applying defaults.
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseDSN:      os.Getenv("DATABASE_URL"),
		RunMigrations:    os.Getenv("RUN_MIGRATIONS") == "true",
		JWTSecret:        os.Getenv("SECRET_KEY"),
		AccessTokenTTL:   time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		GoogleMapsAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		CORSOrigin:       getEnv("CORS_ORIGIN", "http://localhost:3000"),
		RedisAddr:        redisAddr(),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		CacheTTL:         time.Duration(getEnvInt("CACHE_TTL_SECONDS", 60)) * time.Second,
		LoginRateLimit:   getEnvInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow:  time.Duration(getEnvInt("LOGIN_RATE_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func redisAddr() string {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return ""
	}
	return host + ":" + getEnv("REDIS_PORT", "6379")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
