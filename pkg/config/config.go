// Package config reads process configuration from the environment. Secrets
// come from .env in local runs (loaded by main via godotenv) and from the
// real environment everywhere else.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the API server needs at startup.
type Config struct {
	Env       string
	Port      string
	LogLevel  string
	LogFormat string

	// Financial data provider (FMP-compatible REST API).
	ProviderBaseURL string
	ProviderAPIKey  string
	ProviderRPS     float64 // request rate limit toward the provider
	CacheTTL        time.Duration

	// AI scoring. When disabled the heuristic scorer serves all requests.
	AIEnabled      bool
	ModelsConfig   string // path to config/models.yaml
	SnapshotDir    string // file fallback for the statement snapshot store
	DatabaseURL    string // optional Postgres for the snapshot store
	RedisAddr      string // optional Redis for the TTL cache
	RedisPassword  string
	RedisDB        int
}

// Load reads the environment with sensible defaults for local development.
func Load() *Config {
	return &Config{
		Env:       envOr("APP_ENV", "development"),
		Port:      envOr("PORT", "8080"),
		LogLevel:  envOr("LOG_LEVEL", "info"),
		LogFormat: envOr("LOG_FORMAT", "console"),

		ProviderBaseURL: envOr("PROVIDER_BASE_URL", "https://financialmodelingprep.com/api/v3"),
		ProviderAPIKey:  os.Getenv("PROVIDER_API_KEY"),
		ProviderRPS:     envFloat("PROVIDER_RPS", 4),
		CacheTTL:        envDuration("CACHE_TTL", time.Hour),

		AIEnabled:     envBool("AI_ENABLED", true),
		ModelsConfig:  envOr("MODELS_CONFIG", "config/models.yaml"),
		SnapshotDir:   envOr("SNAPSHOT_DIR", ""),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
