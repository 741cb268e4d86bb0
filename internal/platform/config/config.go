package config

import (
	"os"
	"time"
)

// Config captures everything main needs to wire the service.
type Config struct {
	Addr string

	// RegistryBaseURL points at the CNPJ registry API. Lookups are bounded
	// by RegistryTimeout; successful results are cached for RegistryCacheTTL.
	RegistryBaseURL  string
	RegistryTimeout  time.Duration
	RegistryCacheTTL time.Duration

	// JWTSigningKey enables Bearer auth on the validation endpoints when set.
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	Redis    RedisConfig
	Postgres PostgresConfig
}

// RedisConfig controls the optional Redis-backed registry cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig controls the optional durable report archive.
type PostgresConfig struct {
	DSN string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:             envOr("ESTAGIO_ADDR", ":8080"),
		RegistryBaseURL:  envOr("REGISTRY_BASE_URL", "https://minhareceita.org"),
		RegistryTimeout:  durationOr("REGISTRY_TIMEOUT", 10*time.Second),
		RegistryCacheTTL: durationOr("REGISTRY_CACHE_TTL", 5*time.Minute),
		JWTSigningKey:    os.Getenv("JWT_SIGNING_KEY"),
		JWTIssuer:        envOr("JWT_ISSUER", "estagio-gateway"),
		JWTAudience:      envOr("JWT_AUDIENCE", "estagio-api"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Postgres: PostgresConfig{
			DSN: os.Getenv("POSTGRES_DSN"),
		},
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
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
