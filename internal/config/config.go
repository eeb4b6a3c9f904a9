package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	// Server
	Port   string `env:"PORT" envDefault:"3000"`
	AppEnv string `env:"APP_ENV" envDefault:"development"` // development, production

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// Proxies whose X-Forwarded-For is honoured; empty means the peer address is the client
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Upstream backends
	AuthAPIURL      string        `env:"AUTH_API_URL,required"`
	CoreAPIURL      string        `env:"CORE_API_URL,required"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"15s"`

	// Storage
	CacheBackend      string        `env:"CACHE_BACKEND" envDefault:"memory"`      // memory, redis
	CredentialBackend string        `env:"CREDENTIAL_BACKEND" envDefault:"memory"` // memory, redis, postgres
	CredentialTTL     time.Duration `env:"CREDENTIAL_TTL" envDefault:"24h"`
	RedisAddr         string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"guardconsole"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// Session
	JWTSecret              string `env:"JWT_SECRET"` // empty: claims are read without verification
	SecureCookie           bool   `env:"SECURE_COOKIE" envDefault:"false"`
	RedirectOnUnauthorized bool   `env:"REDIRECT_ON_UNAUTHORIZED" envDefault:"false"`

	// Query layer
	QueryStaleTime  time.Duration `env:"QUERY_STALE_TIME" envDefault:"5m"`
	QueryGCTime     time.Duration `env:"QUERY_GC_TIME" envDefault:"10m"`
	QueryMaxRetries int           `env:"QUERY_MAX_RETRIES" envDefault:"2"`

	// Kafka; empty broker disables publishing and in-process consumers
	KafkaBroker  string `env:"KAFKA_BROKER"`
	KafkaGroupID string `env:"KAFKA_GROUP_ID" envDefault:"guardconsole-cache"`

	// Rate limiting; RATE_LIMIT_* applies per authenticated user, IP_RATE_LIMIT_* per client address
	RateLimitRPS     float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst   int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
	IPRateLimitRPS   float64 `env:"IP_RATE_LIMIT_RPS" envDefault:"30"`
	IPRateLimitBurst int     `env:"IP_RATE_LIMIT_BURST" envDefault:"60"`
	LoginRateRPS   float64 `env:"LOGIN_RATE_LIMIT_RPS" envDefault:"0.2"`
	LoginRateBurst int     `env:"LOGIN_RATE_LIMIT_BURST" envDefault:"5"`
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.AuthAPIURL == "" || c.CoreAPIURL == "" {
		return fmt.Errorf("AUTH_API_URL and CORE_API_URL are required")
	}
	switch c.CacheBackend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("CACHE_BACKEND must be memory or redis, got %q", c.CacheBackend)
	}
	switch c.CredentialBackend {
	case BackendMemory, BackendRedis, BackendPostgres:
	default:
		return fmt.Errorf("CREDENTIAL_BACKEND must be memory, redis or postgres, got %q", c.CredentialBackend)
	}
	if c.QueryStaleTime > c.QueryGCTime {
		return fmt.Errorf("QUERY_STALE_TIME (%s) must not exceed QUERY_GC_TIME (%s)", c.QueryStaleTime, c.QueryGCTime)
	}
	if c.QueryMaxRetries < 0 {
		return fmt.Errorf("QUERY_MAX_RETRIES must not be negative")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// NeedsRedis reports whether any store is backed by redis.
func (c Config) NeedsRedis() bool {
	return c.CacheBackend == BackendRedis || c.CredentialBackend == BackendRedis
}
