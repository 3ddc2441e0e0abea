package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable the backend reads from the environment.
// Defaults match the docker compose development stack.
type Config struct {
	Addr string `env:"WAYFARER_ADDR" envDefault:"0.0.0.0:8000"`

	DBHost     string `env:"WAYFARER_DB_HOST" envDefault:"db"`
	DBPort     int    `env:"WAYFARER_DB_PORT" envDefault:"5432"`
	DBUser     string `env:"WAYFARER_DB_USER" envDefault:"myuser"`
	DBPassword string `env:"WAYFARER_DB_PASSWORD" envDefault:"mypassword"`
	DBName     string `env:"WAYFARER_DB_NAME" envDefault:"mydatabase"`

	// Readiness gate tuning. The deployment default is five probes five
	// seconds apart before giving up on PostgreSQL.
	DBWaitAttempts int           `env:"WAYFARER_DB_WAIT_ATTEMPTS" envDefault:"5"`
	DBWaitInterval time.Duration `env:"WAYFARER_DB_WAIT_INTERVAL" envDefault:"5s"`

	MongoURI string `env:"WAYFARER_MONGO_URI" envDefault:"mongodb://mongo:27017"`
	MongoDB  string `env:"WAYFARER_MONGO_DB" envDefault:"mydatabase"`

	RedisAddr string `env:"WAYFARER_REDIS_ADDR" envDefault:"redis:6379"`
	RedisDB   int    `env:"WAYFARER_REDIS_DB" envDefault:"0"`

	// Interim static bearer token shared by all clients.
	StaticToken string `env:"WAYFARER_STATIC_TOKEN" envDefault:"SOYUNTOKEN"`

	SessionTTL time.Duration `env:"WAYFARER_SESSION_TTL" envDefault:"10h"`

	// Popular-post cache: posts with at least CacheMinReactions reactions
	// are stored in Redis for PostCacheTTL. The server refreshes the set
	// every CacheRefreshInterval (0 disables the background refresher).
	PostCacheTTL         time.Duration `env:"WAYFARER_POST_CACHE_TTL" envDefault:"24h"`
	CacheMinReactions    int           `env:"WAYFARER_CACHE_MIN_REACTIONS" envDefault:"5"`
	CacheRefreshInterval time.Duration `env:"WAYFARER_CACHE_REFRESH_INTERVAL" envDefault:"1h"`

	// Entrypoint-only settings: the test command run after the readiness
	// gate passes and the server binary that replaces the entrypoint.
	TestCommand  string `env:"WAYFARER_TEST_CMD" envDefault:"go test ./... -coverprofile=coverage.out -covermode=atomic"`
	ServerBinary string `env:"WAYFARER_SERVER_BINARY" envDefault:"/app/wayfarer"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.DBWaitAttempts < 1 {
		return nil, fmt.Errorf("WAYFARER_DB_WAIT_ATTEMPTS must be at least 1, got %d", cfg.DBWaitAttempts)
	}
	if cfg.DBWaitInterval <= 0 {
		return nil, fmt.Errorf("WAYFARER_DB_WAIT_INTERVAL must be positive, got %s", cfg.DBWaitInterval)
	}
	return &cfg, nil
}

// PostgresDSN builds the connection string used by both the readiness
// probe and the GORM handle.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
