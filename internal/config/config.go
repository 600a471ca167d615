package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime setting for the client. Values come from the
// environment; cmd/jobctl loads a .env file first in development.
type Config struct {
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:8080"`
	Env        string `env:"ENV,          default=development"`
	LogLevel   string `env:"LOG_LEVEL,    default=info"`
	LogPretty  bool   `env:"LOG_PRETTY,   default=true"`

	// HTTPTimeout bounds every gateway round trip. Zero disables the bound.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT, default=30s"`

	Session SessionConfig
	Redis   RedisConfig
}

// SessionConfig selects where the durable session mirror lives.
type SessionConfig struct {
	// Backend is one of: file, redis, memory.
	Backend string `env:"SESSION_BACKEND, default=file"`
	// File is the session file path. Empty means a default location under
	// the user config dir.
	File string `env:"SESSION_FILE"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	// Key is the single session key when the redis backend is selected.
	Key string `env:"REDIS_SESSION_KEY, default=jobboard:session"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
