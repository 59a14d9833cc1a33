package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Redis   RedisConfig

	// SessionTTL bounds how long a stored session outlives its last login.
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`
	// PageSize is the fixed catalog page size.
	PageSize int `env:"PAGE_SIZE, default=12"`

	ActivityWorkers int `env:"ACTIVITY_WORKERS, default=4"`
	ActivityLimit   int `env:"ACTIVITY_LIMIT,   default=200"`
}

type BackendConfig struct {
	BaseURL string        `env:"BACKEND_BASE_URL, default=http://localhost:9090/api"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT,  default=10s"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from the environment. A local .env file is applied
// first when present; real environment variables win over it.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
