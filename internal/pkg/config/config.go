package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string        `env:"MONGO,         default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=anvaya"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

// IsDevelopment reports whether human-readable logs should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads a local .env file when present, then environment variables
// using go-envconfig.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Sprintf("config: failed to read .env: %v", err))
	}

	cfg, err := load(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
