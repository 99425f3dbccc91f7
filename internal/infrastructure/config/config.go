package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AccessSecret and ResetSecret sign the two token kinds and must be
	// distinct; a shared secret would collapse the capability boundary
	// between logins and password resets.
	AccessSecret string `env:"ACCESS_TOKEN_SECRET"`
	ResetSecret  string `env:"RESET_TOKEN_SECRET"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bloghive"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.AccessSecret == "" {
		return errors.New("config: ACCESS_TOKEN_SECRET is required")
	}
	if c.ResetSecret == "" {
		return errors.New("config: RESET_TOKEN_SECRET is required")
	}
	if c.AccessSecret == c.ResetSecret {
		return errors.New("config: ACCESS_TOKEN_SECRET and RESET_TOKEN_SECRET must differ")
	}
	return nil
}
