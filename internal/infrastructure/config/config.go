package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all environment-driven settings. JWTSecret has no default on
// purpose: the process must not start without one.
type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	SQLitePath   string `env:"SQLITE_PATH,    default=records.db"`
	AuditLogPath string `env:"AUDIT_LOG_PATH, default=audit.log"`

	JWTSecret          string `env:"JWT_SECRET, required"`
	JWTAlgorithm       string `env:"JWT_ALGORITHM, default=HS256"`
	TokenExpireMinutes int    `env:"TOKEN_EXPIRE_MINUTES, default=30"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
