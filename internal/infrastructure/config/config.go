// Package config loads process configuration from the environment.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// BcryptCost is the work factor for stored password hashes.
	BcryptCost int `env:"BCRYPT_COST, default=10"`
	// DefaultResultLimit bounds list reads that pass no bound.
	DefaultResultLimit int `env:"DEFAULT_RESULT_LIMIT, default=10"`

	SQL   SQLConfig
	Redis RedisConfig
	Mongo MongoConfig
	Audit AuditConfig
}

type SQLConfig struct {
	Driver          string        `env:"DB_DRIVER,            default=mysql"`
	DSN             string        `env:"DB_DSN,               default=catalog:catalog@tcp(localhost:3306)/catalog"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,    default=20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,    default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=30m"`
	Migrate         bool          `env:"DB_MIGRATE,           default=true"`
}

type RedisConfig struct {
	Enabled  bool          `env:"CACHE_ENABLED,  default=true"`
	Addr     string        `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,       default=0"`
	TTL      time.Duration `env:"CACHE_TTL,      default=30s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=people_catalog"`
}

type AuditConfig struct {
	Enabled bool `env:"AUDIT_ENABLED, default=true"`
	Workers int  `env:"AUDIT_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.SQL.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER %q is not one of mysql, postgres, sqlite", c.SQL.Driver)
	}
	if c.SQL.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if c.DefaultResultLimit <= 0 {
		return fmt.Errorf("DEFAULT_RESULT_LIMIT must be greater than zero")
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
