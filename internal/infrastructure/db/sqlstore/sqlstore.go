// Package sqlstore is the relational store gateway. It opens the configured
// backend through gorm and executes parameterized statements; it owns no
// business rules beyond translating driver errors into domain errors.
package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultTimeout = 10 * time.Second

// Supported drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config captures the settings required to reach the relational backend.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// Migrate applies the schema DDL after connecting.
	Migrate bool
	Timeout time.Duration
}

// Store wraps the gorm handle shared by the repositories.
type Store struct {
	db     *gorm.DB
	driver string
}

// Open connects to the backend, applies pool limits, verifies connectivity
// with a ping and, when requested, creates the schema.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sql ping: %w", err)
	}

	s := &Store{db: db, driver: cfg.Driver}

	if cfg.Migrate {
		if err := s.Migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}
	return s, nil
}

func dialectorFor(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverMySQL:
		mcfg, err := mysql.ParseDSN(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("mysql dsn: %w", err)
		}
		mcfg.ParseTime = true
		mcfg.Loc = time.UTC
		return gormmysql.Open(mcfg.FormatDSN()), nil
	case DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	case DriverSQLite:
		return sqlite.Open(sqliteDSN(cfg.DSN)), nil
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", cfg.Driver)
	}
}

// Migrate creates the tables of the configured dialect if they are missing.
func (s *Store) Migrate(ctx context.Context) error {
	stmts, ok := schema[s.driver]
	if !ok {
		return fmt.Errorf("no schema for driver %q", s.driver)
	}
	for _, stmt := range stmts {
		if err := s.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Ping reports whether the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// sqliteDSN turns on foreign key enforcement through the DSN so the driver
// applies it to every pooled connection, not only the first one.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=1"
}
