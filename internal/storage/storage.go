// Package storage opens the optional relational database used to log
// estimates and contact submissions.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// ErrUnsupportedDriver is returned by Open for unknown drivers.
var ErrUnsupportedDriver = errors.New("storage: unsupported driver")

// Config selects the database driver and connection string.
type Config struct {
	Driver string
	DSN    string
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, cfg Config) (*bun.DB, error) {
	driver := normalizeDriver(cfg.Driver)
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("storage: dsn is required")
	}

	var (
		sqldb *sql.DB
		db    *bun.DB
		err   error
	)
	switch driver {
	case DriverSQLite:
		sqldb, err = sql.Open(DriverSQLite, dsn)
		if err != nil {
			return nil, fmt.Errorf("storage: open sqlite: %w", err)
		}
		// a shared in-memory database disappears once its last connection closes
		sqldb.SetMaxOpenConns(1)
		db = bun.NewDB(sqldb, sqlitedialect.New())
	case DriverPostgres:
		sqldb, err = sql.Open(DriverPostgres, dsn)
		if err != nil {
			return nil, fmt.Errorf("storage: open postgres: %w", err)
		}
		db = bun.NewDB(sqldb, pgdialect.New())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: ping %s: %w", driver, err)
	}
	return db, nil
}

// Migrate creates the tables backing the supplied models when missing.
func Migrate(ctx context.Context, db *bun.DB, models ...any) error {
	if db == nil {
		return errors.New("storage: migrate requires a database")
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("storage: create table for %T: %w", model, err)
		}
	}
	return nil
}

func normalizeDriver(driver string) string {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite", DriverSQLite:
		return DriverSQLite
	case "postgres", "postgresql", "pg":
		return DriverPostgres
	default:
		return strings.ToLower(strings.TrimSpace(driver))
	}
}
