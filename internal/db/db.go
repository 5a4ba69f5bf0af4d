// Package db provides PostgreSQL persistence for the ChalkBox marketplace:
// users and their badges, jobs, workshops and the interactions between them.
package db

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Connection retry defaults. The database container often comes up a few
// seconds after the service does.
const (
	DefaultConnectAttempts = 5
	DefaultConnectDelay    = 500 * time.Millisecond
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

type connectOptions struct {
	attempts uint
	delay    time.Duration
	logger   *slog.Logger
}

// ConnectOption customizes Connect.
type ConnectOption func(*connectOptions)

// WithConnectAttempts sets how many times the initial ping is tried.
func WithConnectAttempts(n uint) ConnectOption {
	return func(o *connectOptions) {
		if n > 0 {
			o.attempts = n
		}
	}
}

// WithConnectDelay sets the base delay between ping attempts.
func WithConnectDelay(d time.Duration) ConnectOption {
	return func(o *connectOptions) { o.delay = d }
}

// WithLogger sets the logger used to report retries.
func WithLogger(logger *slog.Logger) ConnectOption {
	return func(o *connectOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Connect establishes a connection pool to the database.
// The first ping is retried with backoff until it succeeds, the attempts are
// exhausted, or ctx is done.
func Connect(ctx context.Context, databaseURL string, opts ...ConnectOption) (*DB, error) {
	o := connectOptions{
		attempts: DefaultConnectAttempts,
		delay:    DefaultConnectDelay,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = retry.Do(
		func() error { return pool.Ping(ctx) },
		retry.Context(ctx),
		retry.Attempts(o.attempts),
		retry.Delay(o.delay),
		retry.MaxJitter(o.delay/2),
		retry.OnRetry(func(n uint, err error) {
			o.logger.Warn("database not ready, retrying", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate applies the embedded schema. It is safe to run repeatedly.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Schema returns the DDL applied by Migrate.
func Schema() string {
	return schemaSQL
}
