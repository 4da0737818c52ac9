// Package db provides PostgreSQL persistence for matched jobs.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the jobs table if it does not exist. Identity is the
// case-insensitive title+company pair; the unique index enforces it.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id           BIGSERIAL PRIMARY KEY,
			title        TEXT NOT NULL,
			company      TEXT NOT NULL,
			location     TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			requirements TEXT NOT NULL DEFAULT '',
			salary       TEXT,
			job_type     TEXT NOT NULL DEFAULT 'full-time',
			remote       BOOLEAN NOT NULL DEFAULT FALSE,
			source       TEXT NOT NULL,
			source_url   TEXT NOT NULL DEFAULT '',
			posted_date  TIMESTAMPTZ NOT NULL,
			skills       JSONB NOT NULL DEFAULT '[]',
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE UNIQUE INDEX IF NOT EXISTS jobs_identity_idx
			ON jobs (LOWER(title), LOWER(company));
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
