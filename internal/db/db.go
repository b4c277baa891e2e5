// Package db provides PostgreSQL database access for the job tracker:
// users, companies, job applications and unlocked achievements.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
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

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping verifies the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// EnsureSchema creates the tracker tables if they do not exist. The server
// calls this once at startup so a fresh database is usable without manual
// setup.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		password_set BOOLEAN NOT NULL DEFAULT FALSE,
		daily_goal INT NOT NULL DEFAULT 3,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS companies (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL UNIQUE,
		website TEXT,
		industry TEXT,
		company_size TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		company_id UUID REFERENCES companies(id),
		title TEXT NOT NULL,
		company_name TEXT NOT NULL DEFAULT '',
		location TEXT,
		location_type TEXT,
		description TEXT,
		salary_text TEXT,
		job_type TEXT,
		experience_level TEXT,
		skills JSONB NOT NULL DEFAULT '[]',
		source_url TEXT NOT NULL,
		source_platform TEXT NOT NULL DEFAULT 'other',
		status TEXT NOT NULL DEFAULT 'applied',
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_user_applied
		ON applications (user_id, applied_at DESC)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_applications_user_source
		ON applications (user_id, source_url)`,
	`CREATE TABLE IF NOT EXISTS achievements (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		achievement_key TEXT NOT NULL,
		unlocked_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, achievement_key)
	)`,
}
