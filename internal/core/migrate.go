// AngelaMos | 2026
// migrate.go

package core

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL,
		name          TEXT NOT NULL DEFAULT '',
		photo_url     TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'student',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)`,
	`CREATE INDEX IF NOT EXISTS users_role_idx ON users (role)`,

	`CREATE TABLE IF NOT EXISTS classes (
		id              UUID PRIMARY KEY,
		name            TEXT NOT NULL,
		image_url       TEXT NOT NULL DEFAULT '',
		instructor_name TEXT NOT NULL DEFAULT '',
		email           TEXT NOT NULL,
		price_cents     BIGINT NOT NULL DEFAULT 0,
		available_seats INTEGER NOT NULL DEFAULT 0 CHECK (available_seats >= 0),
		enrolled        INTEGER NOT NULL DEFAULT 0 CHECK (enrolled >= 0),
		status          TEXT NOT NULL DEFAULT 'pending',
		feedback        TEXT,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS classes_email_idx ON classes (email)`,

	`CREATE TABLE IF NOT EXISTS carts (
		id          UUID PRIMARY KEY,
		email       TEXT NOT NULL,
		class_id    UUID NOT NULL,
		class_name  TEXT NOT NULL DEFAULT '',
		image_url   TEXT NOT NULL DEFAULT '',
		price_cents BIGINT NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS carts_email_idx ON carts (email)`,

	`CREATE TABLE IF NOT EXISTS payments (
		id             UUID PRIMARY KEY,
		email          TEXT NOT NULL,
		class_id       UUID NOT NULL,
		cart_id        UUID NOT NULL,
		class_name     TEXT NOT NULL DEFAULT '',
		amount_cents   BIGINT NOT NULL,
		transaction_id TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS payments_email_idx ON payments (email)`,
}

// Migrate creates any missing tables and indexes. Every statement is idempotent.
func (d *Database) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := d.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
