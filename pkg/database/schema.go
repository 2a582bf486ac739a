package database

import (
	"context"
	"fmt"
)

// ExclusionViolationCode is the Postgres error code raised when the
// bookings_no_overlap constraint rejects an insert. The application-level
// overlap pre-check is best effort only; this constraint is the
// authoritative guard against concurrent double-booking.
const ExclusionViolationCode = "23P01"

var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,

	`CREATE TABLE IF NOT EXISTS users (
		id         UUID PRIMARY KEY,
		username   TEXT NOT NULL UNIQUE,
		email      TEXT NOT NULL UNIQUE,
		password   TEXT NOT NULL,
		role       TEXT NOT NULL DEFAULT 'user',
		is_active  BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id         UUID PRIMARY KEY,
		user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token      UUID NOT NULL UNIQUE,
		user_agent TEXT,
		ip_address TEXT,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS courts (
		id                   UUID PRIMARY KEY,
		name                 TEXT NOT NULL,
		address              TEXT NOT NULL,
		description          TEXT,
		image_url            TEXT,
		latitude             DOUBLE PRECISION NOT NULL,
		longitude            DOUBLE PRECISION NOT NULL,
		features             JSONB NOT NULL DEFAULT '[]',
		opening_hours        JSONB NOT NULL DEFAULT '{}',
		status               TEXT NOT NULL DEFAULT 'pending',
		reservations_enabled BOOLEAN NOT NULL DEFAULT TRUE,
		submitted_by         UUID REFERENCES users(id) ON DELETE SET NULL,
		created_at           TIMESTAMPTZ NOT NULL,
		updated_at           TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id         UUID PRIMARY KEY,
		court_id   UUID NOT NULL REFERENCES courts(id) ON DELETE CASCADE,
		user_id    UUID REFERENCES users(id) ON DELETE SET NULL,
		start_time TIMESTAMPTZ NOT NULL,
		end_time   TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CHECK (start_time < end_time),
		CONSTRAINT bookings_no_overlap EXCLUDE USING gist (
			court_id WITH =,
			tstzrange(start_time, end_time) WITH &&
		)
	)`,

	`CREATE TABLE IF NOT EXISTS daily_limits (
		id         UUID PRIMARY KEY,
		user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		day        DATE NOT NULL,
		kind       TEXT NOT NULL,
		count      INTEGER NOT NULL DEFAULT 0 CHECK (count >= 0),
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE (user_id, day, kind)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_bookings_court ON bookings (court_id, start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id, start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_courts_status ON courts (status)`,
}

// Migrate applies the schema statements in order. Statements are
// idempotent so a restart against an existing database is safe.
func Migrate(ctx context.Context, db PgxIface) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("exec schema statement: %w", err)
		}
	}
	return nil
}
