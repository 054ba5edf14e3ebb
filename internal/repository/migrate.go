package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgerrUniqueViolation is the postgres error code for unique constraint
// violations, used to map duplicate flights and usernames to sentinels.
const pgerrUniqueViolation = "23505"

// Migrate creates the schema on startup when it does not exist yet.
// Bookings carry no foreign keys: deleting a flight must not be blocked
// by existing bookings, which are dropped on the read side instead.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS flights (
			id              BIGSERIAL PRIMARY KEY,
			flight_number   TEXT NOT NULL UNIQUE,
			departure_time  TEXT NOT NULL,
			total_seats     INT NOT NULL CHECK (total_seats > 0),
			available_seats INT NOT NULL CHECK (available_seats >= 0),
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id         BIGSERIAL PRIMARY KEY,
			reference  TEXT NOT NULL UNIQUE,
			flight_id  BIGINT NOT NULL,
			user_id    BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_flights_departure_time ON flights (departure_time)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings (user_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
