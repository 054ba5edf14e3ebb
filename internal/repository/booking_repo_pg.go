package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID int64) ([]domain.BookingView, error)
	ListAll(ctx context.Context) ([]domain.AdminBookingView, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

// Create decrements the flight's seat count and inserts the booking row in
// a single transaction. The conditional UPDATE takes the flight's row lock,
// so concurrent bookings against one flight serialize around the seat check
// while different flights do not contend. When no seats remain the UPDATE
// matches nothing, the transaction is rolled back and ErrNoSeats is returned.
func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var available int
	if err := tx.QueryRow(ctx, `UPDATE flights SET available_seats = available_seats - 1, updated_at = now() WHERE id=$1 AND available_seats > 0 RETURNING available_seats`, booking.FlightID).Scan(&available); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNoSeats
		}
		return err
	}

	if err := tx.QueryRow(ctx, `INSERT INTO bookings (reference, flight_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`, booking.Reference, booking.FlightID, booking.UserID).
		Scan(&booking.ID, &booking.CreatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListByUser joins bookings to flights; bookings whose flight has been
// deleted are dropped by the inner join rather than surfaced as errors.
func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.BookingView, error) {
	rows, err := r.db.Query(ctx, `SELECT f.flight_number, f.departure_time
		FROM bookings b
		JOIN flights f ON f.id = b.flight_id
		WHERE b.user_id=$1
		ORDER BY b.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]domain.BookingView, 0)
	for rows.Next() {
		var v domain.BookingView
		if err := rows.Scan(&v.FlightNumber, &v.DepartureTime); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// ListAll is the admin audit view. A missing user row degrades to the
// sentinel username instead of failing the whole query.
func (r *PGBookingRepository) ListAll(ctx context.Context) ([]domain.AdminBookingView, error) {
	rows, err := r.db.Query(ctx, `SELECT f.flight_number, f.departure_time, b.user_id, COALESCE(u.username, 'User not found')
		FROM bookings b
		JOIN flights f ON f.id = b.flight_id
		LEFT JOIN users u ON u.id = b.user_id
		ORDER BY b.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]domain.AdminBookingView, 0)
	for rows.Next() {
		var v domain.AdminBookingView
		if err := rows.Scan(&v.FlightNumber, &v.DepartureTime, &v.UserID, &v.Username); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
