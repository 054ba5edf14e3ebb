package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	DeleteByNumber(ctx context.Context, flightNumber string) error
	GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error)
	ListByDepartureTime(ctx context.Context, departureTime string) ([]domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	err := r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, departure_time, total_seats, available_seats)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`, flight.FlightNumber, flight.DepartureTime, flight.TotalSeats, flight.AvailableSeats).
		Scan(&flight.ID, &flight.CreatedAt, &flight.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrUniqueViolation {
			return ErrDuplicateFlight
		}
		return err
	}
	return nil
}

func (r *PGFlightRepository) DeleteByNumber(ctx context.Context, flightNumber string) error {
	// Bookings referencing the flight are deliberately left in place;
	// read-side joins drop them.
	res, err := r.db.Exec(ctx, `DELETE FROM flights WHERE flight_number=$1`, flightNumber)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrFlightNotFound
	}
	return nil
}

func (r *PGFlightRepository) GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT id, flight_number, departure_time, total_seats, available_seats, created_at, updated_at FROM flights WHERE flight_number=$1`, flightNumber)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightNumber, &f.DepartureTime, &f.TotalSeats, &f.AvailableSeats, &f.CreatedAt, &f.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) ListByDepartureTime(ctx context.Context, departureTime string) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT id, flight_number, departure_time, total_seats, available_seats, created_at, updated_at FROM flights WHERE departure_time=$1 ORDER BY flight_number`, departureTime)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.FlightNumber, &f.DepartureTime, &f.TotalSeats, &f.AvailableSeats, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
