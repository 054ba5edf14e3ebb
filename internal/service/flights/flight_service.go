package flights

import (
	"context"
	"errors"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/repository"
)

// ErrInvalidInput is returned when a required flight field is missing or
// the seat count is not positive.
var ErrInvalidInput = errors.New("flight_number, departure_time and a positive seat_count are required")

type FlightUseCase interface {
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
	Remove(ctx context.Context, flightNumber string) error
	Search(ctx context.Context, departureTime string) ([]domain.Flight, error)
	GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error)
}

// Cache is the flight-search cache contract, backed by redis in production.
type Cache interface {
	GetSearch(ctx context.Context, departureTime string) ([]domain.Flight, error)
	SetSearch(ctx context.Context, departureTime string, flights []domain.Flight) error
	InvalidateSearch(ctx context.Context) error
}

type CreateFlightInput struct {
	FlightNumber  string `json:"flight_number"`
	DepartureTime string `json:"departure_time"`
	SeatCount     int    `json:"seat_count"`
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	if input.FlightNumber == "" || input.DepartureTime == "" || input.SeatCount <= 0 {
		return nil, ErrInvalidInput
	}

	flight := &domain.Flight{
		FlightNumber:   input.FlightNumber,
		DepartureTime:  input.DepartureTime,
		TotalSeats:     input.SeatCount,
		AvailableSeats: input.SeatCount,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateSearch(ctx)
	}
	return flight, nil
}

func (s *FlightService) Remove(ctx context.Context, flightNumber string) error {
	if flightNumber == "" {
		return ErrInvalidInput
	}
	if err := s.repo.DeleteByNumber(ctx, flightNumber); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateSearch(ctx)
	}
	return nil
}

// Search is cache-aside: serve a cached result when one exists, otherwise
// query and populate. Cache failures fall through to the repository.
func (s *FlightService) Search(ctx context.Context, departureTime string) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSearch(ctx, departureTime); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.ListByDepartureTime(ctx, departureTime)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetSearch(ctx, departureTime, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error) {
	return s.repo.GetByNumber(ctx, flightNumber)
}

var _ FlightUseCase = (*FlightService)(nil)
