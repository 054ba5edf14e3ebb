package booking

import (
	"context"
	"log"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	Book(ctx context.Context, flightNumber, username string) (*domain.Booking, error)
	MyBookings(ctx context.Context, username string) ([]domain.BookingView, error)
	AllBookings(ctx context.Context) ([]domain.AdminBookingView, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Cache invalidation hook; booking changes seat counts, which makes cached
// search results stale.
type Cache interface {
	InvalidateSearch(ctx context.Context) error
}

type BookingService struct {
	bookings repository.BookingRepository
	flights  repository.FlightRepository
	users    repository.UserRepository
	cache    Cache
	producer Producer
	topic    string
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	users repository.UserRepository,
	cache Cache,
	producer Producer,
	topic string,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		flights:  flights,
		users:    users,
		cache:    cache,
		producer: producer,
		topic:    topic,
	}
}

// Book allocates one seat on the named flight for the named rider. The
// seat check, decrement and booking insert happen inside one repository
// transaction; concurrent calls against a flight with one seat left yield
// exactly one success and one ErrNoSeats.
func (s *BookingService) Book(ctx context.Context, flightNumber, username string) (*domain.Booking, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	flight, err := s.flights.GetByNumber(ctx, flightNumber)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		Reference: uuid.NewString(),
		FlightID:  flight.ID,
		UserID:    user.ID,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateSearch(ctx)
	}
	s.publish(ctx, "booking_created", booking, flight, user)
	return booking, nil
}

func (s *BookingService) MyBookings(ctx context.Context, username string) ([]domain.BookingView, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.bookings.ListByUser(ctx, user.ID)
}

func (s *BookingService) AllBookings(ctx context.Context) ([]domain.AdminBookingView, error) {
	return s.bookings.ListAll(ctx)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking, flight *domain.Flight, user *domain.User) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:          eventType,
		Reference:     booking.Reference,
		FlightNumber:  flight.FlightNumber,
		DepartureTime: flight.DepartureTime,
		Username:      user.Username,
		CreatedAt:     booking.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.topic, booking.Reference, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", eventType, booking.Reference, err)
	}
}

var _ BookingUseCase = (*BookingService)(nil)
