package domain

import "time"

type Booking struct {
	ID        int64
	Reference string
	FlightID  int64
	UserID    int64
	CreatedAt time.Time
}

// BookingView is a rider-facing projection of a booking joined to its flight.
type BookingView struct {
	FlightNumber  string `json:"flight_number"`
	DepartureTime string `json:"departure_time"`
}

// AdminBookingView additionally carries the rider identity. Username holds
// the sentinel "User not found" when the user row is gone.
type AdminBookingView struct {
	FlightNumber  string `json:"flight_number"`
	DepartureTime string `json:"departure_time"`
	UserID        int64  `json:"user_id"`
	Username      string `json:"username"`
}
