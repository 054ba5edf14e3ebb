package domain

import "time"

type Flight struct {
	ID             int64
	FlightNumber   string
	DepartureTime  string
	TotalSeats     int
	AvailableSeats int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
