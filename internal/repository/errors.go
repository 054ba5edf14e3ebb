// Package repository holds the pgx-backed storage layer. The sentinel
// errors below are shared across repositories so that services and
// handlers can distinguish failure scenarios with errors.Is instead of
// matching on driver-specific error strings.
package repository

import "errors"

// ErrFlightNotFound is returned when a flight number or id does not exist.
var ErrFlightNotFound = errors.New("flight not found")

// ErrUserNotFound is returned when a username or user id does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateFlight is returned when creating a flight whose number is
// already taken.
var ErrDuplicateFlight = errors.New("flight number already exists")

// ErrDuplicateUser is returned when signing up with a taken username.
var ErrDuplicateUser = errors.New("username already exists")

// ErrNoSeats is returned by the booking transaction when the flight has
// no remaining seats. The transaction is rolled back; nothing is written.
var ErrNoSeats = errors.New("no available seats")
