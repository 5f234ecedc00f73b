package domain

import "errors"

var (
	ErrFlightNotFound = errors.New("flight not found")

	ErrBookingNotFound = errors.New("booking not found")

	ErrCapacityExceeded = errors.New("flight is fully booked")

	ErrNotPending = errors.New("booking is not pending")
)
