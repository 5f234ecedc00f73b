package domain

import "time"

type BookingStatus string

// Status values are stored as-is in the bookings table. Only Confirmed
// bookings count toward flight occupancy; Pending bookings hold no seat
// until confirmed.
const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusPending   BookingStatus = "Pending"
)

type Booking struct {
	ID            int64         `json:"id"`
	Reference     string        `json:"reference"`
	FlightID      int64         `json:"flight_id"`
	PassengerName string        `json:"passenger_name"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

func (b Booking) IsActive() bool {
	return b.Status == BookingStatusConfirmed
}

// Cancel is idempotent: cancelling an already cancelled booking is a no-op.
func (b *Booking) Cancel() {
	b.Status = BookingStatusCancelled
}

// BookingSummary is a booking joined to its flight, as listed for a passenger.
type BookingSummary struct {
	BookingID     int64         `json:"booking_id"`
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	DepartureTime string        `json:"departure_time"`
	Price         float64       `json:"price"`
	Status        BookingStatus `json:"status"`
}
