package domain

import (
	"strconv"
	"strings"
)

// Flight is a scheduled route with fixed capacity and price. Flights are
// seeded at store initialization and read-only afterwards; BookedCount is
// derived from confirmed bookings at query time and never stored.
type Flight struct {
	ID            int64   `json:"id"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureTime string  `json:"departure_time"`
	Price         float64 `json:"price"`
	Capacity      int     `json:"capacity"`
	BookedCount   int     `json:"booked_count"`
}

func (f Flight) AvailableSeats() int {
	return f.Capacity - f.BookedCount
}

func (f Flight) IsAvailable() bool {
	return f.AvailableSeats() > 0
}

// FormattedPrice renders the price as a currency string with two decimals
// and thousands separators, e.g. "$1,234.50".
func (f Flight) FormattedPrice() string {
	s := strconv.FormatFloat(f.Price, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	b.WriteByte('$')
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteString(frac)
	return b.String()
}
