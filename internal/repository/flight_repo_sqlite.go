package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Domenick1991/skyreserve/internal/domain"
)

type FlightRepository interface {
	Search(ctx context.Context, origin, destination string) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type SQLiteFlightRepository struct {
	db *sql.DB
}

func NewFlightRepository(db *sql.DB) FlightRepository {
	return &SQLiteFlightRepository{db: db}
}

// Search returns flights whose origin and destination contain the respective
// filters as case-sensitive substrings (empty filter matches everything),
// annotated with the number of confirmed bookings. instr() is used instead of
// LIKE because SQLite LIKE is case-insensitive for ASCII. Ordered by id for
// reproducibility.
func (r *SQLiteFlightRepository) Search(ctx context.Context, origin, destination string) ([]domain.Flight, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT f.id, f.origin, f.destination, f.departure_time, f.price, f.capacity, COALESCE(b.booked_count, 0)
		FROM flights f
		LEFT JOIN (
			SELECT flight_id, COUNT(*) AS booked_count
			FROM bookings
			WHERE status = ?
			GROUP BY flight_id
		) b ON f.id = b.flight_id
		WHERE (? = '' OR instr(f.origin, ?) > 0)
		  AND (? = '' OR instr(f.destination, ?) > 0)
		ORDER BY f.id`,
		domain.BookingStatusConfirmed, origin, origin, destination, destination)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.Origin, &f.Destination, &f.DepartureTime, &f.Price, &f.Capacity, &f.BookedCount); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *SQLiteFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT f.id, f.origin, f.destination, f.departure_time, f.price, f.capacity,
			(SELECT COUNT(*) FROM bookings WHERE flight_id = f.id AND status = ?)
		FROM flights f
		WHERE f.id = ?`,
		domain.BookingStatusConfirmed, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.Origin, &f.Destination, &f.DepartureTime, &f.Price, &f.Capacity, &f.BookedCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

var _ FlightRepository = (*SQLiteFlightRepository)(nil)
