package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Domenick1991/skyreserve/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ConfirmPending(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
	ListForPassenger(ctx context.Context, passengerName string) ([]domain.BookingSummary, error)
}

type SQLiteBookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) BookingRepository {
	return &SQLiteBookingRepository{db: db}
}

// Create inserts a booking after verifying, in the same transaction, that the
// flight exists and (for confirmed bookings) that confirmed bookings have not
// reached capacity. Pending bookings hold no seat and skip the capacity check.
func (r *SQLiteBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var capacity int
	if err := tx.QueryRowContext(ctx, `SELECT capacity FROM flights WHERE id = ?`, booking.FlightID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrFlightNotFound
		}
		return err
	}

	if booking.Status == domain.BookingStatusConfirmed {
		var confirmed int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE flight_id = ? AND status = ?`,
			booking.FlightID, domain.BookingStatusConfirmed).Scan(&confirmed); err != nil {
			return err
		}
		if confirmed >= capacity {
			return domain.ErrCapacityExceeded
		}
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO bookings (reference, flight_id, passenger_name, status, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		booking.Reference, booking.FlightID, booking.PassengerName, booking.Status,
		booking.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	booking.ID = id

	return tx.Commit()
}

func (r *SQLiteBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, reference, flight_id, passenger_name, status, created_at
		FROM bookings WHERE id = ?`, id)
	return scanBooking(row)
}

// ConfirmPending promotes a pending booking to confirmed, re-checking
// capacity in the same transaction since the held booking consumed no seat.
func (r *SQLiteBookingRepository) ConfirmPending(ctx context.Context, id int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
		SELECT id, reference, flight_id, passenger_name, status, created_at
		FROM bookings WHERE id = ?`, id)
	booking, err := scanBooking(row)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrNotPending
	}

	var capacity, confirmed int
	if err := tx.QueryRowContext(ctx, `SELECT capacity FROM flights WHERE id = ?`, booking.FlightID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE flight_id = ? AND status = ?`,
		booking.FlightID, domain.BookingStatusConfirmed).Scan(&confirmed); err != nil {
		return nil, err
	}
	if confirmed >= capacity {
		return nil, domain.ErrCapacityExceeded
	}

	if _, err := tx.ExecContext(ctx, `UPDATE bookings SET status = ? WHERE id = ?`,
		domain.BookingStatusConfirmed, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatusConfirmed
	return booking, nil
}

func (r *SQLiteBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrBookingNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *SQLiteBookingRepository) ListForPassenger(ctx context.Context, passengerName string) ([]domain.BookingSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT b.id, f.origin, f.destination, f.departure_time, f.price, b.status
		FROM bookings b
		JOIN flights f ON b.flight_id = f.id
		WHERE b.passenger_name = ?
		ORDER BY b.id`, passengerName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]domain.BookingSummary, 0)
	for rows.Next() {
		var s domain.BookingSummary
		if err := rows.Scan(&s.BookingID, &s.Origin, &s.Destination, &s.DepartureTime, &s.Price, &s.Status); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt string
	if err := row.Scan(&b.ID, &b.Reference, &b.FlightID, &b.PassengerName, &b.Status, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, err
	}
	b.CreatedAt = ts
	return &b, nil
}

var _ BookingRepository = (*SQLiteBookingRepository)(nil)
