package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/skyreserve/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightRepository_Search_NoFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewFlightRepository(db)
	ctx := context.Background()

	flights, err := repo.Search(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, flights, 5)

	for i, f := range flights {
		assert.Equal(t, int64(i+1), f.ID)
		assert.Equal(t, 0, f.BookedCount)
	}
}

func TestFlightRepository_Search_OriginFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewFlightRepository(db)
	ctx := context.Background()

	flights, err := repo.Search(ctx, "New York", "")
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "New York", flights[0].Origin)
	assert.Equal(t, "London", flights[0].Destination)
}

func TestFlightRepository_Search_CaseSensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewFlightRepository(db)
	ctx := context.Background()

	flights, err := repo.Search(ctx, "new york", "")
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestFlightRepository_Search_SubstringAndBothFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewFlightRepository(db)
	ctx := context.Background()

	flights, err := repo.Search(ctx, "Du", "York")
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "Dubai", flights[0].Origin)
	assert.Equal(t, "New York", flights[0].Destination)
}

func TestFlightRepository_Search_CountsOnlyConfirmedBookings(t *testing.T) {
	db := newTestDB(t)
	flightRepo := NewFlightRepository(db)
	bookingRepo := NewBookingRepository(db)
	ctx := context.Background()

	for _, status := range []domain.BookingStatus{
		domain.BookingStatusConfirmed,
		domain.BookingStatusConfirmed,
		domain.BookingStatusPending,
	} {
		b := &domain.Booking{
			Reference:     uuid.NewString(),
			FlightID:      1,
			PassengerName: "Alice",
			Status:        status,
			CreatedAt:     time.Now(),
		}
		require.NoError(t, bookingRepo.Create(ctx, b))
	}

	cancelled := &domain.Booking{
		Reference:     uuid.NewString(),
		FlightID:      1,
		PassengerName: "Bob",
		Status:        domain.BookingStatusConfirmed,
		CreatedAt:     time.Now(),
	}
	require.NoError(t, bookingRepo.Create(ctx, cancelled))
	_, err := bookingRepo.UpdateStatus(ctx, cancelled.ID, domain.BookingStatusCancelled)
	require.NoError(t, err)

	flights, err := flightRepo.Search(ctx, "New York", "London")
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, 2, flights[0].BookedCount)
	assert.Equal(t, flights[0].Capacity-2, flights[0].AvailableSeats())
}

func TestFlightRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewFlightRepository(db)
	ctx := context.Background()

	flight, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Paris", flight.Origin)
	assert.Equal(t, "Tokyo", flight.Destination)
	assert.Equal(t, 850.0, flight.Price)
	assert.Equal(t, 200, flight.Capacity)
}

func TestFlightRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewFlightRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}
