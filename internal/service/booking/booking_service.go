package booking

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Domenick1991/skyreserve/internal/domain"
	"github.com/Domenick1991/skyreserve/internal/kafka"
	"github.com/Domenick1991/skyreserve/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, id int64) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id int64) (*domain.Booking, error)
	ListForPassenger(ctx context.Context, passengerName string) ([]domain.BookingSummary, error)
}

// SearchInvalidator drops cached flight searches after a booking mutation so
// booked counts stay fresh. Nil when caching is disabled.
type SearchInvalidator interface {
	InvalidateSearches(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	validator          *InputValidator
	cache              SearchInvalidator
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type CreateBookingInput struct {
	FlightID      int64  `json:"flight_id" validate:"required,gt=0"`
	PassengerName string `json:"passenger_name" validate:"required"`
	// Hold creates the booking as Pending; it consumes no seat until
	// confirmed.
	Hold bool `json:"hold"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	cache SearchInvalidator,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		flights:      flights,
		validator:    NewInputValidator(),
		cache:        cache,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	input.PassengerName = strings.TrimSpace(input.PassengerName)
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	status := domain.BookingStatusConfirmed
	if input.Hold {
		status = domain.BookingStatusPending
	}

	booking := &domain.Booking{
		Reference:     uuid.NewString(),
		FlightID:      input.FlightID,
		PassengerName: input.PassengerName,
		Status:        status,
		CreatedAt:     time.Now(),
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.invalidateSearches(ctx)
	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) ConfirmBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	confirmed, err := s.bookings.ConfirmPending(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidateSearches(ctx)
	s.publish(ctx, "booking_confirmed", confirmed)
	return confirmed, nil
}

// CancelBooking moves a booking to Cancelled. Cancelling an already cancelled
// booking is a no-op and returns the booking unchanged.
func (s *BookingService) CancelBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled {
		return current, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	s.invalidateSearches(ctx)
	s.publish(ctx, "booking_cancelled", updated)
	return updated, nil
}

func (s *BookingService) ListForPassenger(ctx context.Context, passengerName string) ([]domain.BookingSummary, error) {
	return s.bookings.ListForPassenger(ctx, passengerName)
}

func (s *BookingService) invalidateSearches(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSearches(ctx); err != nil {
		log.Printf("WARNING: failed to invalidate flight search cache: %v", err)
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID,
		Reference:     booking.Reference,
		FlightID:      booking.FlightID,
		PassengerName: booking.PassengerName,
		Status:        string(booking.Status),
		CreatedAt:     booking.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", eventType, booking.Reference, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %s: %v", eventType, booking.Reference, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
