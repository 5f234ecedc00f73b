package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/skyreserve/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("notify %s: booking %s (%s) for flight %d is now %s\n",
		event.PassengerName, event.Reference, event.Type, event.FlightID, event.Status)
	return nil
}
