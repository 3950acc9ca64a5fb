// Package email delivers booking confirmation messages. Delivery is a
// structured log line until a mail provider is configured.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/flydreamair/internal/kafka"
	"github.com/sirupsen/logrus"
)

type Sender struct {
	log logrus.FieldLogger
}

func NewSender(log logrus.FieldLogger) *Sender {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.Email == "" {
		return fmt.Errorf("booking %s has no recipient", event.PNR)
	}

	s.log.WithFields(logrus.Fields{
		"to":         event.Email,
		"booking_id": event.BookingID,
		"pnr":        event.PNR,
		"subject":    Subject(event),
	}).Info(Body(event))
	return nil
}

func Subject(event kafka.BookingEvent) string {
	return fmt.Sprintf("Your FlyDreamAir booking %s is confirmed", event.PNR)
}

func Body(event kafka.BookingEvent) string {
	seats := "none"
	if len(event.Seats) > 0 {
		seats = strings.Join(event.Seats, ", ")
	}
	return fmt.Sprintf("Dear %s, booking %s is confirmed. Seats: %s. Total charged: %s %s.",
		event.PassengerName, event.PNR, seats, event.Total, event.Currency)
}
