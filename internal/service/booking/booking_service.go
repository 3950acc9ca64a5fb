package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/flydreamair/internal/domain"
	"github.com/Domenick1991/flydreamair/internal/identity"
	"github.com/Domenick1991/flydreamair/internal/kafka"
	"github.com/Domenick1991/flydreamair/internal/logging"
	"github.com/Domenick1991/flydreamair/internal/metrics"
	"github.com/Domenick1991/flydreamair/internal/pricing"
	"github.com/Domenick1991/flydreamair/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrValidationFailed       = errors.New("required booking fields are missing")
	ErrInvalidInput           = errors.New("malformed booking details")
	ErrFlightUnavailable      = errors.New("selected flight is not available")
)

const (
	defaultCurrency  = "AUD"
	defaultPNRPrefix = "FLYDA"
	defaultCabin     = "Economy"

	defaultPublishTimeout = 5 * time.Second
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	identity           identity.Resolver
	producer           Producer
	validate           *validator.Validate
	bookingTopic       string
	notificationsTopic string
	currency           string
	pnrPrefix          string
	publishTimeout     time.Duration
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithCurrency(currency string) BookingServiceOption {
	return func(s *BookingService) {
		if currency != "" {
			s.currency = currency
		}
	}
}

func WithPNRPrefix(prefix string) BookingServiceOption {
	return func(s *BookingService) {
		if prefix != "" {
			s.pnrPrefix = prefix
		}
	}
}

// WithPublishTimeout bounds how long a committed booking waits on the broker.
func WithPublishTimeout(timeout time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		if timeout > 0 {
			s.publishTimeout = timeout
		}
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	resolver identity.Resolver,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:       bookings,
		flights:        flights,
		identity:       resolver,
		producer:       producer,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		bookingTopic:   bookingTopic,
		currency:       defaultCurrency,
		pnrPrefix:      defaultPNRPrefix,
		publishTimeout: defaultPublishTimeout,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking resolves the requester, validates and prices the submission,
// then writes the booking with its passenger, flight, seats, payment and
// extras in one transaction. Nothing is written unless every step succeeds.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	log := logging.FromContext(ctx)

	userID, err := s.identity.CurrentUser(ctx)
	if errors.Is(err, identity.ErrNoIdentity) {
		metrics.BookingsFailed.WithLabelValues("unauthenticated").Inc()
		return nil, ErrAuthenticationRequired
	}
	if err != nil {
		metrics.BookingsFailed.WithLabelValues("identity").Inc()
		return nil, fmt.Errorf("resolve requester: %w", err)
	}

	if input.Malformed {
		metrics.BookingsFailed.WithLabelValues("validation").Inc()
		log.Debug("Booking form could not be decoded")
		return nil, ErrInvalidInput
	}

	input.normalize()
	if err := s.validate.Struct(input); err != nil {
		metrics.BookingsFailed.WithLabelValues("validation").Inc()
		log.WithError(err).Debug("Booking submission is incomplete")
		return nil, ErrValidationFailed
	}

	sub, err := parseSubmission(input)
	if err != nil {
		metrics.BookingsFailed.WithLabelValues("validation").Inc()
		log.WithError(err).Debug("Booking submission is malformed")
		return nil, ErrInvalidInput
	}

	ref, err := s.flights.Resolve(ctx, sub.flightNo, sub.cabin, sub.departureDate)
	if errors.Is(err, repository.ErrFlightNotFound) {
		metrics.BookingsFailed.WithLabelValues("flight_unavailable").Inc()
		return nil, ErrFlightUnavailable
	}
	if err != nil {
		metrics.BookingsFailed.WithLabelValues("persistence").Inc()
		return nil, err
	}

	pnr, err := GeneratePNR(s.pnrPrefix)
	if err != nil {
		return nil, err
	}

	quote := pricing.Calculate(sub.baseFare, sub.selection)
	draft := s.buildDraft(userID, pnr, input, sub, ref, quote)

	if err := s.bookings.Create(ctx, draft); err != nil {
		metrics.BookingsFailed.WithLabelValues("persistence").Inc()
		return nil, err
	}
	metrics.BookingsCreated.Inc()

	log.WithField("booking_id", draft.Booking.ID).WithField("pnr", pnr).Info("Booking created")

	if err := s.publish(ctx, draft, quote); err != nil {
		log.WithError(err).WithField("pnr", pnr).Warn("Failed to publish booking_created event")
	}
	return &draft.Booking, nil
}

func (s *BookingService) buildDraft(userID, pnr string, in CreateBookingInput, sub *submission, ref *domain.FlightRef, quote pricing.Quote) *domain.BookingDraft {
	return &domain.BookingDraft{
		Booking: domain.Booking{
			UserID:        userID,
			BookingTypeID: sub.bookingType,
			PNR:           pnr,
		},
		Passenger: domain.Passenger{
			FullName:       sub.fullName,
			DOB:            sub.dob,
			Email:          in.Email,
			Phone:          in.Phone,
			PassportNumber: in.PassportNumber,
			Gender:         in.Gender,
		},
		Flight: domain.BookedFlight{
			FlightSupplyID: ref.FlightSupplyID,
			BookingClassID: ref.BookingClassID,
			// Add-ons are charged on the payment only.
			FareAmount:   quote.BaseFare,
			FareCurrency: s.currency,
		},
		Seats: sub.seats,
		Payment: domain.Payment{
			Amount:   quote.Total,
			Currency: s.currency,
			Method:   domain.PaymentMethodMock,
			Status:   domain.PaymentStatusSuccess,
			TxRef:    "TXN_" + uuid.NewString(),
		},
		Extras: domain.BookingExtras{
			Meal:            string(sub.selection.Meal),
			MealCost:        quote.Meal,
			Baggage:         string(sub.selection.Baggage),
			BaggageCost:     quote.Baggage,
			TravelInsurance: sub.selection.Insurance,
			InsuranceCost:   quote.Insurance,
		},
	}
}

func (s *BookingService) publish(ctx context.Context, draft *domain.BookingDraft, quote pricing.Quote) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	// Detached from the request: the booking is already committed.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	event := kafka.BookingEvent{
		Type:          kafka.EventBookingCreated,
		BookingID:     draft.Booking.ID,
		PNR:           draft.Booking.PNR,
		UserID:        draft.Booking.UserID,
		PassengerName: draft.Passenger.FullName,
		Email:         draft.Passenger.Email,
		Seats:         draft.Seats,
		Total:         quote.Total.String(),
		Currency:      draft.Payment.Currency,
		CreatedAt:     draft.Booking.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, event.PNR, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, event.PNR, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
