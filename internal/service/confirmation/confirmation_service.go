package confirmation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/flydreamair/internal/domain"
	"github.com/Domenick1991/flydreamair/internal/logging"
	"github.com/Domenick1991/flydreamair/internal/repository"
)

var (
	ErrInvalidID = errors.New("invalid booking id")
	ErrNotFound  = errors.New("booking not found")
)

type ConfirmationUseCase interface {
	GetConfirmation(ctx context.Context, rawID string) (*domain.Confirmation, error)
	Warm(ctx context.Context, bookingID int64) error
}

type Cache interface {
	GetConfirmation(ctx context.Context, bookingID int64) (*domain.Confirmation, error)
	SetConfirmation(ctx context.Context, bookingID int64, view *domain.Confirmation) error
}

type ConfirmationService struct {
	bookings repository.BookingRepository
	cache    Cache
	location *time.Location
}

type ConfirmationServiceOption func(*ConfirmationService)

// WithLocation sets the timezone flight times are displayed in.
func WithLocation(loc *time.Location) ConfirmationServiceOption {
	return func(s *ConfirmationService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewConfirmationService builds the read path. cache may be nil.
func NewConfirmationService(bookings repository.BookingRepository, cache Cache, opts ...ConfirmationServiceOption) *ConfirmationService {
	s := &ConfirmationService{
		bookings: bookings,
		cache:    cache,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func ParseBookingID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

// GetConfirmation returns the confirmation view for a booking id taken from
// a request. It never writes to the database.
func (s *ConfirmationService) GetConfirmation(ctx context.Context, rawID string) (*domain.Confirmation, error) {
	id, err := ParseBookingID(rawID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		view, err := s.cache.GetConfirmation(ctx, id)
		if err != nil {
			logging.FromContext(ctx).WithError(err).WithField("booking_id", id).Warn("Confirmation cache read failed")
		} else if view != nil {
			return view, nil
		}
	}

	return s.load(ctx, id)
}

// Warm renders a confirmation into the cache ahead of the first read.
func (s *ConfirmationService) Warm(ctx context.Context, bookingID int64) error {
	if s.cache == nil {
		return nil
	}
	_, err := s.load(ctx, bookingID)
	return err
}

func (s *ConfirmationService) load(ctx context.Context, id int64) (*domain.Confirmation, error) {
	details, err := s.bookings.GetDetails(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load booking %d: %w", id, err)
	}

	view := Project(details, s.location)

	if s.cache != nil {
		if err := s.cache.SetConfirmation(ctx, id, view); err != nil {
			logging.FromContext(ctx).WithError(err).WithField("booking_id", id).Warn("Confirmation cache write failed")
		}
	}
	return view, nil
}

var _ ConfirmationUseCase = (*ConfirmationService)(nil)
