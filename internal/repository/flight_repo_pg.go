package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/flydreamair/internal/domain"
	"github.com/jackc/pgx/v5"
)

type FlightRepository interface {
	// Resolve finds the flight supply and booking class a submission refers
	// to. departureDate is optional; when nil the earliest matching flight wins.
	Resolve(ctx context.Context, flightNo, className string, departureDate *time.Time) (*domain.FlightRef, error)
}

type PGFlightRepository struct {
	db DB
}

func NewFlightRepository(db DB) FlightRepository {
	return &PGFlightRepository{db: db}
}

const resolveFlightSQL = `SELECT fs.id, bc.id
	FROM flight_supplies fs
	JOIN seat_supplies ss ON ss.flight_supply_id = fs.id
	JOIN booking_classes bc ON bc.id = ss.booking_class_id
	WHERE fs.flight_no = $1
		AND lower(bc.class_name) = lower($2)
		AND ($3::date IS NULL OR fs.departure_time::date = $3::date)
	ORDER BY fs.departure_time
	LIMIT 1`

func (r *PGFlightRepository) Resolve(ctx context.Context, flightNo, className string, departureDate *time.Time) (*domain.FlightRef, error) {
	var ref domain.FlightRef
	err := r.db.QueryRow(ctx, resolveFlightSQL, flightNo, className, departureDate).Scan(&ref.FlightSupplyID, &ref.BookingClassID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFlightNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve flight %s/%s: %w", flightNo, className, err)
	}
	return &ref, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
