package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/flydreamair/internal/domain"
	"github.com/jackc/pgx/v5"
)

type BookingRepository interface {
	// Create writes the booking and all of its dependent records in one
	// transaction. On success the draft carries the generated identifiers.
	Create(ctx context.Context, draft *domain.BookingDraft) error
	GetDetails(ctx context.Context, bookingID int64) (*domain.BookingDetails, error)
}

type PGBookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) BookingRepository {
	return &PGBookingRepository{db: db}
}

const (
	insertBookingSQL = `INSERT INTO bookings (user_id, booking_type_id, pnr)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	insertPassengerSQL = `INSERT INTO passengers (booking_id, full_name, dob, email, phone, passport_number, gender)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	insertBookedFlightSQL = `INSERT INTO booked_flights (booking_id, flight_supply_id, booking_class_id, fare_amount, fare_currency)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	insertBookedSeatSQL = `INSERT INTO booked_seats (booked_flight_id, passenger_id, seat_no)
		VALUES ($1, $2, $3)
		RETURNING id`
	insertPaymentSQL = `INSERT INTO payments (booking_id, amount, currency, method, status, tx_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	insertExtrasSQL = `INSERT INTO booking_extras (booking_id, meal, meal_cost, baggage, baggage_cost, travel_insurance, insurance_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
)

func (r *PGBookingRepository) Create(ctx context.Context, draft *domain.BookingDraft) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	b := &draft.Booking
	if err := tx.QueryRow(ctx, insertBookingSQL, b.UserID, b.BookingTypeID, b.PNR).Scan(&b.ID, &b.CreatedAt); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	p := &draft.Passenger
	p.BookingID = b.ID
	if err := tx.QueryRow(ctx, insertPassengerSQL, p.BookingID, p.FullName, p.DOB, p.Email, p.Phone, p.PassportNumber, p.Gender).Scan(&p.ID); err != nil {
		return fmt.Errorf("insert passenger: %w", err)
	}

	f := &draft.Flight
	f.BookingID = b.ID
	if err := tx.QueryRow(ctx, insertBookedFlightSQL, f.BookingID, f.FlightSupplyID, f.BookingClassID, f.FareAmount, f.FareCurrency).Scan(&f.ID); err != nil {
		return fmt.Errorf("insert booked flight: %w", err)
	}

	for _, seat := range draft.Seats {
		var seatID int64
		if err := tx.QueryRow(ctx, insertBookedSeatSQL, f.ID, p.ID, seat).Scan(&seatID); err != nil {
			return fmt.Errorf("insert booked seat %s: %w", seat, err)
		}
	}

	pay := &draft.Payment
	pay.BookingID = b.ID
	if err := tx.QueryRow(ctx, insertPaymentSQL, pay.BookingID, pay.Amount, pay.Currency, pay.Method, pay.Status, pay.TxRef).Scan(&pay.ID); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	e := &draft.Extras
	e.BookingID = b.ID
	if _, err := tx.Exec(ctx, insertExtrasSQL, e.BookingID, e.Meal, e.MealCost, e.Baggage, e.BaggageCost, e.TravelInsurance, e.InsuranceCost); err != nil {
		return fmt.Errorf("insert booking extras: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking transaction: %w", err)
	}
	return nil
}

const (
	selectBookingSQL    = `SELECT id, user_id, booking_type_id, pnr, created_at FROM bookings WHERE id=$1`
	selectPassengersSQL = `SELECT id, booking_id, full_name, dob, email, phone, passport_number, gender
		FROM passengers WHERE booking_id=$1 ORDER BY id`
	selectBookedFlightsSQL = `SELECT bf.id, bf.booking_id, bf.flight_supply_id, bf.booking_class_id, bf.fare_amount, bf.fare_currency,
			fs.flight_no, al.name, fs.departure_time, fs.arrival_time,
			da.code, da.name, dc.city_name, aa.code, aa.name, ac.city_name,
			bc.class_name
		FROM booked_flights bf
		JOIN flight_supplies fs ON fs.id = bf.flight_supply_id
		JOIN airlines al ON al.id = fs.airline_id
		JOIN airports da ON da.id = fs.departing_airport_id
		JOIN cities dc ON dc.id = da.city_id
		JOIN airports aa ON aa.id = fs.arriving_airport_id
		JOIN cities ac ON ac.id = aa.city_id
		JOIN booking_classes bc ON bc.id = bf.booking_class_id
		WHERE bf.booking_id=$1 ORDER BY bf.id`
	selectBookedSeatsSQL = `SELECT bs.id, bs.booked_flight_id, bs.passenger_id, bs.seat_no
		FROM booked_seats bs
		JOIN booked_flights bf ON bf.id = bs.booked_flight_id
		WHERE bf.booking_id=$1 ORDER BY bs.id`
	selectPaymentsSQL = `SELECT id, booking_id, amount, currency, method, status, tx_ref
		FROM payments WHERE booking_id=$1 ORDER BY id`
	selectExtrasSQL = `SELECT booking_id, meal, meal_cost, baggage, baggage_cost, travel_insurance, insurance_cost
		FROM booking_extras WHERE booking_id=$1`
)

func (r *PGBookingRepository) GetDetails(ctx context.Context, bookingID int64) (*domain.BookingDetails, error) {
	var d domain.BookingDetails

	b := &d.Booking
	err := r.db.QueryRow(ctx, selectBookingSQL, bookingID).Scan(&b.ID, &b.UserID, &b.BookingTypeID, &b.PNR, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select booking: %w", err)
	}

	if d.Passengers, err = r.passengers(ctx, bookingID); err != nil {
		return nil, err
	}
	if d.Flights, err = r.bookedFlights(ctx, bookingID); err != nil {
		return nil, err
	}
	if d.Seats, err = r.bookedSeats(ctx, bookingID); err != nil {
		return nil, err
	}
	if d.Payments, err = r.payments(ctx, bookingID); err != nil {
		return nil, err
	}
	if d.Extras, err = r.extras(ctx, bookingID); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PGBookingRepository) passengers(ctx context.Context, bookingID int64) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, selectPassengersSQL, bookingID)
	if err != nil {
		return nil, fmt.Errorf("select passengers: %w", err)
	}
	defer rows.Close()

	var passengers []domain.Passenger
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.BookingID, &p.FullName, &p.DOB, &p.Email, &p.Phone, &p.PassportNumber, &p.Gender); err != nil {
			return nil, fmt.Errorf("scan passenger: %w", err)
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func (r *PGBookingRepository) bookedFlights(ctx context.Context, bookingID int64) ([]domain.BookedFlightDetails, error) {
	rows, err := r.db.Query(ctx, selectBookedFlightsSQL, bookingID)
	if err != nil {
		return nil, fmt.Errorf("select booked flights: %w", err)
	}
	defer rows.Close()

	var flights []domain.BookedFlightDetails
	for rows.Next() {
		var f domain.BookedFlightDetails
		s := &f.Supply
		if err := rows.Scan(
			&f.ID, &f.BookingID, &f.FlightSupplyID, &f.BookingClassID, &f.FareAmount, &f.FareCurrency,
			&s.FlightNo, &s.Airline, &s.DepartureTime, &s.ArrivalTime,
			&s.DepartingAirport.Code, &s.DepartingAirport.Name, &s.DepartingAirport.City,
			&s.ArrivingAirport.Code, &s.ArrivingAirport.Name, &s.ArrivingAirport.City,
			&f.ClassName,
		); err != nil {
			return nil, fmt.Errorf("scan booked flight: %w", err)
		}
		s.ID = f.FlightSupplyID
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGBookingRepository) bookedSeats(ctx context.Context, bookingID int64) ([]domain.BookedSeat, error) {
	rows, err := r.db.Query(ctx, selectBookedSeatsSQL, bookingID)
	if err != nil {
		return nil, fmt.Errorf("select booked seats: %w", err)
	}
	defer rows.Close()

	var seats []domain.BookedSeat
	for rows.Next() {
		var s domain.BookedSeat
		if err := rows.Scan(&s.ID, &s.BookedFlightID, &s.PassengerID, &s.SeatNo); err != nil {
			return nil, fmt.Errorf("scan booked seat: %w", err)
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}

func (r *PGBookingRepository) payments(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, selectPaymentsSQL, bookingID)
	if err != nil {
		return nil, fmt.Errorf("select payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Amount, &p.Currency, &p.Method, &p.Status, &p.TxRef); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// extras returns nil when the booking predates the extras snapshot.
func (r *PGBookingRepository) extras(ctx context.Context, bookingID int64) (*domain.BookingExtras, error) {
	var e domain.BookingExtras
	err := r.db.QueryRow(ctx, selectExtrasSQL, bookingID).
		Scan(&e.BookingID, &e.Meal, &e.MealCost, &e.Baggage, &e.BaggageCost, &e.TravelInsurance, &e.InsuranceCost)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select booking extras: %w", err)
	}
	return &e, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
