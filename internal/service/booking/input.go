package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/flydreamair/internal/domain"
	"github.com/Domenick1991/flydreamair/internal/pricing"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// CreateBookingInput is the booking form as submitted.
type CreateBookingInput struct {
	FirstName      string `form:"first_name" validate:"required"`
	LastName       string `form:"last_name" validate:"required"`
	DateOfBirth    string `form:"date_of_birth" validate:"required"`
	PassportNumber string `form:"passport_number" validate:"required"`
	Gender         string `form:"gender" validate:"required"`
	Email          string `form:"email" validate:"required"`
	Phone          string `form:"phone" validate:"required"`

	TripType      string             `form:"trip_type"`
	BookingTypeID domain.BookingType `form:"-"`

	FlightID      string `form:"flight_id"`
	Airline       string `form:"airline"`
	FlightNumber  string `form:"flight_number"`
	Cabin         string `form:"cabin"`
	DepartureDate string `form:"departure_date"`
	Price         string `form:"price"`

	SelectedSeats   string `form:"selected_seats"`
	SelectedMeal    string `form:"selected_meal"`
	SelectedBaggage string `form:"selected_baggage"`
	TravelInsurance string `form:"travel_insurance"`

	// Malformed is set by the transport when the form body could not be decoded.
	Malformed bool `form:"-"`
}

func (in *CreateBookingInput) normalize() {
	for _, f := range []*string{
		&in.FirstName, &in.LastName, &in.DateOfBirth, &in.PassportNumber, &in.Gender, &in.Email, &in.Phone,
		&in.TripType, &in.FlightID, &in.Airline, &in.FlightNumber, &in.Cabin, &in.DepartureDate, &in.Price,
	} {
		*f = strings.TrimSpace(*f)
	}
}

// submission is a validated input with every field in its typed form.
type submission struct {
	bookingType   domain.BookingType
	fullName      string
	dob           time.Time
	flightNo      string
	cabin         string
	departureDate *time.Time
	baseFare      decimal.Decimal
	seats         []string
	selection     pricing.Selection
}

func parseSubmission(in CreateBookingInput) (*submission, error) {
	dob, err := time.Parse(dateLayout, in.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("date of birth %q: %w", in.DateOfBirth, err)
	}

	fare, err := decimal.NewFromString(in.Price)
	if err != nil {
		return nil, fmt.Errorf("price %q: %w", in.Price, err)
	}
	if fare.IsNegative() {
		return nil, fmt.Errorf("price %s is negative", fare)
	}

	s := &submission{
		bookingType: in.BookingTypeID,
		fullName:    in.FirstName + " " + in.LastName,
		dob:         dob,
		flightNo:    in.FlightNumber,
		cabin:       in.Cabin,
		baseFare:    fare,
		seats:       ParseSeats(in.SelectedSeats),
		selection: pricing.Selection{
			Meal:      pricing.ParseMeal(in.SelectedMeal),
			Baggage:   pricing.ParseBaggage(in.SelectedBaggage),
			Insurance: parseFlag(in.TravelInsurance),
		},
	}
	if s.bookingType == 0 {
		s.bookingType = domain.BookingTypeForTrip(in.TripType)
	}
	if s.flightNo == "" {
		s.flightNo = in.FlightID
	}
	if s.cabin == "" {
		s.cabin = defaultCabin
	}
	if in.DepartureDate != "" {
		d, err := time.Parse(dateLayout, in.DepartureDate)
		if err != nil {
			return nil, fmt.Errorf("departure date %q: %w", in.DepartureDate, err)
		}
		s.departureDate = &d
	}
	return s, nil
}

// ParseSeats splits a comma-joined seat selection, dropping blanks and repeats.
func ParseSeats(raw string) []string {
	var seats []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		seat := strings.TrimSpace(part)
		if seat == "" {
			continue
		}
		if _, dup := seen[seat]; dup {
			continue
		}
		seen[seat] = struct{}{}
		seats = append(seats, seat)
	}
	return seats
}

func parseFlag(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && v
}
