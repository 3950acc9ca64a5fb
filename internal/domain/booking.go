package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingType classifies the itinerary shape. Codes match the booking_types seed rows.
type BookingType int

const (
	BookingTypeReturn    BookingType = 1
	BookingTypeOneWay    BookingType = 2
	BookingTypeMultiCity BookingType = 3
)

// BookingTypeForTrip maps the trip-type form value to its booking type code.
// Anything that is not "return" or "multi-city" is one-way.
func BookingTypeForTrip(tripType string) BookingType {
	switch tripType {
	case "return":
		return BookingTypeReturn
	case "multi-city":
		return BookingTypeMultiCity
	default:
		return BookingTypeOneWay
	}
}

type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "SUCCESS"

	PaymentMethodMock = "CARD-MOCK"
)

type Booking struct {
	ID            int64
	UserID        string
	BookingTypeID BookingType
	PNR           string
	CreatedAt     time.Time
}

type Passenger struct {
	ID             int64
	BookingID      int64
	FullName       string
	DOB            time.Time
	Email          string
	Phone          string
	PassportNumber string
	Gender         string
}

type BookedFlight struct {
	ID             int64
	BookingID      int64
	FlightSupplyID int64
	BookingClassID int64
	FareAmount     decimal.Decimal
	FareCurrency   string
}

type BookedSeat struct {
	ID             int64
	BookedFlightID int64
	PassengerID    int64
	SeatNo         string
}

type Payment struct {
	ID        int64
	BookingID int64
	Amount    decimal.Decimal
	Currency  string
	Method    string
	Status    PaymentStatus
	TxRef     string
}

// BookingExtras is the add-on snapshot taken when the booking was priced.
type BookingExtras struct {
	BookingID       int64
	Meal            string
	MealCost        decimal.Decimal
	Baggage         string
	BaggageCost     decimal.Decimal
	TravelInsurance bool
	InsuranceCost   decimal.Decimal
}

// BookingDraft holds every record of one booking before it is written.
// The repository fills in the generated identifiers and foreign keys.
type BookingDraft struct {
	Booking   Booking
	Passenger Passenger
	Flight    BookedFlight
	Seats     []string
	Payment   Payment
	Extras    BookingExtras
}
