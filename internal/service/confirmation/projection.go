package confirmation

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Domenick1991/flydreamair/internal/domain"
	"github.com/Domenick1991/flydreamair/internal/pricing"
	"github.com/shopspring/decimal"
)

const (
	notAvailable = "N/A"
	defaultCabin = "Economy"

	timeLayout = "15:04"
	dateLayout = "Mon, Jan 2, 2006"

	// Route data carries neither stop counts nor taxes yet.
	fixedStops = 1
	fixedTaxes = 120

	fallbackFlightTime = 23 * time.Hour
	fallbackDuration   = "23h 15m"
)

// Project assembles the confirmation view of a booking. It is pure: the same
// details and location always give the same view.
func Project(d *domain.BookingDetails, loc *time.Location) *domain.Confirmation {
	if loc == nil {
		loc = time.UTC
	}

	view := &domain.Confirmation{
		BookingID: strconv.FormatInt(d.Booking.ID, 10),
		PNR:       d.Booking.PNR,
		Passenger: domain.ConfirmationTraveler{
			FullName:       notAvailable,
			Email:          notAvailable,
			Phone:          notAvailable,
			PassportNumber: notAvailable,
		},
		BookingExtras: domain.ConfirmationExtras{Seats: []string{}},
	}

	var baseFare decimal.Decimal
	if len(d.Flights) > 0 {
		f := d.Flights[0]
		view.FlightDetails = projectFlight(f, loc)
		baseFare = f.FareAmount
	} else {
		view.FlightDetails = emptyFlight()
	}

	if len(d.Passengers) > 0 {
		p := d.Passengers[0]
		view.Passenger = domain.ConfirmationTraveler{
			FullName:       orNA(p.FullName),
			Email:          orNA(p.Email),
			Phone:          orNA(p.Phone),
			PassportNumber: orNA(p.PassportNumber),
		}
		view.BookingExtras.Seats = d.SeatsFor(p.ID)
	}

	extras := extrasOrDefault(d.Extras)
	meal := pricing.ParseMeal(extras.Meal)
	baggage := pricing.ParseBaggage(extras.Baggage)
	view.BookingExtras.Meal = meal.Label()
	view.BookingExtras.Baggage = baggage.Label()
	view.BookingExtras.TravelInsurance = extras.TravelInsurance

	var total decimal.Decimal
	if len(d.Payments) > 0 {
		total = d.Payments[0].Amount
	}
	view.PriceSummary = domain.PriceSummary{
		BaseFare:      baseFare.InexactFloat64(),
		Taxes:         fixedTaxes,
		MealCost:      extras.MealCost.InexactFloat64(),
		BaggageCost:   extras.BaggageCost.InexactFloat64(),
		InsuranceCost: extras.InsuranceCost.InexactFloat64(),
		Total:         total.InexactFloat64(),
	}
	return view
}

func projectFlight(f domain.BookedFlightDetails, loc *time.Location) domain.ConfirmationFlight {
	s := f.Supply
	departure := s.DepartureTime.In(loc)

	arrival := departure.Add(fallbackFlightTime)
	duration := fallbackDuration
	if s.ArrivalTime != nil {
		arrival = s.ArrivalTime.In(loc)
		duration = formatDuration(arrival.Sub(departure))
	}

	cabin := f.ClassName
	if cabin == "" {
		cabin = defaultCabin
	}

	return domain.ConfirmationFlight{
		FlightNumber: orNA(s.FlightNo),
		Airline:      orNA(s.Airline),
		Departure: domain.FlightMoment{
			Time:    departure.Format(timeLayout),
			Date:    departure.Format(dateLayout),
			Airport: orNA(s.DepartingAirport.Code),
			City:    orNA(s.DepartingAirport.City),
		},
		Arrival: domain.FlightMoment{
			Time:    arrival.Format(timeLayout),
			Date:    arrival.Format(dateLayout),
			Airport: orNA(s.ArrivingAirport.Code),
			City:    orNA(s.ArrivingAirport.City),
		},
		Duration: duration,
		Stops:    fixedStops,
		Cabin:    cabin,
	}
}

func emptyFlight() domain.ConfirmationFlight {
	na := domain.FlightMoment{Time: notAvailable, Date: notAvailable, Airport: notAvailable, City: notAvailable}
	return domain.ConfirmationFlight{
		FlightNumber: notAvailable,
		Airline:      notAvailable,
		Departure:    na,
		Arrival:      na,
		Duration:     fallbackDuration,
		Stops:        fixedStops,
		Cabin:        defaultCabin,
	}
}

// extrasOrDefault covers bookings written before add-ons were recorded.
func extrasOrDefault(e *domain.BookingExtras) domain.BookingExtras {
	if e != nil {
		return *e
	}
	return domain.BookingExtras{
		Meal:          string(pricing.MealStandard),
		MealCost:      decimal.Zero,
		Baggage:       string(pricing.BaggageStandard),
		BaggageCost:   decimal.Zero,
		InsuranceCost: decimal.Zero,
	}
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Minute)
	return fmt.Sprintf("%dh %dm", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
