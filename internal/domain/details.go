package domain

// BookedFlightDetails is a booked flight joined with its supply and class.
type BookedFlightDetails struct {
	BookedFlight
	Supply    FlightSupply
	ClassName string
}

// BookingDetails is the deep read of a booking and everything hanging off it.
type BookingDetails struct {
	Booking    Booking
	Passengers []Passenger
	Flights    []BookedFlightDetails
	Seats      []BookedSeat
	Payments   []Payment
	Extras     *BookingExtras
}

// SeatsFor returns the seat labels a passenger holds, in insertion order.
func (d *BookingDetails) SeatsFor(passengerID int64) []string {
	seats := make([]string, 0, len(d.Seats))
	for _, s := range d.Seats {
		if s.PassengerID == passengerID {
			seats = append(seats, s.SeatNo)
		}
	}
	return seats
}
