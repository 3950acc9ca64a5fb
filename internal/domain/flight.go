package domain

import "time"

type Airport struct {
	Code string
	Name string
	City string
}

type FlightSupply struct {
	ID               int64
	FlightNo         string
	Airline          string
	DepartureTime    time.Time
	ArrivalTime      *time.Time
	DepartingAirport Airport
	ArrivingAirport  Airport
}

type BookingClass struct {
	ID        int64
	ClassName string
}

// FlightRef identifies the inventory a booked flight is sold from.
type FlightRef struct {
	FlightSupplyID int64
	BookingClassID int64
}
