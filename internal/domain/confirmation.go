package domain

// Confirmation is the display-shaped projection of a booking.
type Confirmation struct {
	BookingID     string               `json:"bookingId"`
	PNR           string               `json:"pnr"`
	FlightDetails ConfirmationFlight   `json:"flightDetails"`
	Passenger     ConfirmationTraveler `json:"passenger"`
	BookingExtras ConfirmationExtras   `json:"bookingExtras"`
	PriceSummary  PriceSummary         `json:"priceSummary"`
}

type ConfirmationFlight struct {
	FlightNumber string       `json:"flightNumber"`
	Airline      string       `json:"airline"`
	Departure    FlightMoment `json:"departure"`
	Arrival      FlightMoment `json:"arrival"`
	Duration     string       `json:"duration"`
	Stops        int          `json:"stops"`
	Cabin        string       `json:"cabin"`
}

type FlightMoment struct {
	Time    string `json:"time"`
	Date    string `json:"date"`
	Airport string `json:"airport"`
	City    string `json:"city"`
}

type ConfirmationTraveler struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PassportNumber string `json:"passportNumber"`
}

type ConfirmationExtras struct {
	Seats           []string `json:"seats"`
	Meal            string   `json:"meal"`
	Baggage         string   `json:"baggage"`
	TravelInsurance bool     `json:"travelInsurance"`
}

type PriceSummary struct {
	BaseFare      float64 `json:"baseFare"`
	Taxes         float64 `json:"taxes"`
	MealCost      float64 `json:"mealCost"`
	BaggageCost   float64 `json:"baggageCost"`
	InsuranceCost float64 `json:"insuranceCost"`
	Total         float64 `json:"total"`
}
