package repository

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS booking_types (
	id INTEGER PRIMARY KEY,
	type_name VARCHAR(64) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS countries (
	id SERIAL PRIMARY KEY,
	country_name VARCHAR(128) NOT NULL UNIQUE
)`,
	`CREATE TABLE IF NOT EXISTS cities (
	id SERIAL PRIMARY KEY,
	city_name VARCHAR(128) NOT NULL,
	country_id INTEGER NOT NULL REFERENCES countries(id)
)`,
	`CREATE TABLE IF NOT EXISTS airports (
	id SERIAL PRIMARY KEY,
	city_id INTEGER NOT NULL REFERENCES cities(id),
	code CHAR(3) NOT NULL UNIQUE,
	name VARCHAR(255) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS airlines (
	id SERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL UNIQUE
)`,
	`CREATE TABLE IF NOT EXISTS booking_classes (
	id SERIAL PRIMARY KEY,
	class_name VARCHAR(64) NOT NULL UNIQUE,
	item_order INTEGER NOT NULL DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS flight_supplies (
	id BIGSERIAL PRIMARY KEY,
	flight_no VARCHAR(16) NOT NULL,
	airline_id INTEGER NOT NULL REFERENCES airlines(id),
	departure_time TIMESTAMPTZ NOT NULL,
	arrival_time TIMESTAMPTZ,
	departing_airport_id INTEGER NOT NULL REFERENCES airports(id),
	arriving_airport_id INTEGER NOT NULL REFERENCES airports(id)
)`,
	`CREATE TABLE IF NOT EXISTS seat_supplies (
	id BIGSERIAL PRIMARY KEY,
	flight_supply_id BIGINT NOT NULL REFERENCES flight_supplies(id),
	booking_class_id INTEGER NOT NULL REFERENCES booking_classes(id),
	no_seats INTEGER NOT NULL,
	base_price NUMERIC(10, 2) NOT NULL,
	currency CHAR(3) NOT NULL,
	UNIQUE (flight_supply_id, booking_class_id)
)`,
	`CREATE TABLE IF NOT EXISTS bookings (
	id BIGSERIAL PRIMARY KEY,
	user_id VARCHAR(255) NOT NULL,
	booking_type_id INTEGER NOT NULL REFERENCES booking_types(id),
	pnr VARCHAR(32) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS passengers (
	id BIGSERIAL PRIMARY KEY,
	booking_id BIGINT NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
	full_name VARCHAR(255) NOT NULL,
	dob DATE NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(64) NOT NULL,
	passport_number VARCHAR(64) NOT NULL DEFAULT '',
	gender VARCHAR(32) NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS booked_flights (
	id BIGSERIAL PRIMARY KEY,
	booking_id BIGINT NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
	flight_supply_id BIGINT NOT NULL REFERENCES flight_supplies(id),
	booking_class_id INTEGER NOT NULL REFERENCES booking_classes(id),
	fare_amount NUMERIC(10, 2) NOT NULL,
	fare_currency CHAR(3) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS booked_seats (
	id BIGSERIAL PRIMARY KEY,
	booked_flight_id BIGINT NOT NULL REFERENCES booked_flights(id) ON DELETE CASCADE,
	passenger_id BIGINT NOT NULL REFERENCES passengers(id) ON DELETE CASCADE,
	seat_no VARCHAR(8) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS payments (
	id BIGSERIAL PRIMARY KEY,
	booking_id BIGINT NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
	amount NUMERIC(10, 2) NOT NULL,
	currency CHAR(3) NOT NULL,
	method VARCHAR(32) NOT NULL,
	status VARCHAR(32) NOT NULL,
	tx_ref VARCHAR(64) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS booking_extras (
	booking_id BIGINT PRIMARY KEY REFERENCES bookings(id) ON DELETE CASCADE,
	meal VARCHAR(32) NOT NULL,
	meal_cost NUMERIC(10, 2) NOT NULL,
	baggage VARCHAR(32) NOT NULL,
	baggage_cost NUMERIC(10, 2) NOT NULL,
	travel_insurance BOOLEAN NOT NULL,
	insurance_cost NUMERIC(10, 2) NOT NULL
)`,
}

// Reference data the booking flow depends on.
var seedStatements = []string{
	`INSERT INTO booking_types (id, type_name) VALUES (1, 'Return'), (2, 'One-way'), (3, 'Multi-city') ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO countries (id, country_name) VALUES (1, 'Australia'), (2, 'United Kingdom') ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO cities (id, city_name, country_id) VALUES (1, 'Sydney', 1), (2, 'London', 2) ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO airports (id, city_id, code, name) VALUES
	(1, 1, 'SYD', 'Sydney Kingsford Smith Airport'),
	(2, 2, 'LHR', 'London Heathrow Airport')
ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO airlines (id, name) VALUES (1, 'FlyDreamAir') ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO booking_classes (id, class_name, item_order) VALUES (1, 'Economy', 1), (2, 'Business', 2) ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO flight_supplies (id, flight_no, airline_id, departure_time, departing_airport_id, arriving_airport_id)
VALUES (1, 'FA-123', 1, '2025-03-18T08:30:00Z', 1, 2)
ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO seat_supplies (flight_supply_id, booking_class_id, no_seats, base_price, currency) VALUES
	(1, 1, 100, 1000, 'AUD'),
	(1, 2, 20, 2500, 'AUD')
ON CONFLICT (flight_supply_id, booking_class_id) DO NOTHING`,
}

// InitSchema creates the tables if they are missing and loads reference data.
func InitSchema(ctx context.Context, db DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	for _, stmt := range seedStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to seed reference data: %w", err)
		}
	}
	return nil
}
