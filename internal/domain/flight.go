package domain

import (
	"fmt"
	"time"
)

type Flight struct {
	ID            uint      `json:"id"`
	Route         Route     `json:"route"`
	Airplane      Airplane  `json:"airplane"`
	Crew          []Crew    `json:"crew"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`

	// TicketsAvailable is annotated by the flight queries. It is advisory
	// for listings; the ticket uniqueness constraint is what actually
	// prevents overselling.
	TicketsAvailable int `json:"tickets_available"`

	// SoldSeats is populated on flight retrieval only.
	SoldSeats []SeatCoordinate `json:"sold_seats,omitempty"`
}

// SeatCoordinate identifies a physical seat within one flight's airplane.
type SeatCoordinate struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// FlightFilter narrows flight listings. All set fields apply
// conjunctively; date fields match by calendar date, not exact timestamp.
type FlightFilter struct {
	SourceIDs      []uint
	DestinationIDs []uint
	DepartureDate  *time.Time
	ArrivalDate    *time.Time
}

func (f Flight) Info() string {
	return fmt.Sprintf("%v -> %v",
		f.Route.Source.LocationCity, f.Route.Destination.LocationCity)
}
