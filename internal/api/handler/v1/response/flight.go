package response

import (
	"time"

	"github.com/vkhomich/airport-api/internal/domain"
)

// FlightSummary is the list projection: flattened route/airplane labels
// plus the advisory availability count.
type FlightSummary struct {
	ID               uint      `json:"id"`
	Route            string    `json:"route"`
	Airplane         string    `json:"airplane"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	TicketsAvailable int       `json:"tickets_available"`
}

// FlightDetail is the retrieve projection: nested route and airplane,
// crew full names and the sold seat map.
type FlightDetail struct {
	ID               uint                    `json:"id"`
	Route            RouteDetail             `json:"route"`
	Airplane         AirplaneDetail          `json:"airplane"`
	Crew             []string                `json:"crew"`
	DepartureTime    time.Time               `json:"departure_time"`
	ArrivalTime      time.Time               `json:"arrival_time"`
	TicketsAvailable int                     `json:"tickets_available"`
	SoldTickets      []domain.SeatCoordinate `json:"sold_tickets"`
}

type FlightListResponse struct {
	Count   int64           `json:"count"`
	Results []FlightSummary `json:"results"`
}

func NewFlightSummary(flight domain.Flight) FlightSummary {
	return FlightSummary{
		ID:               flight.ID,
		Route:            flight.Route.Info(),
		Airplane:         flight.Airplane.Name,
		DepartureTime:    flight.DepartureTime,
		ArrivalTime:      flight.ArrivalTime,
		TicketsAvailable: flight.TicketsAvailable,
	}
}

func NewFlightList(flights []domain.Flight, total int64) FlightListResponse {
	summaries := make([]FlightSummary, len(flights))
	for i, flight := range flights {
		summaries[i] = NewFlightSummary(flight)
	}

	return FlightListResponse{
		Count:   total,
		Results: summaries,
	}
}

func NewFlightDetail(flight domain.Flight) FlightDetail {
	crew := make([]string, len(flight.Crew))
	for i, c := range flight.Crew {
		crew[i] = c.FullName()
	}

	soldTickets := flight.SoldSeats
	if soldTickets == nil {
		soldTickets = []domain.SeatCoordinate{}
	}

	return FlightDetail{
		ID:               flight.ID,
		Route:            NewRouteDetail(flight.Route),
		Airplane:         NewAirplaneDetail(flight.Airplane),
		Crew:             crew,
		DepartureTime:    flight.DepartureTime,
		ArrivalTime:      flight.ArrivalTime,
		TicketsAvailable: flight.TicketsAvailable,
		SoldTickets:      soldTickets,
	}
}
