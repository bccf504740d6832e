package request

import (
	"errors"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vkhomich/airport-api/internal/domain"
)

// filterTimeLayout is the format accepted by the departure_time and
// arrival_time query parameters. Only the date part is used for matching.
const filterTimeLayout = "2006-01-02-15:04"

type CreateFlightRequest struct {
	RouteID       uint      `json:"route"`
	AirplaneID    uint      `json:"airplane"`
	CrewIDs       []uint    `json:"crew"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

func (req *CreateFlightRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.RouteID, validation.Required),
		validation.Field(&req.AirplaneID, validation.Required),
		validation.Field(&req.CrewIDs, validation.Required),
		validation.Field(&req.DepartureTime, validation.Required),
		validation.Field(&req.ArrivalTime, validation.Required),
	)
}

type UpdateFlightRequest = CreateFlightRequest

type ListFlightsRequest struct {
	Pagination
	FlightSource      string `form:"flight_source"`
	FlightDestination string `form:"flight_destination"`
	DepartureTime     string `form:"departure_time"`
	ArrivalTime       string `form:"arrival_time"`
}

// Filter parses the query parameters into a domain filter,
// collecting every invalid parameter into one validation error.
func (req *ListFlightsRequest) Filter() (domain.FlightFilter, error) {
	errs := validation.Errors{}
	filter := domain.FlightFilter{}

	if req.FlightSource != "" {
		ids, err := parseIDList(req.FlightSource)
		if err != nil {
			errs["flight_source"] = errors.New("must be a comma-separated list of airport ids")
		} else {
			filter.SourceIDs = ids
		}
	}
	if req.FlightDestination != "" {
		ids, err := parseIDList(req.FlightDestination)
		if err != nil {
			errs["flight_destination"] = errors.New("must be a comma-separated list of airport ids")
		} else {
			filter.DestinationIDs = ids
		}
	}
	if req.DepartureTime != "" {
		t, err := time.Parse(filterTimeLayout, req.DepartureTime)
		if err != nil {
			errs["departure_time"] = errors.New("must be in YYYY-MM-DD-HH:MM format")
		} else {
			filter.DepartureDate = &t
		}
	}
	if req.ArrivalTime != "" {
		t, err := time.Parse(filterTimeLayout, req.ArrivalTime)
		if err != nil {
			errs["arrival_time"] = errors.New("must be in YYYY-MM-DD-HH:MM format")
		} else {
			filter.ArrivalDate = &t
		}
	}

	return filter, errs.Filter()
}

func parseIDList(s string) ([]uint, error) {
	parts := strings.Split(s, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
