package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/repository"
)

var (
	ErrFlightNotFound    = repository.ErrFlightNotFound
	ErrInvalidTimeWindow = errors.New("departure time must be before arrival time")
	ErrEmptyCrew         = errors.New("flight requires at least one crew member")
)

type FlightRepository interface {
	Create(ctx context.Context, flight domain.Flight) (domain.Flight, error)
	FindByID(ctx context.Context, id uint) (domain.Flight, error)
	FindAll(ctx context.Context, filter domain.FlightFilter, limit, offset int) ([]domain.Flight, int64, error)
	Update(ctx context.Context, flight domain.Flight) (domain.Flight, error)
	Delete(ctx context.Context, id uint) error
}

type FlightRouteRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Route, error)
}

type FlightAirplaneRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Airplane, error)
}

type FlightCrewRepository interface {
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Crew, error)
}

type FlightService struct {
	repo         FlightRepository
	routeRepo    FlightRouteRepository
	airplaneRepo FlightAirplaneRepository
	crewRepo     FlightCrewRepository
}

func NewFlightService(
	repo FlightRepository,
	routeRepo FlightRouteRepository,
	airplaneRepo FlightAirplaneRepository,
	crewRepo FlightCrewRepository,
) *FlightService {
	return &FlightService{
		repo:         repo,
		routeRepo:    routeRepo,
		airplaneRepo: airplaneRepo,
		crewRepo:     crewRepo,
	}
}

// CreateFlight guards the seat inventory's assumptions: every flight
// has an existing airplane, an existing route, a non-empty crew and a
// well-formed time window. Overlapping flights on the same airplane are
// not rejected.
func (s *FlightService) CreateFlight(
	ctx context.Context,
	routeID, airplaneID uint,
	crewIDs []uint,
	departure, arrival time.Time,
) (domain.Flight, error) {
	flight, err := s.resolveFlight(ctx, routeID, airplaneID, crewIDs, departure, arrival)
	if err != nil {
		return domain.Flight{}, err
	}

	created, err := s.repo.Create(ctx, flight)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *FlightService) GetFlight(ctx context.Context, id uint) (domain.Flight, error) {
	flight, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return flight, nil
}

// ListFlights translates the filter into catalog lookups. The advisory
// tickets_available annotation is computed in the same query snapshot.
func (s *FlightService) ListFlights(ctx context.Context, filter domain.FlightFilter, limit, offset int) ([]domain.Flight, int64, error) {
	flights, total, err := s.repo.FindAll(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return flights, total, nil
}

func (s *FlightService) UpdateFlight(
	ctx context.Context,
	id, routeID, airplaneID uint,
	crewIDs []uint,
	departure, arrival time.Time,
) (domain.Flight, error) {
	flight, err := s.resolveFlight(ctx, routeID, airplaneID, crewIDs, departure, arrival)
	if err != nil {
		return domain.Flight{}, err
	}
	flight.ID = id

	updated, err := s.repo.Update(ctx, flight)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *FlightService) DeleteFlight(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *FlightService) resolveFlight(
	ctx context.Context,
	routeID, airplaneID uint,
	crewIDs []uint,
	departure, arrival time.Time,
) (domain.Flight, error) {
	if !departure.Before(arrival) {
		return domain.Flight{}, ErrInvalidTimeWindow
	}
	if len(crewIDs) == 0 {
		return domain.Flight{}, ErrEmptyCrew
	}

	route, err := s.routeRepo.FindByID(ctx, routeID)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("s.routeRepo.FindByID -> %w", err)
	}

	airplane, err := s.airplaneRepo.FindByID(ctx, airplaneID)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("s.airplaneRepo.FindByID -> %w", err)
	}

	crew, err := s.crewRepo.FindByIDs(ctx, crewIDs)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("s.crewRepo.FindByIDs -> %w", err)
	}
	if len(crew) != len(crewIDs) {
		return domain.Flight{}, ErrCrewNotFound
	}

	return domain.Flight{
		Route:         route,
		Airplane:      airplane,
		Crew:          crew,
		DepartureTime: departure,
		ArrivalTime:   arrival,
	}, nil
}
