package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/repository"
)

var (
	ErrRouteExists     = repository.ErrRouteExists
	ErrRouteNotFound   = repository.ErrRouteNotFound
	ErrSameAirport     = errors.New("source and destination must be different")
	ErrInvalidDistance = errors.New("distance must be at least 1")
)

type RouteRepository interface {
	Create(ctx context.Context, route domain.Route) (domain.Route, error)
	FindByID(ctx context.Context, id uint) (domain.Route, error)
	FindAll(ctx context.Context) ([]domain.Route, error)
	Update(ctx context.Context, route domain.Route) (domain.Route, error)
	Delete(ctx context.Context, id uint) error
}

type RouteAirportRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Airport, error)
}

type RouteService struct {
	repo        RouteRepository
	airportRepo RouteAirportRepository
}

func NewRouteService(repo RouteRepository, airportRepo RouteAirportRepository) *RouteService {
	return &RouteService{
		repo:        repo,
		airportRepo: airportRepo,
	}
}

// CreateRoute enforces the route preconditions before any write: distinct
// endpoints, positive distance, existing airports. The unique
// (source, destination) index backs the duplicate check at write time.
func (s *RouteService) CreateRoute(ctx context.Context, sourceID, destinationID uint, distance int) (domain.Route, error) {
	source, destination, err := s.resolveEndpoints(ctx, sourceID, destinationID, distance)
	if err != nil {
		return domain.Route{}, err
	}

	created, err := s.repo.Create(ctx, domain.Route{
		Source:      source,
		Destination: destination,
		Distance:    distance,
	})
	if err != nil {
		return domain.Route{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *RouteService) GetRoute(ctx context.Context, id uint) (domain.Route, error) {
	route, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Route{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return route, nil
}

func (s *RouteService) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	routes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return routes, nil
}

func (s *RouteService) UpdateRoute(ctx context.Context, id, sourceID, destinationID uint, distance int) (domain.Route, error) {
	source, destination, err := s.resolveEndpoints(ctx, sourceID, destinationID, distance)
	if err != nil {
		return domain.Route{}, err
	}

	updated, err := s.repo.Update(ctx, domain.Route{
		ID:          id,
		Source:      source,
		Destination: destination,
		Distance:    distance,
	})
	if err != nil {
		return domain.Route{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *RouteService) DeleteRoute(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *RouteService) resolveEndpoints(ctx context.Context, sourceID, destinationID uint, distance int) (domain.Airport, domain.Airport, error) {
	if sourceID == destinationID {
		return domain.Airport{}, domain.Airport{}, ErrSameAirport
	}
	if distance < 1 {
		return domain.Airport{}, domain.Airport{}, ErrInvalidDistance
	}

	source, err := s.airportRepo.FindByID(ctx, sourceID)
	if err != nil {
		return domain.Airport{}, domain.Airport{}, fmt.Errorf("s.airportRepo.FindByID -> %w", err)
	}

	destination, err := s.airportRepo.FindByID(ctx, destinationID)
	if err != nil {
		return domain.Airport{}, domain.Airport{}, fmt.Errorf("s.airportRepo.FindByID -> %w", err)
	}

	return source, destination, nil
}
