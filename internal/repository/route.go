package repository

import (
	"context"
	"fmt"

	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/repository/dao"
)

var (
	ErrRouteExists   = dao.ErrRouteExists
	ErrRouteNotFound = dao.ErrRouteNotFound
)

type RouteDAO interface {
	Insert(ctx context.Context, route dao.Route) (dao.Route, error)
	FindByID(ctx context.Context, id uint) (dao.Route, error)
	FindAll(ctx context.Context) ([]dao.Route, error)
	Update(ctx context.Context, route dao.Route) (dao.Route, error)
	Delete(ctx context.Context, id uint) error
}

type RouteRepository struct {
	dao RouteDAO
}

func NewRouteRepository(dao RouteDAO) *RouteRepository {
	return &RouteRepository{
		dao: dao,
	}
}

func (r *RouteRepository) Create(ctx context.Context, route domain.Route) (domain.Route, error) {
	created, err := r.dao.Insert(ctx, routeDomainToDao(route))
	if err != nil {
		return domain.Route{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return routeDaoToDomain(created), nil
}

func (r *RouteRepository) FindByID(ctx context.Context, id uint) (domain.Route, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Route{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return routeDaoToDomain(found), nil
}

func (r *RouteRepository) FindAll(ctx context.Context) ([]domain.Route, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	routes := make([]domain.Route, len(found))
	for i, route := range found {
		routes[i] = routeDaoToDomain(route)
	}

	return routes, nil
}

func (r *RouteRepository) Update(ctx context.Context, route domain.Route) (domain.Route, error) {
	updated, err := r.dao.Update(ctx, routeDomainToDao(route))
	if err != nil {
		return domain.Route{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return routeDaoToDomain(updated), nil
}

func (r *RouteRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func routeDomainToDao(route domain.Route) dao.Route {
	return dao.Route{
		ID:            route.ID,
		SourceID:      route.Source.ID,
		DestinationID: route.Destination.ID,
		Distance:      route.Distance,
	}
}

func routeDaoToDomain(route dao.Route) domain.Route {
	return domain.Route{
		ID:          route.ID,
		Source:      airportDaoToDomain(route.Source),
		Destination: airportDaoToDomain(route.Destination),
		Distance:    route.Distance,
	}
}
