package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/repository"
)

type fakeRouteRepository struct {
	createFunc func(ctx context.Context, route domain.Route) (domain.Route, error)
}

func (f *fakeRouteRepository) Create(ctx context.Context, route domain.Route) (domain.Route, error) {
	return f.createFunc(ctx, route)
}

func (f *fakeRouteRepository) FindByID(ctx context.Context, id uint) (domain.Route, error) {
	return domain.Route{}, nil
}

func (f *fakeRouteRepository) FindAll(ctx context.Context) ([]domain.Route, error) {
	return nil, nil
}

func (f *fakeRouteRepository) Update(ctx context.Context, route domain.Route) (domain.Route, error) {
	return route, nil
}

func (f *fakeRouteRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

type fakeAirportFinder struct {
	airports map[uint]domain.Airport
}

func (f *fakeAirportFinder) FindByID(ctx context.Context, id uint) (domain.Airport, error) {
	airport, ok := f.airports[id]
	if !ok {
		return domain.Airport{}, repository.ErrAirportNotFound
	}

	return airport, nil
}

func TestRouteService_CreateRoute(t *testing.T) {
	airports := &fakeAirportFinder{
		airports: map[uint]domain.Airport{
			1: {ID: 1, Name: "JFK", LocationCity: "New York"},
			2: {ID: 2, Name: "LHR", LocationCity: "London"},
		},
	}

	t.Run("rejects identical endpoints", func(t *testing.T) {
		svc := NewRouteService(&fakeRouteRepository{}, airports)

		_, err := svc.CreateRoute(context.Background(), 1, 1, 5000)

		assert.ErrorIs(t, err, ErrSameAirport)
	})

	t.Run("rejects a non-positive distance", func(t *testing.T) {
		svc := NewRouteService(&fakeRouteRepository{}, airports)

		_, err := svc.CreateRoute(context.Background(), 1, 2, 0)

		assert.ErrorIs(t, err, ErrInvalidDistance)
	})

	t.Run("rejects unknown airports", func(t *testing.T) {
		svc := NewRouteService(&fakeRouteRepository{}, airports)

		_, err := svc.CreateRoute(context.Background(), 1, 99, 5000)

		assert.ErrorIs(t, err, ErrAirportNotFound)
	})

	t.Run("creates a route between existing airports", func(t *testing.T) {
		repo := &fakeRouteRepository{
			createFunc: func(ctx context.Context, route domain.Route) (domain.Route, error) {
				require.Equal(t, uint(1), route.Source.ID)
				require.Equal(t, uint(2), route.Destination.ID)
				require.Equal(t, 5500, route.Distance)

				route.ID = 1

				return route, nil
			},
		}
		svc := NewRouteService(repo, airports)

		route, err := svc.CreateRoute(context.Background(), 1, 2, 5500)

		require.NoError(t, err)
		assert.Equal(t, uint(1), route.ID)
		assert.Equal(t, "New York -> London", route.Info())
	})

	t.Run("allows the reverse direction of an existing route", func(t *testing.T) {
		repo := &fakeRouteRepository{
			createFunc: func(ctx context.Context, route domain.Route) (domain.Route, error) {
				return route, nil
			},
		}
		svc := NewRouteService(repo, airports)

		_, err := svc.CreateRoute(context.Background(), 2, 1, 5500)

		assert.NoError(t, err)
	})
}
