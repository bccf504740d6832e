package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkhomich/airport-api/internal/domain"
)

type fakeFlightRepository struct {
	createFunc func(ctx context.Context, flight domain.Flight) (domain.Flight, error)
}

func (f *fakeFlightRepository) Create(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	return f.createFunc(ctx, flight)
}

func (f *fakeFlightRepository) FindByID(ctx context.Context, id uint) (domain.Flight, error) {
	return domain.Flight{}, nil
}

func (f *fakeFlightRepository) FindAll(ctx context.Context, filter domain.FlightFilter, limit, offset int) ([]domain.Flight, int64, error) {
	return nil, 0, nil
}

func (f *fakeFlightRepository) Update(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	return flight, nil
}

func (f *fakeFlightRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

type fakeRouteFinder struct {
	route domain.Route
}

func (f *fakeRouteFinder) FindByID(ctx context.Context, id uint) (domain.Route, error) {
	return f.route, nil
}

type fakeAirplaneFinder struct {
	airplane domain.Airplane
}

func (f *fakeAirplaneFinder) FindByID(ctx context.Context, id uint) (domain.Airplane, error) {
	return f.airplane, nil
}

type fakeCrewFinder struct {
	crew []domain.Crew
}

func (f *fakeCrewFinder) FindByIDs(ctx context.Context, ids []uint) ([]domain.Crew, error) {
	found := make([]domain.Crew, 0, len(ids))
	for _, c := range f.crew {
		for _, id := range ids {
			if c.ID == id {
				found = append(found, c)
			}
		}
	}

	return found, nil
}

func newTestFlightService(repo *fakeFlightRepository) *FlightService {
	return NewFlightService(
		repo,
		&fakeRouteFinder{route: domain.Route{ID: 1, Distance: 500}},
		&fakeAirplaneFinder{airplane: domain.Airplane{ID: 1, Rows: 10, SeatsInRow: 6}},
		&fakeCrewFinder{crew: []domain.Crew{
			{ID: 1, FirstName: "Amelia", LastName: "Earhart"},
			{ID: 2, FirstName: "Charles", LastName: "Lindbergh"},
		}},
	)
}

func TestFlightService_CreateFlight(t *testing.T) {
	departure := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	arrival := departure.Add(4 * time.Hour)

	t.Run("rejects arrival before departure", func(t *testing.T) {
		svc := newTestFlightService(&fakeFlightRepository{})

		_, err := svc.CreateFlight(context.Background(), 1, 1, []uint{1}, arrival, departure)

		assert.ErrorIs(t, err, ErrInvalidTimeWindow)
	})

	t.Run("rejects departure equal to arrival", func(t *testing.T) {
		svc := newTestFlightService(&fakeFlightRepository{})

		_, err := svc.CreateFlight(context.Background(), 1, 1, []uint{1}, departure, departure)

		assert.ErrorIs(t, err, ErrInvalidTimeWindow)
	})

	t.Run("rejects an empty crew", func(t *testing.T) {
		svc := newTestFlightService(&fakeFlightRepository{})

		_, err := svc.CreateFlight(context.Background(), 1, 1, nil, departure, arrival)

		assert.ErrorIs(t, err, ErrEmptyCrew)
	})

	t.Run("rejects unknown crew members", func(t *testing.T) {
		svc := newTestFlightService(&fakeFlightRepository{})

		_, err := svc.CreateFlight(context.Background(), 1, 1, []uint{1, 99}, departure, arrival)

		assert.ErrorIs(t, err, ErrCrewNotFound)
	})

	t.Run("creates a flight with resolved associations", func(t *testing.T) {
		repo := &fakeFlightRepository{
			createFunc: func(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
				require.Equal(t, uint(1), flight.Route.ID)
				require.Equal(t, uint(1), flight.Airplane.ID)
				require.Len(t, flight.Crew, 2)

				flight.ID = 1

				return flight, nil
			},
		}
		svc := newTestFlightService(repo)

		flight, err := svc.CreateFlight(context.Background(), 1, 1, []uint{1, 2}, departure, arrival)

		require.NoError(t, err)
		assert.Equal(t, uint(1), flight.ID)
	})

	// Overlapping flights on the same airplane are accepted. The schedule
	// is not arbitrated here.
	t.Run("allows overlapping flights on one airplane", func(t *testing.T) {
		created := 0
		repo := &fakeFlightRepository{
			createFunc: func(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
				created++

				return flight, nil
			},
		}
		svc := newTestFlightService(repo)

		_, err := svc.CreateFlight(context.Background(), 1, 1, []uint{1}, departure, arrival)
		require.NoError(t, err)

		_, err = svc.CreateFlight(context.Background(), 1, 1, []uint{1}, departure.Add(time.Hour), arrival.Add(time.Hour))
		require.NoError(t, err)

		assert.Equal(t, 2, created)
	})
}
