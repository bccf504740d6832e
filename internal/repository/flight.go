package repository

import (
	"context"
	"fmt"

	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/repository/dao"
)

var ErrFlightNotFound = dao.ErrFlightNotFound

type FlightDAO interface {
	Insert(ctx context.Context, flight dao.Flight) (dao.Flight, error)
	FindByID(ctx context.Context, id uint) (dao.Flight, error)
	FindAll(ctx context.Context, filter dao.FlightFilter, limit, offset int) ([]dao.Flight, int64, error)
	Update(ctx context.Context, flight dao.Flight) (dao.Flight, error)
	Delete(ctx context.Context, id uint) error
}

type FlightRepository struct {
	dao FlightDAO
}

func NewFlightRepository(dao FlightDAO) *FlightRepository {
	return &FlightRepository{
		dao: dao,
	}
}

func (r *FlightRepository) Create(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	created, err := r.dao.Insert(ctx, flightDomainToDao(flight))
	if err != nil {
		return domain.Flight{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return flightDaoToDomain(created), nil
}

func (r *FlightRepository) FindByID(ctx context.Context, id uint) (domain.Flight, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return flightDaoToDomain(found), nil
}

func (r *FlightRepository) FindAll(ctx context.Context, filter domain.FlightFilter, limit, offset int) ([]domain.Flight, int64, error) {
	found, total, err := r.dao.FindAll(ctx, dao.FlightFilter{
		SourceIDs:      filter.SourceIDs,
		DestinationIDs: filter.DestinationIDs,
		DepartureDate:  filter.DepartureDate,
		ArrivalDate:    filter.ArrivalDate,
	}, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	flights := make([]domain.Flight, len(found))
	for i, f := range found {
		flights[i] = flightDaoToDomain(f)
	}

	return flights, total, nil
}

func (r *FlightRepository) Update(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	updated, err := r.dao.Update(ctx, flightDomainToDao(flight))
	if err != nil {
		return domain.Flight{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return flightDaoToDomain(updated), nil
}

func (r *FlightRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func flightDomainToDao(f domain.Flight) dao.Flight {
	crew := make([]dao.Crew, len(f.Crew))
	for i, c := range f.Crew {
		crew[i] = dao.Crew{ID: c.ID}
	}

	return dao.Flight{
		ID:            f.ID,
		RouteID:       f.Route.ID,
		AirplaneID:    f.Airplane.ID,
		Crew:          crew,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
	}
}

func flightDaoToDomain(f dao.Flight) domain.Flight {
	soldSeats := make([]domain.SeatCoordinate, len(f.Tickets))
	for i, t := range f.Tickets {
		soldSeats[i] = domain.SeatCoordinate{Row: t.Row, Seat: t.Seat}
	}

	return domain.Flight{
		ID:               f.ID,
		Route:            routeDaoToDomain(f.Route),
		Airplane:         airplaneDaoToDomain(f.Airplane),
		Crew:             crewDaosToDomain(f.Crew),
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		TicketsAvailable: f.TicketsAvailable,
		SoldSeats:        soldSeats,
	}
}
