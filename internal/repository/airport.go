package repository

import (
	"context"
	"fmt"

	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/repository/dao"
)

var (
	ErrAirportNameExists = dao.ErrAirportNameExists
	ErrAirportNotFound   = dao.ErrAirportNotFound
)

type AirportDAO interface {
	Insert(ctx context.Context, airport dao.Airport) (dao.Airport, error)
	FindByID(ctx context.Context, id uint) (dao.Airport, error)
	FindAll(ctx context.Context) ([]dao.Airport, error)
	Update(ctx context.Context, airport dao.Airport) (dao.Airport, error)
	Delete(ctx context.Context, id uint) error
}

type AirportRepository struct {
	dao AirportDAO
}

func NewAirportRepository(dao AirportDAO) *AirportRepository {
	return &AirportRepository{
		dao: dao,
	}
}

func (r *AirportRepository) Create(ctx context.Context, airport domain.Airport) (domain.Airport, error) {
	created, err := r.dao.Insert(ctx, airportDomainToDao(airport))
	if err != nil {
		return domain.Airport{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return airportDaoToDomain(created), nil
}

func (r *AirportRepository) FindByID(ctx context.Context, id uint) (domain.Airport, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Airport{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return airportDaoToDomain(found), nil
}

func (r *AirportRepository) FindAll(ctx context.Context) ([]domain.Airport, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	airports := make([]domain.Airport, len(found))
	for i, a := range found {
		airports[i] = airportDaoToDomain(a)
	}

	return airports, nil
}

func (r *AirportRepository) Update(ctx context.Context, airport domain.Airport) (domain.Airport, error) {
	updated, err := r.dao.Update(ctx, airportDomainToDao(airport))
	if err != nil {
		return domain.Airport{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return airportDaoToDomain(updated), nil
}

func (r *AirportRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func airportDomainToDao(a domain.Airport) dao.Airport {
	return dao.Airport{
		ID:             a.ID,
		Name:           a.Name,
		LocationCity:   a.LocationCity,
		ClosestBigCity: a.ClosestBigCity,
	}
}

func airportDaoToDomain(a dao.Airport) domain.Airport {
	return domain.Airport{
		ID:             a.ID,
		Name:           a.Name,
		LocationCity:   a.LocationCity,
		ClosestBigCity: a.ClosestBigCity,
	}
}
