package repository

import (
	"context"
	"fmt"

	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/repository/dao"
)

var ErrCrewNotFound = dao.ErrCrewNotFound

type CrewDAO interface {
	Insert(ctx context.Context, crew dao.Crew) (dao.Crew, error)
	FindByID(ctx context.Context, id uint) (dao.Crew, error)
	FindByIDs(ctx context.Context, ids []uint) ([]dao.Crew, error)
	FindAll(ctx context.Context) ([]dao.Crew, error)
	Update(ctx context.Context, crew dao.Crew) (dao.Crew, error)
	Delete(ctx context.Context, id uint) error
}

type CrewRepository struct {
	dao CrewDAO
}

func NewCrewRepository(dao CrewDAO) *CrewRepository {
	return &CrewRepository{
		dao: dao,
	}
}

func (r *CrewRepository) Create(ctx context.Context, crew domain.Crew) (domain.Crew, error) {
	created, err := r.dao.Insert(ctx, crewDomainToDao(crew))
	if err != nil {
		return domain.Crew{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return crewDaoToDomain(created), nil
}

func (r *CrewRepository) FindByID(ctx context.Context, id uint) (domain.Crew, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Crew{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return crewDaoToDomain(found), nil
}

func (r *CrewRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Crew, error) {
	found, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByIDs -> %w", err)
	}

	return crewDaosToDomain(found), nil
}

func (r *CrewRepository) FindAll(ctx context.Context) ([]domain.Crew, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return crewDaosToDomain(found), nil
}

func (r *CrewRepository) Update(ctx context.Context, crew domain.Crew) (domain.Crew, error) {
	updated, err := r.dao.Update(ctx, crewDomainToDao(crew))
	if err != nil {
		return domain.Crew{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return crewDaoToDomain(updated), nil
}

func (r *CrewRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func crewDomainToDao(c domain.Crew) dao.Crew {
	return dao.Crew{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Photo:     c.Photo,
	}
}

func crewDaoToDomain(c dao.Crew) domain.Crew {
	return domain.Crew{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Photo:     c.Photo,
	}
}

func crewDaosToDomain(daos []dao.Crew) []domain.Crew {
	crew := make([]domain.Crew, len(daos))
	for i, c := range daos {
		crew[i] = crewDaoToDomain(c)
	}

	return crew
}
