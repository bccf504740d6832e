package repository

import (
	"context"
	"fmt"

	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/repository/dao"
)

var (
	ErrAirplaneTypeNameExists = dao.ErrAirplaneTypeNameExists
	ErrAirplaneTypeNotFound   = dao.ErrAirplaneTypeNotFound
	ErrAirplaneNameExists     = dao.ErrAirplaneNameExists
	ErrAirplaneNotFound       = dao.ErrAirplaneNotFound
)

type AirplaneDAO interface {
	InsertType(ctx context.Context, airplaneType dao.AirplaneType) (dao.AirplaneType, error)
	FindTypeByID(ctx context.Context, id uint) (dao.AirplaneType, error)
	FindAllTypes(ctx context.Context) ([]dao.AirplaneType, error)
	UpdateType(ctx context.Context, airplaneType dao.AirplaneType) (dao.AirplaneType, error)
	DeleteType(ctx context.Context, id uint) error
	Insert(ctx context.Context, airplane dao.Airplane) (dao.Airplane, error)
	FindByID(ctx context.Context, id uint) (dao.Airplane, error)
	FindAll(ctx context.Context) ([]dao.Airplane, error)
	Update(ctx context.Context, airplane dao.Airplane) (dao.Airplane, error)
	Delete(ctx context.Context, id uint) error
}

type AirplaneRepository struct {
	dao AirplaneDAO
}

func NewAirplaneRepository(dao AirplaneDAO) *AirplaneRepository {
	return &AirplaneRepository{
		dao: dao,
	}
}

func (r *AirplaneRepository) CreateType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error) {
	created, err := r.dao.InsertType(ctx, dao.AirplaneType{Name: airplaneType.Name})
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("r.dao.InsertType -> %w", err)
	}

	return airplaneTypeDaoToDomain(created), nil
}

func (r *AirplaneRepository) FindTypeByID(ctx context.Context, id uint) (domain.AirplaneType, error) {
	found, err := r.dao.FindTypeByID(ctx, id)
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("r.dao.FindTypeByID -> %w", err)
	}

	return airplaneTypeDaoToDomain(found), nil
}

func (r *AirplaneRepository) FindAllTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	found, err := r.dao.FindAllTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllTypes -> %w", err)
	}

	types := make([]domain.AirplaneType, len(found))
	for i, t := range found {
		types[i] = airplaneTypeDaoToDomain(t)
	}

	return types, nil
}

func (r *AirplaneRepository) UpdateType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error) {
	updated, err := r.dao.UpdateType(ctx, dao.AirplaneType{ID: airplaneType.ID, Name: airplaneType.Name})
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("r.dao.UpdateType -> %w", err)
	}

	return airplaneTypeDaoToDomain(updated), nil
}

func (r *AirplaneRepository) DeleteType(ctx context.Context, id uint) error {
	if err := r.dao.DeleteType(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteType -> %w", err)
	}

	return nil
}

func (r *AirplaneRepository) Create(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	created, err := r.dao.Insert(ctx, airplaneDomainToDao(airplane))
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return airplaneDaoToDomain(created), nil
}

func (r *AirplaneRepository) FindByID(ctx context.Context, id uint) (domain.Airplane, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return airplaneDaoToDomain(found), nil
}

func (r *AirplaneRepository) FindAll(ctx context.Context) ([]domain.Airplane, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	airplanes := make([]domain.Airplane, len(found))
	for i, a := range found {
		airplanes[i] = airplaneDaoToDomain(a)
	}

	return airplanes, nil
}

func (r *AirplaneRepository) Update(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	updated, err := r.dao.Update(ctx, airplaneDomainToDao(airplane))
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return airplaneDaoToDomain(updated), nil
}

func (r *AirplaneRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func airplaneTypeDaoToDomain(t dao.AirplaneType) domain.AirplaneType {
	return domain.AirplaneType{
		ID:   t.ID,
		Name: t.Name,
	}
}

func airplaneDomainToDao(a domain.Airplane) dao.Airplane {
	return dao.Airplane{
		ID:             a.ID,
		Name:           a.Name,
		Rows:           a.Rows,
		SeatsInRow:     a.SeatsInRow,
		AirplaneTypeID: a.AirplaneType.ID,
	}
}

func airplaneDaoToDomain(a dao.Airplane) domain.Airplane {
	return domain.Airplane{
		ID:           a.ID,
		Name:         a.Name,
		Rows:         a.Rows,
		SeatsInRow:   a.SeatsInRow,
		AirplaneType: airplaneTypeDaoToDomain(a.AirplaneType),
	}
}
