package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/repository"
)

var (
	ErrAirplaneTypeNameExists = repository.ErrAirplaneTypeNameExists
	ErrAirplaneTypeNotFound   = repository.ErrAirplaneTypeNotFound
	ErrAirplaneNameExists     = repository.ErrAirplaneNameExists
	ErrAirplaneNotFound       = repository.ErrAirplaneNotFound
	ErrInvalidSeatGeometry    = errors.New("rows and seats_in_row must be at least 1")
)

type AirplaneRepository interface {
	CreateType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error)
	FindTypeByID(ctx context.Context, id uint) (domain.AirplaneType, error)
	FindAllTypes(ctx context.Context) ([]domain.AirplaneType, error)
	UpdateType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error)
	DeleteType(ctx context.Context, id uint) error
	Create(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error)
	FindByID(ctx context.Context, id uint) (domain.Airplane, error)
	FindAll(ctx context.Context) ([]domain.Airplane, error)
	Update(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error)
	Delete(ctx context.Context, id uint) error
}

type AirplaneService struct {
	repo AirplaneRepository
}

func NewAirplaneService(repo AirplaneRepository) *AirplaneService {
	return &AirplaneService{
		repo: repo,
	}
}

func (s *AirplaneService) CreateType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error) {
	created, err := s.repo.CreateType(ctx, airplaneType)
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("s.repo.CreateType -> %w", err)
	}

	return created, nil
}

func (s *AirplaneService) GetType(ctx context.Context, id uint) (domain.AirplaneType, error) {
	airplaneType, err := s.repo.FindTypeByID(ctx, id)
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("s.repo.FindTypeByID -> %w", err)
	}

	return airplaneType, nil
}

func (s *AirplaneService) ListTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	types, err := s.repo.FindAllTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllTypes -> %w", err)
	}

	return types, nil
}

func (s *AirplaneService) UpdateType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error) {
	updated, err := s.repo.UpdateType(ctx, airplaneType)
	if err != nil {
		return domain.AirplaneType{}, fmt.Errorf("s.repo.UpdateType -> %w", err)
	}

	return updated, nil
}

func (s *AirplaneService) DeleteType(ctx context.Context, id uint) error {
	if err := s.repo.DeleteType(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteType -> %w", err)
	}

	return nil
}

// CreateAirplane guards the seat-inventory assumptions: an airplane
// always has a positive seat geometry and an existing type.
func (s *AirplaneService) CreateAirplane(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	if airplane.Rows < 1 || airplane.SeatsInRow < 1 {
		return domain.Airplane{}, ErrInvalidSeatGeometry
	}

	if _, err := s.repo.FindTypeByID(ctx, airplane.AirplaneType.ID); err != nil {
		return domain.Airplane{}, fmt.Errorf("s.repo.FindTypeByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, airplane)
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AirplaneService) GetAirplane(ctx context.Context, id uint) (domain.Airplane, error) {
	airplane, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return airplane, nil
}

func (s *AirplaneService) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	airplanes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return airplanes, nil
}

func (s *AirplaneService) UpdateAirplane(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	if airplane.Rows < 1 || airplane.SeatsInRow < 1 {
		return domain.Airplane{}, ErrInvalidSeatGeometry
	}

	updated, err := s.repo.Update(ctx, airplane)
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *AirplaneService) DeleteAirplane(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
