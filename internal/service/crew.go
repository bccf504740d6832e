package service

import (
	"context"
	"fmt"

	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/repository"
)

var ErrCrewNotFound = repository.ErrCrewNotFound

type CrewRepository interface {
	Create(ctx context.Context, crew domain.Crew) (domain.Crew, error)
	FindByID(ctx context.Context, id uint) (domain.Crew, error)
	FindAll(ctx context.Context) ([]domain.Crew, error)
	Update(ctx context.Context, crew domain.Crew) (domain.Crew, error)
	Delete(ctx context.Context, id uint) error
}

type CrewService struct {
	repo CrewRepository
}

func NewCrewService(repo CrewRepository) *CrewService {
	return &CrewService{
		repo: repo,
	}
}

func (s *CrewService) CreateCrew(ctx context.Context, crew domain.Crew) (domain.Crew, error) {
	created, err := s.repo.Create(ctx, crew)
	if err != nil {
		return domain.Crew{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CrewService) GetCrew(ctx context.Context, id uint) (domain.Crew, error) {
	crew, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Crew{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return crew, nil
}

func (s *CrewService) ListCrew(ctx context.Context) ([]domain.Crew, error) {
	crew, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return crew, nil
}

func (s *CrewService) UpdateCrew(ctx context.Context, crew domain.Crew) (domain.Crew, error) {
	updated, err := s.repo.Update(ctx, crew)
	if err != nil {
		return domain.Crew{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *CrewService) DeleteCrew(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
