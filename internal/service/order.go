package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/repository"
	"github.com/vkhomich/airport-api/internal/repository/dao"
)

var (
	ErrOrderNotFound = repository.ErrOrderNotFound
	ErrSeatTaken     = repository.ErrSeatTaken
	ErrEmptyOrder    = errors.New("order must contain at least one ticket")
)

// SeatTakenError carries the conflicting coordinate up from the
// storage layer.
type SeatTakenError = dao.SeatTakenError

type OrderRepository interface {
	Create(ctx context.Context, userID uint, tickets []domain.TicketRequest) (domain.Order, error)
	FindByIDForUser(ctx context.Context, userID, orderID uint) (domain.Order, error)
	FindAllByUserID(ctx context.Context, userID uint, limit, offset int) ([]domain.Order, int64, error)
	DeleteForUser(ctx context.Context, userID, orderID uint) error
}

type OrderFlightRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Flight, error)
}

type OrderService struct {
	repo       OrderRepository
	flightRepo OrderFlightRepository
}

func NewOrderService(repo OrderRepository, flightRepo OrderFlightRepository) *OrderService {
	return &OrderService{
		repo:       repo,
		flightRepo: flightRepo,
	}
}

// CreateOrder books an atomic batch of seats for one user. Every ticket
// request is validated against its flight's seat geometry before any
// write; failures are aggregated per ticket index so nothing is
// partially applied. Seat uniqueness is left to the storage layer's
// compound constraint; the losing side of a race gets a SeatTakenError
// and the whole order rolls back. Conflicts are surfaced, never retried
// here.
func (s *OrderService) CreateOrder(ctx context.Context, userID uint, tickets []domain.TicketRequest) (domain.Order, error) {
	if len(tickets) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}

	flights := make(map[uint]domain.Flight)
	errs := validation.Errors{}

	for i, t := range tickets {
		flight, ok := flights[t.FlightID]
		if !ok {
			found, err := s.flightRepo.FindByID(ctx, t.FlightID)
			if err != nil {
				if errors.Is(err, repository.ErrFlightNotFound) {
					errs["tickets."+strconv.Itoa(i)] = fmt.Errorf("flight %d not found", t.FlightID)
					continue
				}

				return domain.Order{}, fmt.Errorf("s.flightRepo.FindByID -> %w", err)
			}

			flights[t.FlightID] = found
			flight = found
		}

		if err := domain.ValidateSeat(flight.Airplane, t.Row, t.Seat); err != nil {
			errs["tickets."+strconv.Itoa(i)] = err
		}
	}

	if err := errs.Filter(); err != nil {
		return domain.Order{}, err
	}

	created, err := s.repo.Create(ctx, userID, tickets)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uint) (domain.Order, error) {
	order, err := s.repo.FindByIDForUser(ctx, userID, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.FindByIDForUser -> %w", err)
	}

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID uint, limit, offset int) ([]domain.Order, int64, error) {
	orders, total, err := s.repo.FindAllByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.FindAllByUserID -> %w", err)
	}

	return orders, total, nil
}

// DeleteOrder atomically removes the order and its tickets, freeing
// the seats. Ownership is the authorization boundary: a non-owner gets
// ErrOrderNotFound rather than a forbidden error.
func (s *OrderService) DeleteOrder(ctx context.Context, userID, orderID uint) error {
	if err := s.repo.DeleteForUser(ctx, userID, orderID); err != nil {
		return fmt.Errorf("s.repo.DeleteForUser -> %w", err)
	}

	return nil
}
