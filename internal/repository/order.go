package repository

import (
	"context"
	"fmt"

	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/repository/dao"
)

var (
	ErrOrderNotFound = dao.ErrOrderNotFound
	ErrSeatTaken     = dao.ErrSeatTaken
)

type OrderDAO interface {
	Insert(ctx context.Context, order dao.Order, tickets []dao.Ticket) (dao.Order, error)
	FindByIDForUser(ctx context.Context, userID, orderID uint) (dao.Order, error)
	FindAllByUserID(ctx context.Context, userID uint, limit, offset int) ([]dao.Order, int64, error)
	DeleteForUser(ctx context.Context, userID, orderID uint) error
}

type OrderRepository struct {
	dao OrderDAO
}

func NewOrderRepository(dao OrderDAO) *OrderRepository {
	return &OrderRepository{
		dao: dao,
	}
}

// Create persists an order with all its tickets atomically. A seat
// conflict or any other failure leaves nothing behind.
func (r *OrderRepository) Create(ctx context.Context, userID uint, tickets []domain.TicketRequest) (domain.Order, error) {
	daoTickets := make([]dao.Ticket, len(tickets))
	for i, t := range tickets {
		daoTickets[i] = dao.Ticket{
			FlightID: t.FlightID,
			Row:      t.Row,
			Seat:     t.Seat,
		}
	}

	created, err := r.dao.Insert(ctx, dao.Order{UserID: userID}, daoTickets)
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return orderDaoToDomain(created), nil
}

func (r *OrderRepository) FindByIDForUser(ctx context.Context, userID, orderID uint) (domain.Order, error) {
	found, err := r.dao.FindByIDForUser(ctx, userID, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.FindByIDForUser -> %w", err)
	}

	return orderDaoToDomain(found), nil
}

func (r *OrderRepository) FindAllByUserID(ctx context.Context, userID uint, limit, offset int) ([]domain.Order, int64, error) {
	found, total, err := r.dao.FindAllByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.FindAllByUserID -> %w", err)
	}

	orders := make([]domain.Order, len(found))
	for i, o := range found {
		orders[i] = orderDaoToDomain(o)
	}

	return orders, total, nil
}

func (r *OrderRepository) DeleteForUser(ctx context.Context, userID, orderID uint) error {
	if err := r.dao.DeleteForUser(ctx, userID, orderID); err != nil {
		return fmt.Errorf("r.dao.DeleteForUser -> %w", err)
	}

	return nil
}

func orderDaoToDomain(o dao.Order) domain.Order {
	tickets := make([]domain.Ticket, len(o.Tickets))
	for i, t := range o.Tickets {
		flight := flightDaoToDomain(t.Flight)
		// The association is not always preloaded; the FK column is.
		flight.ID = t.FlightID

		tickets[i] = domain.Ticket{
			ID:     t.ID,
			Row:    t.Row,
			Seat:   t.Seat,
			Flight: flight,
		}
	}

	return domain.Order{
		ID:        o.ID,
		UserID:    o.UserID,
		CreatedAt: o.CreatedAt,
		Tickets:   tickets,
	}
}
