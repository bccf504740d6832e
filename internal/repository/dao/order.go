package dao

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrSeatTaken     = errors.New("seat already taken")
)

// SeatTakenError reports the losing side of a booking race: the compound
// unique index on (flight_id, row, seat) rejected the insert.
type SeatTakenError struct {
	FlightID uint
	Row      int
	Seat     int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat (row %d, seat %d) on flight %d is already taken", e.Row, e.Seat, e.FlightID)
}

func (e *SeatTakenError) Unwrap() error {
	return ErrSeatTaken
}

type Ticket struct {
	ID uint `gorm:"primaryKey"`

	FlightID uint   `gorm:"not null;uniqueIndex:idx_tickets_flight_row_seat"`
	Flight   Flight `gorm:"constraint:OnDelete:CASCADE"`

	OrderID uint `gorm:"not null;index"`

	Row  int `gorm:"not null;uniqueIndex:idx_tickets_flight_row_seat"`
	Seat int `gorm:"not null;uniqueIndex:idx_tickets_flight_row_seat"`
}

type Order struct {
	ID uint `gorm:"primaryKey"`

	UserID uint `gorm:"not null;index"`
	User   User `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`

	Tickets []Ticket `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderDAO struct {
	db *gorm.DB
}

func NewOrderDAO(db *gorm.DB) *OrderDAO {
	return &OrderDAO{
		db: db,
	}
}

// Insert persists the order and all its tickets in one transaction.
// Any failed ticket insert rolls the whole order back.
func (d *OrderDAO) Insert(ctx context.Context, order Order, tickets []Ticket) (Order, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range tickets {
			tickets[i].OrderID = order.ID
			if err := tx.Create(&tickets[i]).Error; err != nil {
				return translateTicketErr(err, tickets[i])
			}
		}

		return nil
	})
	if err != nil {
		return Order{}, err
	}

	order.Tickets = tickets

	return order, nil
}

func (d *OrderDAO) FindByIDForUser(ctx context.Context, userID, orderID uint) (Order, error) {
	var order Order

	result := d.db.WithContext(ctx).
		Preload("Tickets.Flight.Route.Source").
		Preload("Tickets.Flight.Route.Destination").
		Preload("Tickets.Flight.Airplane.AirplaneType").
		First(&order, "id = ? AND user_id = ?", orderID, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Order{}, ErrOrderNotFound
		}

		return Order{}, result.Error
	}

	return order, nil
}

func (d *OrderDAO) FindAllByUserID(ctx context.Context, userID uint, limit, offset int) ([]Order, int64, error) {
	query := d.db.WithContext(ctx).Model(&Order{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []Order
	result := query.
		Preload("Tickets.Flight.Route.Source").
		Preload("Tickets.Flight.Route.Destination").
		Preload("Tickets.Flight.Airplane.AirplaneType").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return orders, total, nil
}

// DeleteForUser removes the order and its tickets in one transaction,
// freeing the seats. A non-owner gets ErrOrderNotFound, same as a
// missing order.
func (d *OrderDAO) DeleteForUser(ctx context.Context, userID, orderID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order Order
		if err := tx.First(&order, "id = ? AND user_id = ?", orderID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}

			return err
		}

		if err := tx.Where("order_id = ?", order.ID).Delete(&Ticket{}).Error; err != nil {
			return err
		}

		return tx.Delete(&order).Error
	})
}

// CountTicketsByFlightID returns the number of sold seats for a flight.
func (d *OrderDAO) CountTicketsByFlightID(ctx context.Context, flightID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Ticket{}).Where("flight_id = ?", flightID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func translateTicketErr(err error, ticket Ticket) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, `"idx_tickets_flight_row_seat"`):
			return &SeatTakenError{
				FlightID: ticket.FlightID,
				Row:      ticket.Row,
				Seat:     ticket.Seat,
			}
		case pgErr.Code == pgerrcode.ForeignKeyViolation:
			return ErrFlightNotFound
		}
	}

	return err
}
