package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrFlightNotFound = errors.New("flight not found")

// ticketsAvailableExpr derives the advisory availability count from the
// airplane geometry and the sold tickets. The compound unique index on
// tickets is what actually arbitrates concurrent bookings.
const ticketsAvailableExpr = "flights.*, airplanes.rows * airplanes.seats_in_row - " +
	"(SELECT COUNT(*) FROM tickets WHERE tickets.flight_id = flights.id) AS tickets_available"

type Flight struct {
	ID uint `gorm:"primaryKey"`

	RouteID uint  `gorm:"not null;index"`
	Route   Route `gorm:"constraint:OnDelete:CASCADE"`

	AirplaneID uint     `gorm:"not null"`
	Airplane   Airplane `gorm:"constraint:OnDelete:CASCADE"`

	Crew []Crew `gorm:"many2many:flight_crew;"`

	DepartureTime time.Time `gorm:"not null;index"`
	ArrivalTime   time.Time `gorm:"not null;index"`

	Tickets []Ticket `gorm:"foreignKey:FlightID"`

	TicketsAvailable int `gorm:"->;-:migration"`
}

// FlightFilter narrows flight listings. All set fields apply conjunctively.
// Date fields match by calendar date, not exact timestamp.
type FlightFilter struct {
	SourceIDs      []uint
	DestinationIDs []uint
	DepartureDate  *time.Time
	ArrivalDate    *time.Time
}

type FlightDAO struct {
	db *gorm.DB
}

func NewFlightDAO(db *gorm.DB) *FlightDAO {
	return &FlightDAO{
		db: db,
	}
}

func (d *FlightDAO) Insert(ctx context.Context, flight Flight) (Flight, error) {
	// Omit("Crew.*") links existing crew rows without upserting them.
	result := d.db.WithContext(ctx).Omit("Crew.*").Create(&flight)
	if result.Error != nil {
		return Flight{}, translateFlightErr(result.Error)
	}

	return d.FindByID(ctx, flight.ID)
}

func (d *FlightDAO) FindByID(ctx context.Context, id uint) (Flight, error) {
	var flight Flight

	result := d.db.WithContext(ctx).
		Select(ticketsAvailableExpr).
		Joins("JOIN airplanes ON airplanes.id = flights.airplane_id").
		Preload("Route.Source").
		Preload("Route.Destination").
		Preload("Airplane.AirplaneType").
		Preload("Crew").
		Preload("Tickets").
		First(&flight, "flights.id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Flight{}, ErrFlightNotFound
		}

		return Flight{}, result.Error
	}

	return flight, nil
}

func (d *FlightDAO) FindAll(ctx context.Context, filter FlightFilter, limit, offset int) ([]Flight, int64, error) {
	query := d.db.WithContext(ctx).Model(&Flight{}).
		Joins("JOIN routes ON routes.id = flights.route_id").
		Joins("JOIN airplanes ON airplanes.id = flights.airplane_id")

	if len(filter.SourceIDs) > 0 {
		query = query.Where("routes.source_id IN ?", filter.SourceIDs)
	}
	if len(filter.DestinationIDs) > 0 {
		query = query.Where("routes.destination_id IN ?", filter.DestinationIDs)
	}
	if filter.DepartureDate != nil {
		query = query.Where("flights.departure_time::date = ?", filter.DepartureDate.Format("2006-01-02"))
	}
	if filter.ArrivalDate != nil {
		query = query.Where("flights.arrival_time::date = ?", filter.ArrivalDate.Format("2006-01-02"))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var flights []Flight
	result := query.
		Select(ticketsAvailableExpr).
		Preload("Route.Source").
		Preload("Route.Destination").
		Preload("Airplane.AirplaneType").
		Preload("Crew").
		Order("flights.id").
		Limit(limit).
		Offset(offset).
		Find(&flights)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return flights, total, nil
}

func (d *FlightDAO) Update(ctx context.Context, flight Flight) (Flight, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Flight{ID: flight.ID}).Updates(map[string]interface{}{
			"route_id":       flight.RouteID,
			"airplane_id":    flight.AirplaneID,
			"departure_time": flight.DepartureTime,
			"arrival_time":   flight.ArrivalTime,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrFlightNotFound
		}

		if len(flight.Crew) > 0 {
			crew := make([]Crew, len(flight.Crew))
			copy(crew, flight.Crew)
			if err := tx.Model(&Flight{ID: flight.ID}).Association("Crew").Replace(crew); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Flight{}, translateFlightErr(err)
	}

	return d.FindByID(ctx, flight.ID)
}

func (d *FlightDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Select("Crew").Delete(&Flight{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFlightNotFound
	}

	return nil
}

func translateFlightErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		switch {
		case pgErr.ConstraintName == "fk_flights_route":
			return ErrRouteNotFound
		case pgErr.ConstraintName == "fk_flights_airplane":
			return ErrAirplaneNotFound
		default:
			return ErrCrewNotFound
		}
	}

	return err
}
