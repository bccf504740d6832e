package dao

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrRouteExists   = errors.New("route already exists")
	ErrRouteNotFound = errors.New("route not found")
)

type Route struct {
	ID uint `gorm:"primaryKey"`

	SourceID uint    `gorm:"not null;uniqueIndex:idx_routes_source_destination"`
	Source   Airport `gorm:"constraint:OnDelete:CASCADE"`

	DestinationID uint    `gorm:"not null;uniqueIndex:idx_routes_source_destination"`
	Destination   Airport `gorm:"constraint:OnDelete:CASCADE"`

	Distance int `gorm:"not null"`
}

type RouteDAO struct {
	db *gorm.DB
}

func NewRouteDAO(db *gorm.DB) *RouteDAO {
	return &RouteDAO{
		db: db,
	}
}

func (d *RouteDAO) Insert(ctx context.Context, route Route) (Route, error) {
	result := d.db.WithContext(ctx).Create(&route)
	if result.Error != nil {
		return Route{}, translateRouteErr(result.Error)
	}

	return d.FindByID(ctx, route.ID)
}

func (d *RouteDAO) FindByID(ctx context.Context, id uint) (Route, error) {
	var route Route

	result := d.db.WithContext(ctx).
		Preload("Source").
		Preload("Destination").
		First(&route, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Route{}, ErrRouteNotFound
		}

		return Route{}, result.Error
	}

	return route, nil
}

func (d *RouteDAO) FindAll(ctx context.Context) ([]Route, error) {
	var routes []Route

	result := d.db.WithContext(ctx).
		Preload("Source").
		Preload("Destination").
		Order("id").
		Find(&routes)
	if result.Error != nil {
		return nil, result.Error
	}

	return routes, nil
}

func (d *RouteDAO) Update(ctx context.Context, route Route) (Route, error) {
	result := d.db.WithContext(ctx).Model(&Route{ID: route.ID}).Updates(map[string]interface{}{
		"source_id":      route.SourceID,
		"destination_id": route.DestinationID,
		"distance":       route.Distance,
	})
	if result.Error != nil {
		return Route{}, translateRouteErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return Route{}, ErrRouteNotFound
	}

	return d.FindByID(ctx, route.ID)
}

func (d *RouteDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Route{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRouteNotFound
	}

	return nil
}

func translateRouteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, `"idx_routes_source_destination"`):
			return ErrRouteExists
		case pgErr.Code == pgerrcode.ForeignKeyViolation:
			return ErrAirportNotFound
		}
	}

	return err
}
