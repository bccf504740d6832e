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
	ErrAirportNameExists = errors.New("airport name already exists")
	ErrAirportNotFound   = errors.New("airport not found")
)

type Airport struct {
	ID uint `gorm:"primaryKey"`

	Name           string `gorm:"size:100;unique;not null"`
	LocationCity   string `gorm:"size:100;not null"`
	ClosestBigCity string `gorm:"size:100"`
}

type AirportDAO struct {
	db *gorm.DB
}

func NewAirportDAO(db *gorm.DB) *AirportDAO {
	return &AirportDAO{
		db: db,
	}
}

func (d *AirportDAO) Insert(ctx context.Context, airport Airport) (Airport, error) {
	result := d.db.WithContext(ctx).Create(&airport)
	if result.Error != nil {
		return Airport{}, translateAirportErr(result.Error)
	}

	return airport, nil
}

func (d *AirportDAO) FindByID(ctx context.Context, id uint) (Airport, error) {
	var airport Airport

	result := d.db.WithContext(ctx).First(&airport, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Airport{}, ErrAirportNotFound
		}

		return Airport{}, result.Error
	}

	return airport, nil
}

func (d *AirportDAO) FindAll(ctx context.Context) ([]Airport, error) {
	var airports []Airport

	result := d.db.WithContext(ctx).Order("id").Find(&airports)
	if result.Error != nil {
		return nil, result.Error
	}

	return airports, nil
}

func (d *AirportDAO) Update(ctx context.Context, airport Airport) (Airport, error) {
	result := d.db.WithContext(ctx).Model(&Airport{ID: airport.ID}).Updates(map[string]interface{}{
		"name":             airport.Name,
		"location_city":    airport.LocationCity,
		"closest_big_city": airport.ClosestBigCity,
	})
	if result.Error != nil {
		return Airport{}, translateAirportErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return Airport{}, ErrAirportNotFound
	}

	return d.FindByID(ctx, airport.ID)
}

func (d *AirportDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Airport{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAirportNotFound
	}

	return nil
}

func translateAirportErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, `unique constraint "uni_airports_name"`) {
		return ErrAirportNameExists
	}

	return err
}
