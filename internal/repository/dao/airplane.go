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
	ErrAirplaneTypeNameExists = errors.New("airplane type name already exists")
	ErrAirplaneTypeNotFound   = errors.New("airplane type not found")
	ErrAirplaneNameExists     = errors.New("airplane name already exists")
	ErrAirplaneNotFound       = errors.New("airplane not found")
)

type AirplaneType struct {
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"size:100;unique;not null"`
}

type Airplane struct {
	ID uint `gorm:"primaryKey"`

	Name       string `gorm:"size:100;unique;not null"`
	Rows       int    `gorm:"not null"`
	SeatsInRow int    `gorm:"not null"`

	AirplaneTypeID uint         `gorm:"not null"`
	AirplaneType   AirplaneType `gorm:"constraint:OnDelete:CASCADE"`
}

type AirplaneDAO struct {
	db *gorm.DB
}

func NewAirplaneDAO(db *gorm.DB) *AirplaneDAO {
	return &AirplaneDAO{
		db: db,
	}
}

func (d *AirplaneDAO) InsertType(ctx context.Context, airplaneType AirplaneType) (AirplaneType, error) {
	result := d.db.WithContext(ctx).Create(&airplaneType)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation {
			return AirplaneType{}, ErrAirplaneTypeNameExists
		}

		return AirplaneType{}, result.Error
	}

	return airplaneType, nil
}

func (d *AirplaneDAO) FindTypeByID(ctx context.Context, id uint) (AirplaneType, error) {
	var airplaneType AirplaneType

	result := d.db.WithContext(ctx).First(&airplaneType, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return AirplaneType{}, ErrAirplaneTypeNotFound
		}

		return AirplaneType{}, result.Error
	}

	return airplaneType, nil
}

func (d *AirplaneDAO) FindAllTypes(ctx context.Context) ([]AirplaneType, error) {
	var types []AirplaneType

	result := d.db.WithContext(ctx).Order("id").Find(&types)
	if result.Error != nil {
		return nil, result.Error
	}

	return types, nil
}

func (d *AirplaneDAO) UpdateType(ctx context.Context, airplaneType AirplaneType) (AirplaneType, error) {
	result := d.db.WithContext(ctx).
		Model(&AirplaneType{ID: airplaneType.ID}).
		Update("name", airplaneType.Name)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation {
			return AirplaneType{}, ErrAirplaneTypeNameExists
		}

		return AirplaneType{}, result.Error
	}
	if result.RowsAffected == 0 {
		return AirplaneType{}, ErrAirplaneTypeNotFound
	}

	return d.FindTypeByID(ctx, airplaneType.ID)
}

func (d *AirplaneDAO) DeleteType(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&AirplaneType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAirplaneTypeNotFound
	}

	return nil
}

func (d *AirplaneDAO) Insert(ctx context.Context, airplane Airplane) (Airplane, error) {
	result := d.db.WithContext(ctx).Create(&airplane)
	if result.Error != nil {
		return Airplane{}, translateAirplaneErr(result.Error)
	}

	return d.FindByID(ctx, airplane.ID)
}

func (d *AirplaneDAO) FindByID(ctx context.Context, id uint) (Airplane, error) {
	var airplane Airplane

	result := d.db.WithContext(ctx).Preload("AirplaneType").First(&airplane, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Airplane{}, ErrAirplaneNotFound
		}

		return Airplane{}, result.Error
	}

	return airplane, nil
}

func (d *AirplaneDAO) FindAll(ctx context.Context) ([]Airplane, error) {
	var airplanes []Airplane

	result := d.db.WithContext(ctx).Preload("AirplaneType").Order("id").Find(&airplanes)
	if result.Error != nil {
		return nil, result.Error
	}

	return airplanes, nil
}

func (d *AirplaneDAO) Update(ctx context.Context, airplane Airplane) (Airplane, error) {
	result := d.db.WithContext(ctx).Model(&Airplane{ID: airplane.ID}).Updates(map[string]interface{}{
		"name":             airplane.Name,
		"rows":             airplane.Rows,
		"seats_in_row":     airplane.SeatsInRow,
		"airplane_type_id": airplane.AirplaneTypeID,
	})
	if result.Error != nil {
		return Airplane{}, translateAirplaneErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return Airplane{}, ErrAirplaneNotFound
	}

	return d.FindByID(ctx, airplane.ID)
}

func (d *AirplaneDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Airplane{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAirplaneNotFound
	}

	return nil
}

func translateAirplaneErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, `unique constraint "uni_airplanes_name"`):
			return ErrAirplaneNameExists
		case pgErr.Code == pgerrcode.ForeignKeyViolation:
			return ErrAirplaneTypeNotFound
		}
	}

	return err
}
