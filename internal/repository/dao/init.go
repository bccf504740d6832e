package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Airport{},
		&AirplaneType{},
		&Airplane{},
		&Route{},
		&Crew{},
		&Flight{},
		&Order{},
		&Ticket{},
	)
}
