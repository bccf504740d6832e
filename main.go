package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/vkhomich/airport-api/cmd/app"
)

// @title           Airport API
// @description     A flight booking API: airports, routes, airplanes, crew, flights and ticket orders.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
