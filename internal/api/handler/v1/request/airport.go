package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateAirportRequest struct {
	Name           string `json:"name"`
	LocationCity   string `json:"location_city"`
	ClosestBigCity string `json:"closest_big_city"`
}

func (req *CreateAirportRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.LocationCity, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.ClosestBigCity, validation.Length(0, 100)),
	)
}

type UpdateAirportRequest = CreateAirportRequest
