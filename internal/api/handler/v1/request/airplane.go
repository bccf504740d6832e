package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateAirplaneTypeRequest struct {
	Name string `json:"name"`
}

func (req *CreateAirplaneTypeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
	)
}

type UpdateAirplaneTypeRequest = CreateAirplaneTypeRequest

type CreateAirplaneRequest struct {
	Name           string `json:"name"`
	Rows           int    `json:"rows"`
	SeatsInRow     int    `json:"seats_in_row"`
	AirplaneTypeID uint   `json:"airplane_type"`
}

func (req *CreateAirplaneRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Rows, validation.Required, validation.Min(1)),
		validation.Field(&req.SeatsInRow, validation.Required, validation.Min(1)),
		validation.Field(&req.AirplaneTypeID, validation.Required),
	)
}

type UpdateAirplaneRequest = CreateAirplaneRequest
