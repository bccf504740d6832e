package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateRouteRequest struct {
	SourceID      uint `json:"source"`
	DestinationID uint `json:"destination"`
	Distance      int  `json:"distance"`
}

func (req *CreateRouteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SourceID, validation.Required),
		validation.Field(&req.DestinationID, validation.Required),
		validation.Field(&req.Distance, validation.Required, validation.Min(1)),
	)
}

type UpdateRouteRequest = CreateRouteRequest
