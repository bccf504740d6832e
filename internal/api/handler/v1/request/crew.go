package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateCrewRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// Photo is a path reference; the upload itself is handled elsewhere.
	Photo string `json:"photo"`
}

func (req *CreateCrewRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Photo, validation.Length(0, 255)),
	)
}

type UpdateCrewRequest = CreateCrewRequest
