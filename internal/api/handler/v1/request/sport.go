package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateSportRequest struct {
	Name string `json:"name"`
}

func (req *CreateSportRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type CreateSportLevelRequest struct {
	Name string `json:"name"`
}

func (req *CreateSportLevelRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}
