package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateGenderRequest struct {
	Name string `json:"name"`
}

func (req *CreateGenderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
	)
}

type CreateUserTypeRequest struct {
	Name string `json:"name"`
}

func (req *CreateUserTypeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
	)
}
