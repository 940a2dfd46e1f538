package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateCategoryRequest struct {
	SportID   uint     `json:"sport_id"`
	Name      string   `json:"name"`
	MinAge    *int     `json:"min_age,omitempty"`
	MaxAge    *int     `json:"max_age,omitempty"`
	MinWeight *float64 `json:"min_weight,omitempty"`
	MaxWeight *float64 `json:"max_weight,omitempty"`
	GenderID  uint     `json:"gender_id"`
	LevelID   *uint    `json:"level_id,omitempty"`
}

func (req *CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SportID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.GenderID, validation.Required),
	)
}

type UpdateCategoryRequest struct {
	SportID   uint     `json:"sport_id"`
	Name      string   `json:"name"`
	MinAge    *int     `json:"min_age,omitempty"`
	MaxAge    *int     `json:"max_age,omitempty"`
	MinWeight *float64 `json:"min_weight,omitempty"`
	MaxWeight *float64 `json:"max_weight,omitempty"`
	GenderID  uint     `json:"gender_id"`
	LevelID   *uint    `json:"level_id,omitempty"`
}

func (req *UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SportID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.GenderID, validation.Required),
	)
}
