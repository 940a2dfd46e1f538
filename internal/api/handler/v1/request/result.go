package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateResultRequest struct {
	EventID      uint   `json:"event_id"`
	CategoryID   uint   `json:"category_id"`
	CompetitorID uint   `json:"competitor_id"`
	Position     int    `json:"position"`
	Notes        string `json:"notes,omitempty"`
}

func (req *CreateResultRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.CategoryID, validation.Required),
		validation.Field(&req.CompetitorID, validation.Required),
		validation.Field(&req.Position, validation.Required, validation.Min(1)),
		validation.Field(&req.Notes, validation.Length(0, 1000)),
	)
}

type UpdateResultRequest struct {
	Position int    `json:"position"`
	Notes    string `json:"notes,omitempty"`
}

func (req *UpdateResultRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Position, validation.Required, validation.Min(1)),
		validation.Field(&req.Notes, validation.Length(0, 1000)),
	)
}
