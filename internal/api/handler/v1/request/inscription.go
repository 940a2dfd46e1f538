package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateInscriptionRequest struct {
	// CompetitorID is only honored for admins; everyone else registers
	// themselves.
	CompetitorID uint `json:"competitor_id,omitempty"`
	EventID      uint `json:"event_id"`
	CategoryID   uint `json:"category_id"`
}

func (req *CreateInscriptionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.CategoryID, validation.Required),
	)
}

type UpdateInscriptionRequest struct {
	CategoryID    uint   `json:"category_id,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
}

func (req *UpdateInscriptionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PaymentStatus,
			validation.In("PENDING", "PAID", "CANCELLED")),
	)
}
