package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateEventRequest struct {
	SportID         uint      `json:"sport_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Country         string    `json:"country"`
	City            string    `json:"city"`
	Address         string    `json:"address,omitempty"`
	Logo            string    `json:"logo,omitempty"`
	RegistrationFee float64   `json:"registration_fee"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SportID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
		validation.Field(&req.Country, validation.Required),
		validation.Field(&req.City, validation.Required),
	)
}

type UpdateEventRequest struct {
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Status          string    `json:"status"`
	Country         string    `json:"country"`
	City            string    `json:"city"`
	Address         string    `json:"address,omitempty"`
	Logo            string    `json:"logo,omitempty"`
	RegistrationFee float64   `json:"registration_fee"`
}

func (req *UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
		validation.Field(&req.Status, validation.Required,
			validation.In("PLANNED", "ONGOING", "COMPLETED", "CANCELLED")),
		validation.Field(&req.Country, validation.Required),
		validation.Field(&req.City, validation.Required),
	)
}

type UpdateEventStatusRequest struct {
	Status string `json:"status"`
}

func (req *UpdateEventStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required,
			validation.In("PLANNED", "ONGOING", "COMPLETED", "CANCELLED")),
	)
}

type AddEventCategoryRequest struct {
	CategoryID uint `json:"category_id"`
}

func (req *AddEventCategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CategoryID, validation.Required),
	)
}
