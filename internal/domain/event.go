package domain

import "time"

type EventStatus string

const (
	EventPlanned   EventStatus = "PLANNED"
	EventOngoing   EventStatus = "ONGOING"
	EventCompleted EventStatus = "COMPLETED"
	EventCancelled EventStatus = "CANCELLED"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventPlanned, EventOngoing, EventCompleted, EventCancelled:
		return true
	}

	return false
}

type Event struct {
	ID              uint        `json:"id"`
	SportID         uint        `json:"sport_id"`
	OrganizerID     uint        `json:"organizer_id"`
	Name            string      `json:"name"`
	Description     string      `json:"description,omitempty"`
	StartDate       time.Time   `json:"start_date"`
	EndDate         time.Time   `json:"end_date"`
	Status          EventStatus `json:"status"`
	Country         string      `json:"country"`
	City            string      `json:"city"`
	Address         string      `json:"address,omitempty"`
	Logo            string      `json:"logo,omitempty"`
	RegistrationFee float64     `json:"registration_fee"`
	CreatedAt       time.Time   `json:"created_at"`
}

// EventCategory attaches a category to an event. The category must belong
// to the event's sport.
type EventCategory struct {
	EventID    uint `json:"event_id"`
	CategoryID uint `json:"category_id"`
}
