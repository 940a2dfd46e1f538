package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentCancelled:
		return true
	}

	return false
}

// CanTransitionTo reports whether the payment status may move to next.
// CANCELLED is terminal.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s == next {
		return true
	}

	switch s {
	case PaymentPending:
		return next == PaymentPaid || next == PaymentCancelled
	case PaymentPaid:
		return next == PaymentCancelled
	}

	return false
}

// Inscription registers a competitor into one category of an event.
// One inscription per (competitor, event).
type Inscription struct {
	ID            uint          `json:"id"`
	CompetitorID  uint          `json:"competitor_id"`
	EventID       uint          `json:"event_id"`
	CategoryID    uint          `json:"category_id"`
	RegisterDate  time.Time     `json:"register_date"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}
