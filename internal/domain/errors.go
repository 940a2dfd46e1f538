package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error crossing a service boundary wraps exactly one of
// these so callers can classify failures with errors.Is regardless of which
// entity produced them.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrInvalidValue    = errors.New("invalid value")
	ErrDomainConflict  = errors.New("domain conflict")
	ErrIllegalState    = errors.New("illegal state")
	ErrOperationFailed = errors.New("operation failed")
)

// Business-rule violations raised by the rules engine.
var (
	ErrMinAgeAboveMax    = fmt.Errorf("%w: min age cannot be greater than max age", ErrInvalidValue)
	ErrMinWeightAboveMax = fmt.Errorf("%w: min weight cannot be greater than max weight", ErrInvalidValue)
	ErrStartNotBeforeEnd = fmt.Errorf("%w: start date must be before end date", ErrInvalidValue)
	ErrDatesInPast       = fmt.Errorf("%w: dates must be in the future", ErrInvalidValue)
	ErrNegativeFee       = fmt.Errorf("%w: registration fee cannot be negative", ErrInvalidValue)
	ErrInvalidPosition   = fmt.Errorf("%w: position must be a positive number", ErrInvalidValue)
	ErrNotesTooLong      = fmt.Errorf("%w: notes cannot exceed 1000 characters", ErrInvalidValue)

	ErrCategorySportMismatch = fmt.Errorf("%w: category does not belong to the event's sport", ErrDomainConflict)
	ErrGenderMismatch        = fmt.Errorf("%w: competitor gender is not compatible with the category", ErrDomainConflict)
	ErrAgeMismatch           = fmt.Errorf("%w: competitor age is not compatible with the category", ErrDomainConflict)
	ErrNotInscribed          = fmt.Errorf("%w: competitor is not registered for this event and category", ErrDomainConflict)

	ErrEventStarted             = fmt.Errorf("%w: cannot register after the event has started", ErrIllegalState)
	ErrInscriptionWindowClosed  = fmt.Errorf("%w: cannot register within 3 days of the event start", ErrIllegalState)
	ErrCancellationWindowClosed = fmt.Errorf("%w: cannot cancel within 24 hours of the event start", ErrIllegalState)
	ErrResultBeforeEventStart   = fmt.Errorf("%w: cannot record a result before the event starts", ErrIllegalState)
	ErrInvalidStatusTransition  = fmt.Errorf("%w: invalid payment status transition", ErrIllegalState)
)
