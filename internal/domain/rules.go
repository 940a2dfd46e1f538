package domain

import "time"

const (
	// Inscriptions close 3 days before the event starts.
	inscriptionLead = 3 * 24 * time.Hour
	// Cancellations close 24 hours before the event starts.
	cancellationLead = 24 * time.Hour

	maxNotesLength = 1000
)

// The rules below are pure: they take every input explicitly, including the
// evaluation instant, and report violations as errors wrapping one of the
// taxonomy kinds. Callers (the services) load entities and pick the clock.

func ValidateAgeRange(minAge, maxAge *int) error {
	if minAge != nil && maxAge != nil && *minAge > *maxAge {
		return ErrMinAgeAboveMax
	}

	return nil
}

func ValidateWeightRange(minWeight, maxWeight *float64) error {
	if minWeight != nil && maxWeight != nil && *minWeight > *maxWeight {
		return ErrMinWeightAboveMax
	}

	return nil
}

// ValidateDateRange checks an event's schedule at creation or update time:
// the range must be well-formed and lie entirely in the future.
func ValidateDateRange(start, end, now time.Time) error {
	if !start.Before(end) {
		return ErrStartNotBeforeEnd
	}

	if start.Before(now) {
		return ErrDatesInPast
	}

	return nil
}

func ValidateRegistrationFee(fee float64) error {
	if fee < 0 {
		return ErrNegativeFee
	}

	return nil
}

func ValidateCategoryEventSportMatch(category Category, event Event) error {
	if category.SportID != event.SportID {
		return ErrCategorySportMismatch
	}

	return nil
}

// ValidateInscriptionWindow gates inscription creation and update.
func ValidateInscriptionWindow(eventStart, now time.Time) error {
	if !now.Before(eventStart) {
		return ErrEventStarted
	}

	if !now.Before(eventStart.Add(-inscriptionLead)) {
		return ErrInscriptionWindowClosed
	}

	return nil
}

// ValidateCancellationWindow only applies when the inscription is moving to
// CANCELLED; any other status change is unaffected.
func ValidateCancellationWindow(eventStart time.Time, newStatus PaymentStatus, now time.Time) error {
	if newStatus == PaymentCancelled && !now.Before(eventStart.Add(-cancellationLead)) {
		return ErrCancellationWindowClosed
	}

	return nil
}

func ValidateCompetitorCategoryMatch(competitor User, category Category, now time.Time) error {
	if competitor.GenderID != category.GenderID {
		return ErrGenderMismatch
	}

	age := competitor.Age(now)
	if category.MinAge != nil && age < *category.MinAge {
		return ErrAgeMismatch
	}
	if category.MaxAge != nil && age > *category.MaxAge {
		return ErrAgeMismatch
	}

	return nil
}

func ValidatePosition(position int) error {
	if position <= 0 {
		return ErrInvalidPosition
	}

	return nil
}

func ValidateNotes(notes string) error {
	if len(notes) > maxNotesLength {
		return ErrNotesTooLong
	}

	return nil
}

// ValidateResultTiming: results may only be recorded once the event started.
func ValidateResultTiming(eventStart, now time.Time) error {
	if now.Before(eventStart) {
		return ErrResultBeforeEventStart
	}

	return nil
}
