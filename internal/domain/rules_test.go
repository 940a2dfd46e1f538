package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jglopez/tappedout-api/internal/domain"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func mustParse(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestValidateAgeRange(t *testing.T) {
	tests := []struct {
		name    string
		minAge  *int
		maxAge  *int
		wantErr error
	}{
		{"both nil", nil, nil, nil},
		{"only min", intPtr(18), nil, nil},
		{"only max", nil, intPtr(35), nil},
		{"valid range", intPtr(18), intPtr(35), nil},
		{"equal bounds", intPtr(21), intPtr(21), nil},
		{"inverted", intPtr(40), intPtr(18), domain.ErrMinAgeAboveMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateAgeRange(tt.minAge, tt.maxAge)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateWeightRange(t *testing.T) {
	tests := []struct {
		name      string
		minWeight *float64
		maxWeight *float64
		wantErr   error
	}{
		{"both nil", nil, nil, nil},
		{"valid range", floatPtr(60.5), floatPtr(77.0), nil},
		{"equal bounds", floatPtr(66.0), floatPtr(66.0), nil},
		{"inverted", floatPtr(93.0), floatPtr(66.0), domain.ErrMinWeightAboveMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateWeightRange(tt.minWeight, tt.maxWeight)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateDateRange(t *testing.T) {
	now := mustParse("2025-06-01T12:00:00Z")

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"valid future range", now.AddDate(0, 1, 0), now.AddDate(0, 1, 2), nil},
		{"start equals end", now.AddDate(0, 1, 0), now.AddDate(0, 1, 0), domain.ErrStartNotBeforeEnd},
		{"start after end", now.AddDate(0, 1, 2), now.AddDate(0, 1, 0), domain.ErrStartNotBeforeEnd},
		{"start in the past", now.AddDate(0, 0, -1), now.AddDate(0, 1, 0), domain.ErrDatesInPast},
		{"start exactly now", now, now.AddDate(0, 0, 2), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateDateRange(tt.start, tt.end, now)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateRegistrationFee(t *testing.T) {
	assert.NoError(t, domain.ValidateRegistrationFee(0))
	assert.NoError(t, domain.ValidateRegistrationFee(49.99))
	assert.ErrorIs(t, domain.ValidateRegistrationFee(-1), domain.ErrNegativeFee)
}

func TestValidateCategoryEventSportMatch(t *testing.T) {
	event := domain.Event{ID: 1, SportID: 7}

	assert.NoError(t, domain.ValidateCategoryEventSportMatch(domain.Category{SportID: 7}, event))
	assert.ErrorIs(t,
		domain.ValidateCategoryEventSportMatch(domain.Category{SportID: 8}, event),
		domain.ErrCategorySportMismatch)
}

func TestValidateInscriptionWindow(t *testing.T) {
	start := mustParse("2025-06-10T09:00:00Z")

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{"well before the deadline", start.Add(-30 * 24 * time.Hour), nil},
		{"one second before the deadline", start.Add(-3*24*time.Hour - time.Second), nil},
		{"exactly at the deadline", start.Add(-3 * 24 * time.Hour), domain.ErrInscriptionWindowClosed},
		{"inside the closed window", start.Add(-24 * time.Hour), domain.ErrInscriptionWindowClosed},
		{"exactly at event start", start, domain.ErrEventStarted},
		{"after event start", start.Add(time.Hour), domain.ErrEventStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateInscriptionWindow(start, tt.now)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCancellationWindow(t *testing.T) {
	start := mustParse("2025-06-10T09:00:00Z")

	tests := []struct {
		name      string
		newStatus domain.PaymentStatus
		now       time.Time
		wantErr   error
	}{
		{"cancel well in advance", domain.PaymentCancelled, start.Add(-10 * 24 * time.Hour), nil},
		{"cancel one second before the deadline", domain.PaymentCancelled, start.Add(-24*time.Hour - time.Second), nil},
		{"cancel exactly at the deadline", domain.PaymentCancelled, start.Add(-24 * time.Hour), domain.ErrCancellationWindowClosed},
		{"cancel inside the closed window", domain.PaymentCancelled, start.Add(-time.Hour), domain.ErrCancellationWindowClosed},
		{"paying is never gated", domain.PaymentPaid, start.Add(-time.Hour), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateCancellationWindow(start, tt.newStatus, tt.now)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCompetitorCategoryMatch(t *testing.T) {
	now := mustParse("2025-06-01T12:00:00Z")
	// Born 1995-06-15: 29 years old at the evaluation instant.
	competitor := domain.User{
		GenderID:    1,
		DateOfBirth: mustParse("1995-06-15T00:00:00Z"),
	}

	tests := []struct {
		name     string
		category domain.Category
		wantErr  error
	}{
		{"no bounds", domain.Category{GenderID: 1}, nil},
		{"inside age bracket", domain.Category{GenderID: 1, MinAge: intPtr(18), MaxAge: intPtr(35)}, nil},
		{"exactly min age", domain.Category{GenderID: 1, MinAge: intPtr(29)}, nil},
		{"exactly max age", domain.Category{GenderID: 1, MaxAge: intPtr(29)}, nil},
		{"too young", domain.Category{GenderID: 1, MinAge: intPtr(30)}, domain.ErrAgeMismatch},
		{"too old", domain.Category{GenderID: 1, MaxAge: intPtr(28)}, domain.ErrAgeMismatch},
		{"wrong gender", domain.Category{GenderID: 2}, domain.ErrGenderMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateCompetitorCategoryMatch(competitor, tt.category, now)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserAge(t *testing.T) {
	born := mustParse("2000-06-15T00:00:00Z")
	user := domain.User{DateOfBirth: born}

	assert.Equal(t, 24, user.Age(mustParse("2025-06-14T00:00:00Z")))
	assert.Equal(t, 25, user.Age(mustParse("2025-06-15T00:00:00Z")))
	assert.Equal(t, 25, user.Age(mustParse("2025-06-16T00:00:00Z")))
}

func TestValidatePosition(t *testing.T) {
	assert.NoError(t, domain.ValidatePosition(1))
	assert.NoError(t, domain.ValidatePosition(42))
	assert.ErrorIs(t, domain.ValidatePosition(0), domain.ErrInvalidPosition)
	assert.ErrorIs(t, domain.ValidatePosition(-3), domain.ErrInvalidPosition)
}

func TestValidateNotes(t *testing.T) {
	assert.NoError(t, domain.ValidateNotes(""))
	assert.NoError(t, domain.ValidateNotes("won by submission in round two"))

	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'a'
	}
	assert.ErrorIs(t, domain.ValidateNotes(string(long)), domain.ErrNotesTooLong)
}

func TestValidateResultTiming(t *testing.T) {
	start := mustParse("2025-06-10T09:00:00Z")

	assert.ErrorIs(t, domain.ValidateResultTiming(start, start.Add(-time.Minute)), domain.ErrResultBeforeEventStart)
	assert.NoError(t, domain.ValidateResultTiming(start, start))
	assert.NoError(t, domain.ValidateResultTiming(start, start.Add(time.Hour)))
}

func TestPaymentStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from domain.PaymentStatus
		to   domain.PaymentStatus
		want bool
	}{
		{domain.PaymentPending, domain.PaymentPending, true},
		{domain.PaymentPending, domain.PaymentPaid, true},
		{domain.PaymentPending, domain.PaymentCancelled, true},
		{domain.PaymentPaid, domain.PaymentPaid, true},
		{domain.PaymentPaid, domain.PaymentCancelled, true},
		{domain.PaymentPaid, domain.PaymentPending, false},
		{domain.PaymentCancelled, domain.PaymentCancelled, true},
		{domain.PaymentCancelled, domain.PaymentPending, false},
		{domain.PaymentCancelled, domain.PaymentPaid, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestEventStatusValid(t *testing.T) {
	assert.True(t, domain.EventPlanned.Valid())
	assert.True(t, domain.EventOngoing.Valid())
	assert.True(t, domain.EventCompleted.Valid())
	assert.True(t, domain.EventCancelled.Valid())
	assert.False(t, domain.EventStatus("POSTPONED").Valid())
}
