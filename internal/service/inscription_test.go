package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/service"
)

var (
	testNow        = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	testEventStart = testNow.Add(10 * 24 * time.Hour)

	adminCaller      = domain.Principal{UserID: 1, Role: domain.RoleAdmin}
	organizerCaller  = domain.Principal{UserID: 2, Role: domain.RoleOrganizer}
	competitorCaller = domain.Principal{UserID: 3, Role: domain.RoleCompetitor}
)

func newInscriptionFixture(t *testing.T, existing ...domain.Inscription) (*service.InscriptionService, *fakeInscriptionRepo, *fakeNotifier) {
	t.Helper()

	users := &fakeUserRepo{users: map[uint]domain.User{
		3: {ID: 3, GenderID: 1, DateOfBirth: time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)},
		4: {ID: 4, GenderID: 2, DateOfBirth: time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)},
	}}
	events := &fakeEventRepo{events: map[uint]domain.Event{
		10: {ID: 10, SportID: 7, OrganizerID: 2, StartDate: testEventStart, EndDate: testEventStart.Add(48 * time.Hour), Status: domain.EventPlanned},
	}}
	minAge, maxAge := 18, 35
	categories := &fakeCategoryRepo{categories: map[uint]domain.Category{
		20: {ID: 20, SportID: 7, GenderID: 1, MinAge: &minAge, MaxAge: &maxAge},
		21: {ID: 21, SportID: 7, GenderID: 1},
		22: {ID: 22, SportID: 8, GenderID: 1},
	}}

	repo := newFakeInscriptionRepo(existing...)
	notifier := &fakeNotifier{}
	svc := service.NewInscriptionService(repo, users, events, categories, notifier, fixedClock(testNow))

	return svc, repo, notifier
}

func TestInscriptionService_Register(t *testing.T) {
	t.Run("competitor registers themselves", func(t *testing.T) {
		svc, _, notifier := newInscriptionFixture(t)

		created, err := svc.Register(context.Background(), competitorCaller, 3, 10, 20)

		require.NoError(t, err)
		assert.Equal(t, uint(3), created.CompetitorID)
		assert.Equal(t, domain.PaymentPending, created.PaymentStatus)
		assert.Equal(t, testNow, created.RegisterDate)
		assert.Equal(t, []uint{3}, notifier.confirmed)
	})

	t.Run("admin registers another competitor", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t)

		created, err := svc.Register(context.Background(), adminCaller, 3, 10, 20)

		require.NoError(t, err)
		assert.Equal(t, uint(3), created.CompetitorID)
	})

	t.Run("competitor cannot register someone else", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t)

		_, err := svc.Register(context.Background(), competitorCaller, 4, 10, 20)

		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})

	t.Run("duplicate inscription for the same event", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t, domain.Inscription{
			ID: 1, CompetitorID: 3, EventID: 10, CategoryID: 21, PaymentStatus: domain.PaymentPending,
		})

		_, err := svc.Register(context.Background(), competitorCaller, 3, 10, 20)

		assert.ErrorIs(t, err, service.ErrInscriptionExists)
	})

	t.Run("category from another sport", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t)

		_, err := svc.Register(context.Background(), competitorCaller, 3, 10, 22)

		assert.ErrorIs(t, err, domain.ErrCategorySportMismatch)
	})

	t.Run("gender mismatch", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t)

		_, err := svc.Register(context.Background(), adminCaller, 4, 10, 21)

		assert.ErrorIs(t, err, domain.ErrGenderMismatch)
	})

	t.Run("age outside the category bracket", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t)
		// User 4 is 15 at the fixed clock instant but category 20 requires 18.
		caller := domain.Principal{UserID: 4, Role: domain.RoleCompetitor}

		_, err := svc.Register(context.Background(), caller, 4, 10, 20)

		assert.ErrorIs(t, err, domain.ErrDomainConflict)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t)

		_, err := svc.Register(context.Background(), competitorCaller, 3, 99, 20)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("notifier failure does not fail the registration", func(t *testing.T) {
		svc, repo, notifier := newInscriptionFixture(t)
		notifier.fail = true

		created, err := svc.Register(context.Background(), competitorCaller, 3, 10, 20)

		require.NoError(t, err)
		assert.Contains(t, repo.inscriptions, created.ID)
	})
}

func TestInscriptionService_RegisterWindow(t *testing.T) {
	base := newInscriptionBase()

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{"open window", testEventStart.Add(-10 * 24 * time.Hour), nil},
		{"closes three days before start", testEventStart.Add(-3 * 24 * time.Hour), domain.ErrInscriptionWindowClosed},
		{"event already started", testEventStart.Add(time.Hour), domain.ErrEventStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.NewInscriptionService(
				newFakeInscriptionRepo(), base.users, base.events, base.categories,
				&fakeNotifier{}, fixedClock(tt.now))

			_, err := svc.Register(context.Background(), competitorCaller, 3, 10, 21)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

type inscriptionBase struct {
	users      *fakeUserRepo
	events     *fakeEventRepo
	categories *fakeCategoryRepo
}

func newInscriptionBase() inscriptionBase {
	return inscriptionBase{
		users: &fakeUserRepo{users: map[uint]domain.User{
			3: {ID: 3, GenderID: 1, DateOfBirth: time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)},
		}},
		events: &fakeEventRepo{events: map[uint]domain.Event{
			10: {ID: 10, SportID: 7, OrganizerID: 2, StartDate: testEventStart, EndDate: testEventStart.Add(48 * time.Hour)},
		}},
		categories: &fakeCategoryRepo{categories: map[uint]domain.Category{
			21: {ID: 21, SportID: 7, GenderID: 1},
		}},
	}
}

func TestInscriptionService_Update(t *testing.T) {
	existing := domain.Inscription{
		ID: 1, CompetitorID: 3, EventID: 10, CategoryID: 21,
		RegisterDate: testNow.Add(-24 * time.Hour), PaymentStatus: domain.PaymentPending,
	}

	t.Run("owner pays", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t, existing)

		updated, err := svc.Update(context.Background(), competitorCaller, 1, 0, domain.PaymentPaid)

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentPaid, updated.PaymentStatus)
	})

	t.Run("owner cancels before the deadline", func(t *testing.T) {
		svc, _, notifier := newInscriptionFixture(t, existing)

		updated, err := svc.Update(context.Background(), competitorCaller, 1, 0, domain.PaymentCancelled)

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentCancelled, updated.PaymentStatus)
		assert.Equal(t, []uint{3}, notifier.cancelled)
	})

	t.Run("cancelling inside the 24h window", func(t *testing.T) {
		base := newInscriptionBase()
		repo := newFakeInscriptionRepo(existing)
		svc := service.NewInscriptionService(repo, base.users, base.events, base.categories,
			&fakeNotifier{}, fixedClock(testEventStart.Add(-time.Hour)))

		_, err := svc.Update(context.Background(), competitorCaller, 1, 0, domain.PaymentCancelled)

		assert.ErrorIs(t, err, domain.ErrCancellationWindowClosed)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		cancelled := existing
		cancelled.PaymentStatus = domain.PaymentCancelled
		svc, _, _ := newInscriptionFixture(t, cancelled)

		_, err := svc.Update(context.Background(), competitorCaller, 1, 0, domain.PaymentPaid)

		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	})

	t.Run("paid cannot return to pending", func(t *testing.T) {
		paid := existing
		paid.PaymentStatus = domain.PaymentPaid
		svc, _, _ := newInscriptionFixture(t, paid)

		_, err := svc.Update(context.Background(), competitorCaller, 1, 0, domain.PaymentPending)

		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	})

	t.Run("category change re-runs compatibility", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t, existing)

		_, err := svc.Update(context.Background(), competitorCaller, 1, 22, "")

		assert.ErrorIs(t, err, domain.ErrCategorySportMismatch)
	})

	t.Run("valid category change", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t, existing)

		updated, err := svc.Update(context.Background(), competitorCaller, 1, 20, "")

		require.NoError(t, err)
		assert.Equal(t, uint(20), updated.CategoryID)
	})

	t.Run("other competitor cannot touch it", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t, existing)
		other := domain.Principal{UserID: 4, Role: domain.RoleCompetitor}

		_, err := svc.Update(context.Background(), other, 1, 0, domain.PaymentPaid)

		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})
}

func TestInscriptionService_Visibility(t *testing.T) {
	existing := domain.Inscription{
		ID: 1, CompetitorID: 3, EventID: 10, CategoryID: 21, PaymentStatus: domain.PaymentPaid,
	}

	t.Run("owner reads their inscription", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t, existing)

		got, err := svc.GetInscription(context.Background(), competitorCaller, 1)

		require.NoError(t, err)
		assert.Equal(t, existing.ID, got.ID)
	})

	t.Run("event organizer reads it too", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t, existing)

		_, err := svc.GetInscription(context.Background(), organizerCaller, 1)

		assert.NoError(t, err)
	})

	t.Run("unrelated competitor is denied", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t, existing)
		other := domain.Principal{UserID: 4, Role: domain.RoleCompetitor}

		_, err := svc.GetInscription(context.Background(), other, 1)

		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})

	t.Run("listing all is admin only", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t, existing)

		_, err := svc.ListInscriptions(context.Background(), organizerCaller)
		assert.ErrorIs(t, err, service.ErrPermissionDenied)

		all, err := svc.ListInscriptions(context.Background(), adminCaller)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("competitor lists their own inscriptions only", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t, existing)

		mine, err := svc.ListByCompetitor(context.Background(), competitorCaller, 3)
		require.NoError(t, err)
		assert.Len(t, mine, 1)

		_, err = svc.ListByCompetitor(context.Background(), competitorCaller, 4)
		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})

	t.Run("paid count for the organizer", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t, existing)

		count, err := svc.CountPaidByEvent(context.Background(), organizerCaller, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestInscriptionService_Delete(t *testing.T) {
	existing := domain.Inscription{ID: 1, CompetitorID: 3, EventID: 10, CategoryID: 21}

	t.Run("owner deletes", func(t *testing.T) {
		svc, repo, _ := newInscriptionFixture(t, existing)

		require.NoError(t, svc.Delete(context.Background(), competitorCaller, 1))
		assert.Empty(t, repo.inscriptions)
	})

	t.Run("organizer cannot delete a competitor's inscription", func(t *testing.T) {
		svc, _, _ := newInscriptionFixture(t, existing)

		err := svc.Delete(context.Background(), organizerCaller, 1)

		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})
}
