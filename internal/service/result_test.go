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

// Results are recorded after the event started, so the result fixtures run
// the clock one hour into the event.
var resultNow = testEventStart.Add(time.Hour)

type resultBase struct {
	users        *fakeUserRepo
	events       *fakeEventRepo
	categories   *fakeCategoryRepo
	inscriptions *fakeInscriptionRepo
}

func newResultBase() resultBase {
	return resultBase{
		users: &fakeUserRepo{users: map[uint]domain.User{
			3: {ID: 3, GenderID: 1, DateOfBirth: time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)},
			4: {ID: 4, GenderID: 1, DateOfBirth: time.Date(1998, 3, 2, 0, 0, 0, 0, time.UTC)},
		}},
		events: &fakeEventRepo{events: map[uint]domain.Event{
			10: {ID: 10, SportID: 7, OrganizerID: 2, StartDate: testEventStart, EndDate: testEventStart.Add(48 * time.Hour), Status: domain.EventOngoing},
		}},
		categories: &fakeCategoryRepo{categories: map[uint]domain.Category{
			21: {ID: 21, SportID: 7, GenderID: 1},
			22: {ID: 22, SportID: 7, GenderID: 1},
		}},
		inscriptions: newFakeInscriptionRepo(
			domain.Inscription{ID: 1, CompetitorID: 3, EventID: 10, CategoryID: 21, PaymentStatus: domain.PaymentPaid},
			domain.Inscription{ID: 2, CompetitorID: 4, EventID: 10, CategoryID: 21, PaymentStatus: domain.PaymentPending},
		),
	}
}

func newResultFixture(t *testing.T, existing ...domain.Result) (*service.ResultService, *fakeResultRepo, *fakeNotifier) {
	t.Helper()

	base := newResultBase()
	repo := newFakeResultRepo(existing...)
	notifier := &fakeNotifier{}
	svc := service.NewResultService(repo, base.inscriptions, base.users, base.events, base.categories, notifier, fixedClock(resultNow))

	return svc, repo, notifier
}

func TestResultService_RecordResult(t *testing.T) {
	t.Run("organizer records a placement", func(t *testing.T) {
		svc, _, notifier := newResultFixture(t)

		created, err := svc.RecordResult(context.Background(), organizerCaller, domain.Result{
			EventID: 10, CategoryID: 21, CompetitorID: 3, Position: 1, Notes: "won by submission",
		})

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, []uint{3}, notifier.published)
	})

	t.Run("pending payment still counts as inscribed", func(t *testing.T) {
		svc, _, _ := newResultFixture(t)

		_, err := svc.RecordResult(context.Background(), organizerCaller, domain.Result{
			EventID: 10, CategoryID: 21, CompetitorID: 4, Position: 2,
		})

		assert.NoError(t, err)
	})

	t.Run("competitor cannot record results", func(t *testing.T) {
		svc, _, _ := newResultFixture(t)

		_, err := svc.RecordResult(context.Background(), competitorCaller, domain.Result{
			EventID: 10, CategoryID: 21, CompetitorID: 3, Position: 1,
		})

		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})

	t.Run("organizer of another event is denied", func(t *testing.T) {
		svc, _, _ := newResultFixture(t)
		other := domain.Principal{UserID: 9, Role: domain.RoleOrganizer}

		_, err := svc.RecordResult(context.Background(), other, domain.Result{
			EventID: 10, CategoryID: 21, CompetitorID: 3, Position: 1,
		})

		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})

	t.Run("competitor without an inscription", func(t *testing.T) {
		svc, _, _ := newResultFixture(t)

		// User 3 is inscribed in category 21, not 22.
		_, err := svc.RecordResult(context.Background(), adminCaller, domain.Result{
			EventID: 10, CategoryID: 22, CompetitorID: 3, Position: 1,
		})

		assert.ErrorIs(t, err, domain.ErrNotInscribed)
	})

	t.Run("taken position is rejected", func(t *testing.T) {
		svc, _, _ := newResultFixture(t, domain.Result{
			ID: 5, EventID: 10, CategoryID: 21, CompetitorID: 4, Position: 1,
		})

		_, err := svc.RecordResult(context.Background(), organizerCaller, domain.Result{
			EventID: 10, CategoryID: 21, CompetitorID: 3, Position: 1,
		})

		assert.ErrorIs(t, err, service.ErrResultPositionExists)
	})

	t.Run("before the event starts", func(t *testing.T) {
		base := newResultBase()
		early := service.NewResultService(
			newFakeResultRepo(), base.inscriptions, base.users, base.events, base.categories,
			&fakeNotifier{}, fixedClock(testEventStart.Add(-time.Hour)))

		_, err := early.RecordResult(context.Background(), organizerCaller, domain.Result{
			EventID: 10, CategoryID: 21, CompetitorID: 3, Position: 1,
		})

		assert.ErrorIs(t, err, domain.ErrResultBeforeEventStart)
	})

	t.Run("invalid position", func(t *testing.T) {
		svc, _, _ := newResultFixture(t)

		_, err := svc.RecordResult(context.Background(), organizerCaller, domain.Result{
			EventID: 10, CategoryID: 21, CompetitorID: 3, Position: 0,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidPosition)
	})
}

func TestResultService_UpdateResult(t *testing.T) {
	existing := []domain.Result{
		{ID: 5, EventID: 10, CategoryID: 21, CompetitorID: 3, Position: 1},
		{ID: 6, EventID: 10, CategoryID: 21, CompetitorID: 4, Position: 2},
	}

	t.Run("move to a free position", func(t *testing.T) {
		svc, _, _ := newResultFixture(t, existing...)

		updated, err := svc.UpdateResult(context.Background(), organizerCaller, 6, 3, "bumped down")

		require.NoError(t, err)
		assert.Equal(t, 3, updated.Position)
		assert.Equal(t, "bumped down", updated.Notes)
	})

	t.Run("re-submitting the same position is a no-op", func(t *testing.T) {
		svc, _, _ := newResultFixture(t, existing...)

		updated, err := svc.UpdateResult(context.Background(), organizerCaller, 5, 1, "confirmed")

		require.NoError(t, err)
		assert.Equal(t, 1, updated.Position)
	})

	t.Run("moving onto a taken position", func(t *testing.T) {
		svc, _, _ := newResultFixture(t, existing...)

		_, err := svc.UpdateResult(context.Background(), organizerCaller, 6, 1, "")

		assert.ErrorIs(t, err, service.ErrResultPositionExists)
	})

	t.Run("competitor cannot edit", func(t *testing.T) {
		svc, _, _ := newResultFixture(t, existing...)

		_, err := svc.UpdateResult(context.Background(), competitorCaller, 5, 3, "")

		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})
}

func TestResultService_GetWinner(t *testing.T) {
	svc, _, _ := newResultFixture(t,
		domain.Result{ID: 5, EventID: 10, CategoryID: 21, CompetitorID: 3, Position: 1},
		domain.Result{ID: 6, EventID: 10, CategoryID: 21, CompetitorID: 4, Position: 2},
	)

	winner, err := svc.GetWinner(context.Background(), 10, 21)

	require.NoError(t, err)
	assert.Equal(t, uint(3), winner.CompetitorID)

	_, err = svc.GetWinner(context.Background(), 10, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResultService_DeleteResult(t *testing.T) {
	existing := domain.Result{ID: 5, EventID: 10, CategoryID: 21, CompetitorID: 3, Position: 1}

	t.Run("organizer deletes", func(t *testing.T) {
		svc, repo, _ := newResultFixture(t, existing)

		require.NoError(t, svc.DeleteResult(context.Background(), organizerCaller, 5))
		assert.Empty(t, repo.results)
	})

	t.Run("competitor cannot delete", func(t *testing.T) {
		svc, _, _ := newResultFixture(t, existing)

		err := svc.DeleteResult(context.Background(), competitorCaller, 5)

		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})
}
