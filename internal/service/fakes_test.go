package service_test

import (
	"context"
	"errors"
	"time"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository"
	"github.com/jglopez/tappedout-api/internal/service"
)

// In-memory fakes backing the service tests. They implement just the
// repository interfaces each service declares, with the same sentinel errors
// the real repositories return.

var errSMTPDown = errors.New("smtp: connection refused")

func fixedClock(at time.Time) service.Clock {
	return func() time.Time { return at }
}

type fakeUserRepo struct {
	users map[uint]domain.User
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

type fakeEventRepo struct {
	events map[uint]domain.Event
}

func (f *fakeEventRepo) FindByID(_ context.Context, id uint) (domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}

	return event, nil
}

type fakeCategoryRepo struct {
	categories map[uint]domain.Category
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uint) (domain.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return domain.Category{}, repository.ErrCategoryNotFound
	}

	return category, nil
}

type fakeInscriptionRepo struct {
	inscriptions map[uint]domain.Inscription
	nextID       uint
}

func newFakeInscriptionRepo(existing ...domain.Inscription) *fakeInscriptionRepo {
	f := &fakeInscriptionRepo{
		inscriptions: make(map[uint]domain.Inscription),
		nextID:       1,
	}
	for _, ins := range existing {
		f.inscriptions[ins.ID] = ins
		if ins.ID >= f.nextID {
			f.nextID = ins.ID + 1
		}
	}

	return f
}

func (f *fakeInscriptionRepo) Create(_ context.Context, ins domain.Inscription) (domain.Inscription, error) {
	ins.ID = f.nextID
	f.nextID++
	f.inscriptions[ins.ID] = ins

	return ins, nil
}

func (f *fakeInscriptionRepo) FindByID(_ context.Context, id uint) (domain.Inscription, error) {
	ins, ok := f.inscriptions[id]
	if !ok {
		return domain.Inscription{}, repository.ErrInscriptionNotFound
	}

	return ins, nil
}

func (f *fakeInscriptionRepo) FindAll(_ context.Context) ([]domain.Inscription, error) {
	var all []domain.Inscription
	for _, ins := range f.inscriptions {
		all = append(all, ins)
	}

	return all, nil
}

func (f *fakeInscriptionRepo) FindByCompetitor(_ context.Context, competitorID uint) ([]domain.Inscription, error) {
	var matched []domain.Inscription
	for _, ins := range f.inscriptions {
		if ins.CompetitorID == competitorID {
			matched = append(matched, ins)
		}
	}

	return matched, nil
}

func (f *fakeInscriptionRepo) FindByEvent(_ context.Context, eventID uint) ([]domain.Inscription, error) {
	var matched []domain.Inscription
	for _, ins := range f.inscriptions {
		if ins.EventID == eventID {
			matched = append(matched, ins)
		}
	}

	return matched, nil
}

func (f *fakeInscriptionRepo) FindByEventAndCategory(_ context.Context, eventID, categoryID uint) ([]domain.Inscription, error) {
	var matched []domain.Inscription
	for _, ins := range f.inscriptions {
		if ins.EventID == eventID && ins.CategoryID == categoryID {
			matched = append(matched, ins)
		}
	}

	return matched, nil
}

func (f *fakeInscriptionRepo) FindByEventAndPaymentStatus(_ context.Context, eventID uint, status domain.PaymentStatus) ([]domain.Inscription, error) {
	var matched []domain.Inscription
	for _, ins := range f.inscriptions {
		if ins.EventID == eventID && ins.PaymentStatus == status {
			matched = append(matched, ins)
		}
	}

	return matched, nil
}

func (f *fakeInscriptionRepo) CountByEventAndPaymentStatus(_ context.Context, eventID uint, status domain.PaymentStatus) (int64, error) {
	var count int64
	for _, ins := range f.inscriptions {
		if ins.EventID == eventID && ins.PaymentStatus == status {
			count++
		}
	}

	return count, nil
}

func (f *fakeInscriptionRepo) ExistsByCompetitorAndEvent(_ context.Context, competitorID, eventID uint) (bool, error) {
	for _, ins := range f.inscriptions {
		if ins.CompetitorID == competitorID && ins.EventID == eventID {
			return true, nil
		}
	}

	return false, nil
}

func (f *fakeInscriptionRepo) ExistsByCompetitorEventCategory(_ context.Context, competitorID, eventID, categoryID uint) (bool, error) {
	for _, ins := range f.inscriptions {
		if ins.CompetitorID == competitorID && ins.EventID == eventID && ins.CategoryID == categoryID {
			return true, nil
		}
	}

	return false, nil
}

func (f *fakeInscriptionRepo) Update(_ context.Context, ins domain.Inscription) (domain.Inscription, error) {
	if _, ok := f.inscriptions[ins.ID]; !ok {
		return domain.Inscription{}, repository.ErrInscriptionNotFound
	}
	f.inscriptions[ins.ID] = ins

	return ins, nil
}

func (f *fakeInscriptionRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.inscriptions[id]; !ok {
		return repository.ErrInscriptionNotFound
	}
	delete(f.inscriptions, id)

	return nil
}

type fakeResultRepo struct {
	results map[uint]domain.Result
	nextID  uint
}

func newFakeResultRepo(existing ...domain.Result) *fakeResultRepo {
	f := &fakeResultRepo{
		results: make(map[uint]domain.Result),
		nextID:  1,
	}
	for _, res := range existing {
		f.results[res.ID] = res
		if res.ID >= f.nextID {
			f.nextID = res.ID + 1
		}
	}

	return f
}

func (f *fakeResultRepo) Create(_ context.Context, res domain.Result) (domain.Result, error) {
	res.ID = f.nextID
	f.nextID++
	f.results[res.ID] = res

	return res, nil
}

func (f *fakeResultRepo) FindByID(_ context.Context, id uint) (domain.Result, error) {
	res, ok := f.results[id]
	if !ok {
		return domain.Result{}, repository.ErrResultNotFound
	}

	return res, nil
}

func (f *fakeResultRepo) FindAll(_ context.Context) ([]domain.Result, error) {
	var all []domain.Result
	for _, res := range f.results {
		all = append(all, res)
	}

	return all, nil
}

func (f *fakeResultRepo) FindByEvent(_ context.Context, eventID uint) ([]domain.Result, error) {
	var matched []domain.Result
	for _, res := range f.results {
		if res.EventID == eventID {
			matched = append(matched, res)
		}
	}

	return matched, nil
}

func (f *fakeResultRepo) FindByEventAndCategory(_ context.Context, eventID, categoryID uint) ([]domain.Result, error) {
	var matched []domain.Result
	for _, res := range f.results {
		if res.EventID == eventID && res.CategoryID == categoryID {
			matched = append(matched, res)
		}
	}

	return matched, nil
}

func (f *fakeResultRepo) FindByCompetitor(_ context.Context, competitorID uint) ([]domain.Result, error) {
	var matched []domain.Result
	for _, res := range f.results {
		if res.CompetitorID == competitorID {
			matched = append(matched, res)
		}
	}

	return matched, nil
}

func (f *fakeResultRepo) FindByEventAndCompetitor(_ context.Context, eventID, competitorID uint) ([]domain.Result, error) {
	var matched []domain.Result
	for _, res := range f.results {
		if res.EventID == eventID && res.CompetitorID == competitorID {
			matched = append(matched, res)
		}
	}

	return matched, nil
}

func (f *fakeResultRepo) FindWinner(_ context.Context, eventID, categoryID uint) (domain.Result, error) {
	for _, res := range f.results {
		if res.EventID == eventID && res.CategoryID == categoryID && res.Position == 1 {
			return res, nil
		}
	}

	return domain.Result{}, repository.ErrResultNotFound
}

func (f *fakeResultRepo) ExistsPosition(_ context.Context, eventID, categoryID uint, position int, excludeID uint) (bool, error) {
	for _, res := range f.results {
		if res.ID == excludeID {
			continue
		}
		if res.EventID == eventID && res.CategoryID == categoryID && res.Position == position {
			return true, nil
		}
	}

	return false, nil
}

func (f *fakeResultRepo) Update(_ context.Context, res domain.Result) (domain.Result, error) {
	if _, ok := f.results[res.ID]; !ok {
		return domain.Result{}, repository.ErrResultNotFound
	}
	f.results[res.ID] = res

	return res, nil
}

func (f *fakeResultRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.results[id]; !ok {
		return repository.ErrResultNotFound
	}
	delete(f.results, id)

	return nil
}

// fakeNotifier records every notification so tests can assert on side effects.
// Setting fail makes every call error, which services must tolerate.
type fakeNotifier struct {
	confirmed []uint
	cancelled []uint
	published []uint
	fail      bool
}

func (f *fakeNotifier) NotifyInscriptionConfirmed(_ context.Context, competitor domain.User, _ domain.Event, _ domain.Category) error {
	if f.fail {
		return errSMTPDown
	}
	f.confirmed = append(f.confirmed, competitor.ID)

	return nil
}

func (f *fakeNotifier) NotifyInscriptionCancelled(_ context.Context, competitor domain.User, _ domain.Event) error {
	if f.fail {
		return errSMTPDown
	}
	f.cancelled = append(f.cancelled, competitor.ID)

	return nil
}

func (f *fakeNotifier) NotifyResultPublished(_ context.Context, competitor domain.User, _ domain.Event, _ domain.Result) error {
	if f.fail {
		return errSMTPDown
	}
	f.published = append(f.published, competitor.ID)

	return nil
}
