package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository"
)

var (
	ErrResultNotFound       = repository.ErrResultNotFound
	ErrResultPositionExists = repository.ErrResultPositionExists
	ErrResultExists         = repository.ErrResultExists
)

type ResultRepository interface {
	Create(ctx context.Context, res domain.Result) (domain.Result, error)
	FindByID(ctx context.Context, id uint) (domain.Result, error)
	FindAll(ctx context.Context) ([]domain.Result, error)
	FindByEvent(ctx context.Context, eventID uint) ([]domain.Result, error)
	FindByEventAndCategory(ctx context.Context, eventID, categoryID uint) ([]domain.Result, error)
	FindByCompetitor(ctx context.Context, competitorID uint) ([]domain.Result, error)
	FindByEventAndCompetitor(ctx context.Context, eventID, competitorID uint) ([]domain.Result, error)
	FindWinner(ctx context.Context, eventID, categoryID uint) (domain.Result, error)
	ExistsPosition(ctx context.Context, eventID, categoryID uint, position int, excludeID uint) (bool, error)
	Update(ctx context.Context, res domain.Result) (domain.Result, error)
	Delete(ctx context.Context, id uint) error
}

type ResultInscriptionRepository interface {
	ExistsByCompetitorEventCategory(ctx context.Context, competitorID, eventID, categoryID uint) (bool, error)
}

type ResultService struct {
	repo         ResultRepository
	inscriptions ResultInscriptionRepository
	users        InscriptionUserRepository
	events       InscriptionEventRepository
	categories   InscriptionCategoryRepository
	notifier     Notifier
	clock        Clock
}

func NewResultService(
	repo ResultRepository,
	inscriptions ResultInscriptionRepository,
	users InscriptionUserRepository,
	events InscriptionEventRepository,
	categories InscriptionCategoryRepository,
	notifier Notifier,
	clock Clock,
) *ResultService {
	return &ResultService{
		repo:         repo,
		inscriptions: inscriptions,
		users:        users,
		events:       events,
		categories:   categories,
		notifier:     notifier,
		clock:        clock,
	}
}

// RecordResult registers a competitor's placement. The competitor must hold
// an inscription for the event and category, regardless of its payment
// status, and the position must be free within (event, category). The unique
// keys on results settle concurrent writes the pre-checks let through.
func (s *ResultService) RecordResult(ctx context.Context, caller domain.Principal, res domain.Result) (domain.Result, error) {
	event, err := s.events.FindByID(ctx, res.EventID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if !domain.CanEditResults(caller, event) {
		return domain.Result{}, ErrPermissionDenied
	}

	category, err := s.categories.FindByID(ctx, res.CategoryID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.categories.FindByID -> %w", err)
	}

	competitor, err := s.users.FindByID(ctx, res.CompetitorID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}

	if err = domain.ValidateCategoryEventSportMatch(category, event); err != nil {
		return domain.Result{}, err
	}
	if err = domain.ValidatePosition(res.Position); err != nil {
		return domain.Result{}, err
	}
	if err = domain.ValidateNotes(res.Notes); err != nil {
		return domain.Result{}, err
	}
	if err = domain.ValidateResultTiming(event.StartDate, s.clock()); err != nil {
		return domain.Result{}, err
	}

	inscribed, err := s.inscriptions.ExistsByCompetitorEventCategory(ctx, res.CompetitorID, res.EventID, res.CategoryID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.inscriptions.ExistsByCompetitorEventCategory -> %w", err)
	}
	if !inscribed {
		return domain.Result{}, domain.ErrNotInscribed
	}

	taken, err := s.repo.ExistsPosition(ctx, res.EventID, res.CategoryID, res.Position, 0)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.repo.ExistsPosition -> %w", err)
	}
	if taken {
		return domain.Result{}, ErrResultPositionExists
	}

	created, err := s.repo.Create(ctx, res)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if err = s.notifier.NotifyResultPublished(ctx, competitor, event, created); err != nil {
		zap.L().Warn("failed to send result notification",
			zap.Uint("resultID", created.ID),
			zap.Error(err))
	}

	return created, nil
}

func (s *ResultService) GetResult(ctx context.Context, id uint) (domain.Result, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return res, nil
}

func (s *ResultService) ListResults(ctx context.Context) ([]domain.Result, error) {
	results, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return results, nil
}

func (s *ResultService) ListByEvent(ctx context.Context, eventID uint) ([]domain.Result, error) {
	results, err := s.repo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEvent -> %w", err)
	}

	return results, nil
}

func (s *ResultService) ListByEventAndCategory(ctx context.Context, eventID, categoryID uint) ([]domain.Result, error) {
	results, err := s.repo.FindByEventAndCategory(ctx, eventID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventAndCategory -> %w", err)
	}

	return results, nil
}

func (s *ResultService) ListByCompetitor(ctx context.Context, competitorID uint) ([]domain.Result, error) {
	results, err := s.repo.FindByCompetitor(ctx, competitorID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByCompetitor -> %w", err)
	}

	return results, nil
}

func (s *ResultService) ListByEventAndCompetitor(ctx context.Context, eventID, competitorID uint) ([]domain.Result, error) {
	results, err := s.repo.FindByEventAndCompetitor(ctx, eventID, competitorID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventAndCompetitor -> %w", err)
	}

	return results, nil
}

// GetWinner returns the position-1 result of a category at an event.
func (s *ResultService) GetWinner(ctx context.Context, eventID, categoryID uint) (domain.Result, error) {
	res, err := s.repo.FindWinner(ctx, eventID, categoryID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.repo.FindWinner -> %w", err)
	}

	return res, nil
}

// UpdateResult edits position and notes. The occupancy pre-check excludes the
// result itself so re-submitting the same position is a no-op.
func (s *ResultService) UpdateResult(ctx context.Context, caller domain.Principal, id uint, position int, notes string) (domain.Result, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	event, err := s.events.FindByID(ctx, res.EventID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if !domain.CanEditResult(caller, event) {
		return domain.Result{}, ErrPermissionDenied
	}

	if err = domain.ValidatePosition(position); err != nil {
		return domain.Result{}, err
	}
	if err = domain.ValidateNotes(notes); err != nil {
		return domain.Result{}, err
	}
	if err = domain.ValidateResultTiming(event.StartDate, s.clock()); err != nil {
		return domain.Result{}, err
	}

	taken, err := s.repo.ExistsPosition(ctx, res.EventID, res.CategoryID, position, res.ID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.repo.ExistsPosition -> %w", err)
	}
	if taken {
		return domain.Result{}, ErrResultPositionExists
	}

	res.Position = position
	res.Notes = notes
	updated, err := s.repo.Update(ctx, res)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ResultService) DeleteResult(ctx context.Context, caller domain.Principal, id uint) error {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	event, err := s.events.FindByID(ctx, res.EventID)
	if err != nil {
		return fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if !domain.CanEditResult(caller, event) {
		return ErrPermissionDenied
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
