package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository"
)

var (
	ErrInscriptionNotFound = repository.ErrInscriptionNotFound
	ErrInscriptionExists   = repository.ErrInscriptionExists
)

type InscriptionRepository interface {
	Create(ctx context.Context, inscription domain.Inscription) (domain.Inscription, error)
	FindByID(ctx context.Context, id uint) (domain.Inscription, error)
	FindAll(ctx context.Context) ([]domain.Inscription, error)
	FindByCompetitor(ctx context.Context, competitorID uint) ([]domain.Inscription, error)
	FindByEvent(ctx context.Context, eventID uint) ([]domain.Inscription, error)
	FindByEventAndCategory(ctx context.Context, eventID, categoryID uint) ([]domain.Inscription, error)
	FindByEventAndPaymentStatus(ctx context.Context, eventID uint, status domain.PaymentStatus) ([]domain.Inscription, error)
	CountByEventAndPaymentStatus(ctx context.Context, eventID uint, status domain.PaymentStatus) (int64, error)
	ExistsByCompetitorAndEvent(ctx context.Context, competitorID, eventID uint) (bool, error)
	Update(ctx context.Context, inscription domain.Inscription) (domain.Inscription, error)
	Delete(ctx context.Context, id uint) error
}

type InscriptionUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type InscriptionEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type InscriptionCategoryRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Category, error)
}

type InscriptionService struct {
	repo       InscriptionRepository
	users      InscriptionUserRepository
	events     InscriptionEventRepository
	categories InscriptionCategoryRepository
	notifier   Notifier
	clock      Clock
}

func NewInscriptionService(
	repo InscriptionRepository,
	users InscriptionUserRepository,
	events InscriptionEventRepository,
	categories InscriptionCategoryRepository,
	notifier Notifier,
	clock Clock,
) *InscriptionService {
	return &InscriptionService{
		repo:       repo,
		users:      users,
		events:     events,
		categories: categories,
		notifier:   notifier,
		clock:      clock,
	}
}

// Register inscribes a competitor into one category of an event. Competitors
// register themselves; admins may register anyone. The database's unique key
// on (competitor, event) backs up the existence pre-check under races.
func (s *InscriptionService) Register(ctx context.Context, caller domain.Principal, competitorID, eventID, categoryID uint) (domain.Inscription, error) {
	if !caller.IsAdmin() && caller.UserID != competitorID {
		return domain.Inscription{}, ErrPermissionDenied
	}

	competitor, err := s.users.FindByID(ctx, competitorID)
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("s.categories.FindByID -> %w", err)
	}

	exists, err := s.repo.ExistsByCompetitorAndEvent(ctx, competitorID, eventID)
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("s.repo.ExistsByCompetitorAndEvent -> %w", err)
	}
	if exists {
		return domain.Inscription{}, ErrInscriptionExists
	}

	now := s.clock()
	if err = domain.ValidateCategoryEventSportMatch(category, event); err != nil {
		return domain.Inscription{}, err
	}
	if err = domain.ValidateCompetitorCategoryMatch(competitor, category, now); err != nil {
		return domain.Inscription{}, err
	}
	if err = domain.ValidateInscriptionWindow(event.StartDate, now); err != nil {
		return domain.Inscription{}, err
	}

	created, err := s.repo.Create(ctx, domain.Inscription{
		CompetitorID:  competitorID,
		EventID:       eventID,
		CategoryID:    categoryID,
		RegisterDate:  now,
		PaymentStatus: domain.PaymentPending,
	})
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if err = s.notifier.NotifyInscriptionConfirmed(ctx, competitor, event, category); err != nil {
		zap.L().Warn("failed to send inscription confirmation",
			zap.Uint("inscriptionID", created.ID),
			zap.Error(err))
	}

	return created, nil
}

func (s *InscriptionService) GetInscription(ctx context.Context, caller domain.Principal, id uint) (domain.Inscription, error) {
	inscription, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if domain.CanEditInscription(caller, inscription) {
		return inscription, nil
	}

	event, err := s.events.FindByID(ctx, inscription.EventID)
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}
	if !domain.CanSeeInscriptions(caller, event) {
		return domain.Inscription{}, ErrPermissionDenied
	}

	return inscription, nil
}

func (s *InscriptionService) ListInscriptions(ctx context.Context, caller domain.Principal) ([]domain.Inscription, error) {
	if !caller.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	inscriptions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return inscriptions, nil
}

func (s *InscriptionService) ListByCompetitor(ctx context.Context, caller domain.Principal, competitorID uint) ([]domain.Inscription, error) {
	if !domain.CanSeeCompetitorInscriptions(caller, competitorID) {
		return nil, ErrPermissionDenied
	}

	inscriptions, err := s.repo.FindByCompetitor(ctx, competitorID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByCompetitor -> %w", err)
	}

	return inscriptions, nil
}

func (s *InscriptionService) ListByEvent(ctx context.Context, caller domain.Principal, eventID uint) ([]domain.Inscription, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if !domain.CanSeeInscriptions(caller, event) {
		return nil, ErrPermissionDenied
	}

	inscriptions, err := s.repo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEvent -> %w", err)
	}

	return inscriptions, nil
}

func (s *InscriptionService) ListByEventAndCategory(ctx context.Context, caller domain.Principal, eventID, categoryID uint) ([]domain.Inscription, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if !domain.CanSeeInscriptions(caller, event) {
		return nil, ErrPermissionDenied
	}

	inscriptions, err := s.repo.FindByEventAndCategory(ctx, eventID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventAndCategory -> %w", err)
	}

	return inscriptions, nil
}

func (s *InscriptionService) ListByEventAndPaymentStatus(ctx context.Context, caller domain.Principal, eventID uint, status domain.PaymentStatus) ([]domain.Inscription, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidValue
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if !domain.CanSeeInscriptions(caller, event) {
		return nil, ErrPermissionDenied
	}

	inscriptions, err := s.repo.FindByEventAndPaymentStatus(ctx, eventID, status)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventAndPaymentStatus -> %w", err)
	}

	return inscriptions, nil
}

func (s *InscriptionService) CountPaidByEvent(ctx context.Context, caller domain.Principal, eventID uint) (int64, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if !domain.CanSeeInscriptions(caller, event) {
		return 0, ErrPermissionDenied
	}

	count, err := s.repo.CountByEventAndPaymentStatus(ctx, eventID, domain.PaymentPaid)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CountByEventAndPaymentStatus -> %w", err)
	}

	return count, nil
}

// Update changes the inscription's category and/or payment status. A category
// change re-runs the compatibility and window rules; moving to CANCELLED is
// additionally gated by the cancellation window.
func (s *InscriptionService) Update(ctx context.Context, caller domain.Principal, id uint, categoryID uint, status domain.PaymentStatus) (domain.Inscription, error) {
	inscription, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !domain.CanEditInscription(caller, inscription) {
		return domain.Inscription{}, ErrPermissionDenied
	}

	event, err := s.events.FindByID(ctx, inscription.EventID)
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	now := s.clock()

	if categoryID != 0 && categoryID != inscription.CategoryID {
		competitor, err := s.users.FindByID(ctx, inscription.CompetitorID)
		if err != nil {
			return domain.Inscription{}, fmt.Errorf("s.users.FindByID -> %w", err)
		}

		category, err := s.categories.FindByID(ctx, categoryID)
		if err != nil {
			return domain.Inscription{}, fmt.Errorf("s.categories.FindByID -> %w", err)
		}

		if err = domain.ValidateCategoryEventSportMatch(category, event); err != nil {
			return domain.Inscription{}, err
		}
		if err = domain.ValidateCompetitorCategoryMatch(competitor, category, now); err != nil {
			return domain.Inscription{}, err
		}
		if err = domain.ValidateInscriptionWindow(event.StartDate, now); err != nil {
			return domain.Inscription{}, err
		}

		inscription.CategoryID = categoryID
	}

	if status != "" && status != inscription.PaymentStatus {
		if !status.Valid() {
			return domain.Inscription{}, domain.ErrInvalidValue
		}
		if !inscription.PaymentStatus.CanTransitionTo(status) {
			return domain.Inscription{}, domain.ErrInvalidStatusTransition
		}
		if err = domain.ValidateCancellationWindow(event.StartDate, status, now); err != nil {
			return domain.Inscription{}, err
		}

		inscription.PaymentStatus = status
	}

	updated, err := s.repo.Update(ctx, inscription)
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	if updated.PaymentStatus == domain.PaymentCancelled {
		competitor, err := s.users.FindByID(ctx, updated.CompetitorID)
		if err == nil {
			if err = s.notifier.NotifyInscriptionCancelled(ctx, competitor, event); err != nil {
				zap.L().Warn("failed to send cancellation notice",
					zap.Uint("inscriptionID", updated.ID),
					zap.Error(err))
			}
		}
	}

	return updated, nil
}

func (s *InscriptionService) Delete(ctx context.Context, caller domain.Principal, id uint) error {
	inscription, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !domain.CanDeleteInscription(caller, inscription) {
		return ErrPermissionDenied
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
