package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository"
)

var (
	ErrEventNotFound         = repository.ErrEventNotFound
	ErrEventCategoryExists   = repository.ErrEventCategoryExists
	ErrEventCategoryNotFound = repository.ErrEventCategoryNotFound
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindBySport(ctx context.Context, sportID uint) ([]domain.Event, error)
	FindByOrganizer(ctx context.Context, organizerID uint) ([]domain.Event, error)
	FindByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error)
	FindByLocation(ctx context.Context, country, city string) ([]domain.Event, error)
	FindUpcoming(ctx context.Context, now time.Time) ([]domain.Event, error)
	FindPast(ctx context.Context, now time.Time) ([]domain.Event, error)
	Search(ctx context.Context, query string) ([]domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id uint) error
	AddCategory(ctx context.Context, eventID, categoryID uint) error
	RemoveCategory(ctx context.Context, eventID, categoryID uint) error
	FindCategories(ctx context.Context, eventID uint) ([]domain.Category, error)
}

type EventSportRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Sport, error)
}

type EventCategoryRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Category, error)
}

type EventService struct {
	repo       EventRepository
	sports     EventSportRepository
	categories EventCategoryRepository
	clock      Clock
}

func NewEventService(repo EventRepository, sports EventSportRepository, categories EventCategoryRepository, clock Clock) *EventService {
	return &EventService{
		repo:       repo,
		sports:     sports,
		categories: categories,
		clock:      clock,
	}
}

// CreateEvent makes the caller the organizer of the new event. Competitors
// cannot create events.
func (s *EventService) CreateEvent(ctx context.Context, caller domain.Principal, event domain.Event) (domain.Event, error) {
	if !caller.IsAdmin() && !caller.IsOrganizer() {
		return domain.Event{}, ErrPermissionDenied
	}
	event.OrganizerID = caller.UserID

	if err := domain.ValidateDateRange(event.StartDate, event.EndDate, s.clock()); err != nil {
		return domain.Event{}, err
	}
	if err := domain.ValidateRegistrationFee(event.RegistrationFee); err != nil {
		return domain.Event{}, err
	}

	if _, err := s.sports.FindByID(ctx, event.SportID); err != nil {
		return domain.Event{}, fmt.Errorf("s.sports.FindByID -> %w", err)
	}

	if event.Status == "" {
		event.Status = domain.EventPlanned
	}
	if !event.Status.Valid() {
		return domain.Event{}, domain.ErrInvalidValue
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListEventsBySport(ctx context.Context, sportID uint) ([]domain.Event, error) {
	events, err := s.repo.FindBySport(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySport -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListEventsByOrganizer(ctx context.Context, organizerID uint) ([]domain.Event, error) {
	events, err := s.repo.FindByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByOrganizer -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListEventsByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidValue
	}

	events, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStatus -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListEventsByLocation(ctx context.Context, country, city string) ([]domain.Event, error) {
	events, err := s.repo.FindByLocation(ctx, country, city)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByLocation -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListUpcomingEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindUpcoming(ctx, s.clock())
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindUpcoming -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListPastEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindPast(ctx, s.clock())
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPast -> %w", err)
	}

	return events, nil
}

func (s *EventService) SearchEvents(ctx context.Context, query string) ([]domain.Event, error) {
	events, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Search -> %w", err)
	}

	return events, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, caller domain.Principal, event domain.Event) (domain.Event, error) {
	existing, err := s.repo.FindByID(ctx, event.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !domain.CanEditEvent(caller, existing) {
		return domain.Event{}, ErrPermissionDenied
	}

	if err = domain.ValidateDateRange(event.StartDate, event.EndDate, s.clock()); err != nil {
		return domain.Event{}, err
	}
	if err = domain.ValidateRegistrationFee(event.RegistrationFee); err != nil {
		return domain.Event{}, err
	}
	if !event.Status.Valid() {
		return domain.Event{}, domain.ErrInvalidValue
	}

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// UpdateEventStatus changes only the lifecycle status, leaving the schedule
// untouched so completed events can still be closed out.
func (s *EventService) UpdateEventStatus(ctx context.Context, caller domain.Principal, eventID uint, status domain.EventStatus) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !domain.CanEditEvent(caller, event) {
		return domain.Event{}, ErrPermissionDenied
	}

	if !status.Valid() {
		return domain.Event{}, domain.ErrInvalidValue
	}

	event.Status = status
	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, caller domain.Principal, id uint) error {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !domain.CanEditEvent(caller, event) {
		return ErrPermissionDenied
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// AddCategoryToEvent attaches a category after checking it belongs to the
// event's sport.
func (s *EventService) AddCategoryToEvent(ctx context.Context, caller domain.Principal, eventID, categoryID uint) error {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !domain.CanEditEvent(caller, event) {
		return ErrPermissionDenied
	}

	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("s.categories.FindByID -> %w", err)
	}

	if err = domain.ValidateCategoryEventSportMatch(category, event); err != nil {
		return err
	}

	if err = s.repo.AddCategory(ctx, eventID, categoryID); err != nil {
		return fmt.Errorf("s.repo.AddCategory -> %w", err)
	}

	return nil
}

func (s *EventService) RemoveCategoryFromEvent(ctx context.Context, caller domain.Principal, eventID, categoryID uint) error {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !domain.CanEditEvent(caller, event) {
		return ErrPermissionDenied
	}

	if err = s.repo.RemoveCategory(ctx, eventID, categoryID); err != nil {
		return fmt.Errorf("s.repo.RemoveCategory -> %w", err)
	}

	return nil
}

func (s *EventService) ListEventCategories(ctx context.Context, eventID uint) ([]domain.Category, error) {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	categories, err := s.repo.FindCategories(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindCategories -> %w", err)
	}

	return categories, nil
}
