package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository/dao"
)

var (
	ErrEventNotFound         = dao.ErrEventNotFound
	ErrEventCategoryExists   = dao.ErrEventCategoryExists
	ErrEventCategoryNotFound = dao.ErrEventCategoryNotFound
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
	FindBySport(ctx context.Context, sportID uint) ([]dao.Event, error)
	FindByOrganizer(ctx context.Context, organizerID uint) ([]dao.Event, error)
	FindByStatus(ctx context.Context, status string) ([]dao.Event, error)
	FindByLocation(ctx context.Context, country, city string) ([]dao.Event, error)
	FindUpcoming(ctx context.Context, now time.Time) ([]dao.Event, error)
	FindPast(ctx context.Context, now time.Time) ([]dao.Event, error)
	Search(ctx context.Context, query string) ([]dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	Delete(ctx context.Context, id uint) error
	AddCategory(ctx context.Context, eventID, categoryID uint) error
	RemoveCategory(ctx context.Context, eventID, categoryID uint) error
	FindCategories(ctx context.Context, eventID uint) ([]dao.Category, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *EventRepository) FindBySport(ctx context.Context, sportID uint) ([]domain.Event, error) {
	found, err := r.dao.FindBySport(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySport -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *EventRepository) FindByOrganizer(ctx context.Context, organizerID uint) ([]domain.Event, error) {
	found, err := r.dao.FindByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOrganizer -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *EventRepository) FindByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	found, err := r.dao.FindByStatus(ctx, string(status))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStatus -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *EventRepository) FindByLocation(ctx context.Context, country, city string) ([]domain.Event, error) {
	found, err := r.dao.FindByLocation(ctx, country, city)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByLocation -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *EventRepository) FindUpcoming(ctx context.Context, now time.Time) ([]domain.Event, error) {
	found, err := r.dao.FindUpcoming(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindUpcoming -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *EventRepository) FindPast(ctx context.Context, now time.Time) ([]domain.Event, error) {
	found, err := r.dao.FindPast(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPast -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *EventRepository) Search(ctx context.Context, query string) ([]domain.Event, error) {
	found, err := r.dao.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Search -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) AddCategory(ctx context.Context, eventID, categoryID uint) error {
	if err := r.dao.AddCategory(ctx, eventID, categoryID); err != nil {
		return fmt.Errorf("r.dao.AddCategory -> %w", err)
	}

	return nil
}

func (r *EventRepository) RemoveCategory(ctx context.Context, eventID, categoryID uint) error {
	if err := r.dao.RemoveCategory(ctx, eventID, categoryID); err != nil {
		return fmt.Errorf("r.dao.RemoveCategory -> %w", err)
	}

	return nil
}

func (r *EventRepository) FindCategories(ctx context.Context, eventID uint) ([]domain.Category, error) {
	found, err := r.dao.FindCategories(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindCategories -> %w", err)
	}

	categories := make([]domain.Category, 0, len(found))
	for _, c := range found {
		categories = append(categories, domain.Category{
			ID:        c.ID,
			SportID:   c.SportID,
			Name:      c.Name,
			MinAge:    c.MinAge,
			MaxAge:    c.MaxAge,
			MinWeight: c.MinWeight,
			MaxWeight: c.MaxWeight,
			GenderID:  c.GenderID,
			LevelID:   c.LevelID,
		})
	}

	return categories, nil
}

func (r *EventRepository) domainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:              e.ID,
		SportID:         e.SportID,
		OrganizerID:     e.OrganizerID,
		Name:            e.Name,
		Description:     e.Description,
		StartDate:       e.StartDate,
		EndDate:         e.EndDate,
		Status:          string(e.Status),
		Country:         e.Country,
		City:            e.City,
		Address:         e.Address,
		Logo:            e.Logo,
		RegistrationFee: e.RegistrationFee,
	}
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:              e.ID,
		SportID:         e.SportID,
		OrganizerID:     e.OrganizerID,
		Name:            e.Name,
		Description:     e.Description,
		StartDate:       e.StartDate,
		EndDate:         e.EndDate,
		Status:          domain.EventStatus(e.Status),
		Country:         e.Country,
		City:            e.City,
		Address:         e.Address,
		Logo:            e.Logo,
		RegistrationFee: e.RegistrationFee,
		CreatedAt:       e.CreatedAt,
	}
}

func (r *EventRepository) daoToDomainList(events []dao.Event) []domain.Event {
	converted := make([]domain.Event, 0, len(events))
	for _, e := range events {
		converted = append(converted, r.daoToDomain(e))
	}

	return converted
}
