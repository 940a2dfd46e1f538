package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jglopez/tappedout-api/internal/domain"
)

var (
	ErrEventNotFound         = fmt.Errorf("event %w", domain.ErrNotFound)
	ErrEventCategoryExists   = fmt.Errorf("category %w for this event", domain.ErrConflict)
	ErrEventCategoryNotFound = fmt.Errorf("event category %w", domain.ErrNotFound)
)

type Event struct {
	ID uint `gorm:"primaryKey"`

	SportID uint  `gorm:"not null"`
	Sport   Sport `gorm:"foreignKey:SportID;constraint:OnDelete:CASCADE"`

	OrganizerID uint `gorm:"not null"`
	Organizer   User `gorm:"foreignKey:OrganizerID;constraint:OnDelete:CASCADE"`

	Name        string `gorm:"not null;size:255"`
	Description string `gorm:"type:text"`

	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	Status    string    `gorm:"not null;size:20;default:PLANNED"`

	Country string `gorm:"not null;size:100"`
	City    string `gorm:"not null;size:100"`
	Address string `gorm:"size:255"`
	Logo    string `gorm:"size:255"`

	RegistrationFee float64   `gorm:"type:decimal(10,2);default:0"`
	CreatedAt       time.Time `gorm:"not null"`
}

type EventCategory struct {
	ID         uint     `gorm:"primaryKey"`
	EventID    uint     `gorm:"not null;uniqueIndex:idx_event_categories_event_category"`
	Event      Event    `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	CategoryID uint     `gorm:"not null;uniqueIndex:idx_event_categories_event_category"`
	Category   Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	return d.findMany(ctx, d.db.WithContext(ctx))
}

func (d *EventDAO) FindBySport(ctx context.Context, sportID uint) ([]Event, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("sport_id = ?", sportID))
}

func (d *EventDAO) FindByOrganizer(ctx context.Context, organizerID uint) ([]Event, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("organizer_id = ?", organizerID))
}

func (d *EventDAO) FindByStatus(ctx context.Context, status string) ([]Event, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("status = ?", status))
}

func (d *EventDAO) FindByLocation(ctx context.Context, country, city string) ([]Event, error) {
	tx := d.db.WithContext(ctx).Where("country = ?", country)
	if city != "" {
		tx = tx.Where("city = ?", city)
	}

	return d.findMany(ctx, tx)
}

func (d *EventDAO) FindUpcoming(ctx context.Context, now time.Time) ([]Event, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("start_date > ?", now))
}

func (d *EventDAO) FindPast(ctx context.Context, now time.Time) ([]Event, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("end_date < ?", now))
}

func (d *EventDAO) Search(ctx context.Context, query string) ([]Event, error) {
	pattern := "%" + query + "%"

	return d.findMany(ctx, d.db.WithContext(ctx).
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern))
}

func (d *EventDAO) findMany(ctx context.Context, tx *gorm.DB) ([]Event, error) {
	var events []Event

	result := tx.Order("start_date").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Model(&Event{ID: event.ID}).
		Select("name", "description", "start_date", "end_date", "status",
			"country", "city", "address", "logo", "registration_fee").
		Updates(map[string]any{
			"name":             event.Name,
			"description":      event.Description,
			"start_date":       event.StartDate,
			"end_date":         event.EndDate,
			"status":           event.Status,
			"country":          event.Country,
			"city":             event.City,
			"address":          event.Address,
			"logo":             event.Logo,
			"registration_fee": event.RegistrationFee,
		})
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return d.FindByID(ctx, event.ID)
}

func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (d *EventDAO) AddCategory(ctx context.Context, eventID, categoryID uint) error {
	result := d.db.WithContext(ctx).Create(&EventCategory{EventID: eventID, CategoryID: categoryID})
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_event_categories_event_category") {
			return ErrEventCategoryExists
		}

		return result.Error
	}

	return nil
}

func (d *EventDAO) RemoveCategory(ctx context.Context, eventID, categoryID uint) error {
	result := d.db.WithContext(ctx).
		Where("event_id = ? AND category_id = ?", eventID, categoryID).
		Delete(&EventCategory{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventCategoryNotFound
	}

	return nil
}

func (d *EventDAO) FindCategories(ctx context.Context, eventID uint) ([]Category, error) {
	var categories []Category

	result := d.db.WithContext(ctx).
		Joins("JOIN event_categories ec ON ec.category_id = categories.id").
		Where("ec.event_id = ?", eventID).
		Order("categories.name").
		Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}
