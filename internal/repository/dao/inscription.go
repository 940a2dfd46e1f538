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
	ErrInscriptionNotFound = fmt.Errorf("inscription %w", domain.ErrNotFound)
	ErrInscriptionExists   = fmt.Errorf("an inscription for this competitor and event %w", domain.ErrConflict)
)

type Inscription struct {
	ID uint `gorm:"primaryKey"`

	CompetitorID uint `gorm:"not null;uniqueIndex:idx_inscriptions_competitor_event"`
	Competitor   User `gorm:"foreignKey:CompetitorID;constraint:OnDelete:CASCADE"`

	EventID uint  `gorm:"not null;uniqueIndex:idx_inscriptions_competitor_event"`
	Event   Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`

	CategoryID uint     `gorm:"not null"`
	Category   Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`

	RegisterDate  time.Time `gorm:"not null"`
	PaymentStatus string    `gorm:"not null;size:20;default:PENDING"`
}

type InscriptionDAO struct {
	db *gorm.DB
}

func NewInscriptionDAO(db *gorm.DB) *InscriptionDAO {
	return &InscriptionDAO{
		db: db,
	}
}

func (d *InscriptionDAO) Insert(ctx context.Context, inscription Inscription) (Inscription, error) {
	result := d.db.WithContext(ctx).Create(&inscription)
	if result.Error != nil {
		// A lost race on the unique key surfaces the same conflict the
		// pre-check would have reported.
		if isUniqueViolation(result.Error, "idx_inscriptions_competitor_event") {
			return Inscription{}, ErrInscriptionExists
		}

		return Inscription{}, result.Error
	}

	return inscription, nil
}

func (d *InscriptionDAO) FindByID(ctx context.Context, id uint) (Inscription, error) {
	var inscription Inscription

	result := d.db.WithContext(ctx).First(&inscription, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Inscription{}, ErrInscriptionNotFound
		}

		return Inscription{}, result.Error
	}

	return inscription, nil
}

func (d *InscriptionDAO) FindAll(ctx context.Context) ([]Inscription, error) {
	return d.findMany(ctx, d.db.WithContext(ctx))
}

func (d *InscriptionDAO) FindByCompetitor(ctx context.Context, competitorID uint) ([]Inscription, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("competitor_id = ?", competitorID))
}

func (d *InscriptionDAO) FindByEvent(ctx context.Context, eventID uint) ([]Inscription, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("event_id = ?", eventID))
}

func (d *InscriptionDAO) FindByEventAndCategory(ctx context.Context, eventID, categoryID uint) ([]Inscription, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).
		Where("event_id = ? AND category_id = ?", eventID, categoryID))
}

func (d *InscriptionDAO) FindByPaymentStatus(ctx context.Context, status string) ([]Inscription, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("payment_status = ?", status))
}

func (d *InscriptionDAO) FindByEventAndPaymentStatus(ctx context.Context, eventID uint, status string) ([]Inscription, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).
		Where("event_id = ? AND payment_status = ?", eventID, status))
}

func (d *InscriptionDAO) CountByEventAndPaymentStatus(ctx context.Context, eventID uint, status string) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Inscription{}).
		Where("event_id = ? AND payment_status = ?", eventID, status).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *InscriptionDAO) FindByCompetitorAndEvent(ctx context.Context, competitorID, eventID uint) ([]Inscription, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).
		Where("competitor_id = ? AND event_id = ?", competitorID, eventID))
}

func (d *InscriptionDAO) ExistsByCompetitorAndEvent(ctx context.Context, competitorID, eventID uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Inscription{}).
		Where("competitor_id = ? AND event_id = ?", competitorID, eventID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// ExistsByCompetitorEventCategory deliberately ignores payment status: a
// cancelled inscription still counts as "was inscribed".
func (d *InscriptionDAO) ExistsByCompetitorEventCategory(ctx context.Context, competitorID, eventID, categoryID uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Inscription{}).
		Where("competitor_id = ? AND event_id = ? AND category_id = ?", competitorID, eventID, categoryID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *InscriptionDAO) findMany(ctx context.Context, tx *gorm.DB) ([]Inscription, error) {
	var inscriptions []Inscription

	result := tx.Order("register_date").Find(&inscriptions)
	if result.Error != nil {
		return nil, result.Error
	}

	return inscriptions, nil
}

func (d *InscriptionDAO) Update(ctx context.Context, inscription Inscription) (Inscription, error) {
	result := d.db.WithContext(ctx).Model(&Inscription{ID: inscription.ID}).
		Select("category_id", "payment_status").
		Updates(map[string]any{
			"category_id":    inscription.CategoryID,
			"payment_status": inscription.PaymentStatus,
		})
	if result.Error != nil {
		return Inscription{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Inscription{}, ErrInscriptionNotFound
	}

	return d.FindByID(ctx, inscription.ID)
}

func (d *InscriptionDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Inscription{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInscriptionNotFound
	}

	return nil
}
