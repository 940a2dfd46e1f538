package dao

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jglopez/tappedout-api/internal/domain"
)

var (
	ErrResultNotFound       = fmt.Errorf("result %w", domain.ErrNotFound)
	ErrResultPositionExists = fmt.Errorf("position %w for this event and category", domain.ErrConflict)
	ErrResultExists         = fmt.Errorf("a result for this competitor %w at this event and category", domain.ErrConflict)
)

type Result struct {
	ID uint `gorm:"primaryKey"`

	EventID uint  `gorm:"not null;uniqueIndex:idx_results_event_category_position;uniqueIndex:idx_results_event_category_competitor"`
	Event   Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`

	CategoryID uint     `gorm:"not null;uniqueIndex:idx_results_event_category_position;uniqueIndex:idx_results_event_category_competitor"`
	Category   Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`

	CompetitorID uint `gorm:"not null;uniqueIndex:idx_results_event_category_competitor"`
	Competitor   User `gorm:"foreignKey:CompetitorID;constraint:OnDelete:CASCADE"`

	Position int    `gorm:"not null;uniqueIndex:idx_results_event_category_position"`
	Notes    string `gorm:"size:1000"`
}

type ResultDAO struct {
	db *gorm.DB
}

func NewResultDAO(db *gorm.DB) *ResultDAO {
	return &ResultDAO{
		db: db,
	}
}

func (d *ResultDAO) Insert(ctx context.Context, res Result) (Result, error) {
	result := d.db.WithContext(ctx).Create(&res)
	if result.Error != nil {
		switch {
		case isUniqueViolation(result.Error, "idx_results_event_category_position"):
			return Result{}, ErrResultPositionExists
		case isUniqueViolation(result.Error, "idx_results_event_category_competitor"):
			return Result{}, ErrResultExists
		}

		return Result{}, result.Error
	}

	return res, nil
}

func (d *ResultDAO) FindByID(ctx context.Context, id uint) (Result, error) {
	var res Result

	result := d.db.WithContext(ctx).First(&res, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Result{}, ErrResultNotFound
		}

		return Result{}, result.Error
	}

	return res, nil
}

func (d *ResultDAO) FindAll(ctx context.Context) ([]Result, error) {
	return d.findMany(ctx, d.db.WithContext(ctx))
}

func (d *ResultDAO) FindByEvent(ctx context.Context, eventID uint) ([]Result, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("event_id = ?", eventID))
}

func (d *ResultDAO) FindByEventAndCategory(ctx context.Context, eventID, categoryID uint) ([]Result, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).
		Where("event_id = ? AND category_id = ?", eventID, categoryID))
}

func (d *ResultDAO) FindByCompetitor(ctx context.Context, competitorID uint) ([]Result, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("competitor_id = ?", competitorID))
}

func (d *ResultDAO) FindByEventAndCompetitor(ctx context.Context, eventID, competitorID uint) ([]Result, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).
		Where("event_id = ? AND competitor_id = ?", eventID, competitorID))
}

func (d *ResultDAO) FindByEventAndPosition(ctx context.Context, eventID uint, position int) ([]Result, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).
		Where("event_id = ? AND position = ?", eventID, position))
}

func (d *ResultDAO) FindByEventCategoryPosition(ctx context.Context, eventID, categoryID uint, position int) (Result, error) {
	var res Result

	result := d.db.WithContext(ctx).
		Where("event_id = ? AND category_id = ? AND position = ?", eventID, categoryID, position).
		First(&res)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Result{}, ErrResultNotFound
		}

		return Result{}, result.Error
	}

	return res, nil
}

// ExistsPosition checks position occupancy, optionally excluding one result
// row so updates don't collide with themselves.
func (d *ResultDAO) ExistsPosition(ctx context.Context, eventID, categoryID uint, position int, excludeID uint) (bool, error) {
	var count int64

	tx := d.db.WithContext(ctx).Model(&Result{}).
		Where("event_id = ? AND category_id = ? AND position = ?", eventID, categoryID, position)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}

	result := tx.Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *ResultDAO) findMany(ctx context.Context, tx *gorm.DB) ([]Result, error) {
	var results []Result

	result := tx.Order("position").Find(&results)
	if result.Error != nil {
		return nil, result.Error
	}

	return results, nil
}

func (d *ResultDAO) Update(ctx context.Context, res Result) (Result, error) {
	result := d.db.WithContext(ctx).Model(&Result{ID: res.ID}).
		Select("position", "notes").
		Updates(map[string]any{
			"position": res.Position,
			"notes":    res.Notes,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_results_event_category_position") {
			return Result{}, ErrResultPositionExists
		}

		return Result{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Result{}, ErrResultNotFound
	}

	return d.FindByID(ctx, res.ID)
}

func (d *ResultDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Result{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResultNotFound
	}

	return nil
}
