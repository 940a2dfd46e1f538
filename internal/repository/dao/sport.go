package dao

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jglopez/tappedout-api/internal/domain"
)

var (
	ErrSportNotFound      = fmt.Errorf("sport %w", domain.ErrNotFound)
	ErrSportExists        = fmt.Errorf("a sport with that name %w", domain.ErrConflict)
	ErrSportLevelNotFound = fmt.Errorf("sport level %w", domain.ErrNotFound)
	ErrSportLevelExists   = fmt.Errorf("a level with that name %w for this sport", domain.ErrConflict)
)

type Sport struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"unique;not null;size:100"`
}

type SportLevel struct {
	ID      uint   `gorm:"primaryKey"`
	SportID uint   `gorm:"not null;uniqueIndex:idx_sport_levels_sport_name"`
	Sport   Sport  `gorm:"foreignKey:SportID;constraint:OnDelete:CASCADE"`
	Name    string `gorm:"not null;size:100;uniqueIndex:idx_sport_levels_sport_name"`
}

type SportDAO struct {
	db *gorm.DB
}

func NewSportDAO(db *gorm.DB) *SportDAO {
	return &SportDAO{
		db: db,
	}
}

func (d *SportDAO) Insert(ctx context.Context, sport Sport) (Sport, error) {
	result := d.db.WithContext(ctx).Create(&sport)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_sports_name") {
			return Sport{}, ErrSportExists
		}

		return Sport{}, result.Error
	}

	return sport, nil
}

func (d *SportDAO) FindByID(ctx context.Context, id uint) (Sport, error) {
	var sport Sport

	result := d.db.WithContext(ctx).First(&sport, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Sport{}, ErrSportNotFound
		}

		return Sport{}, result.Error
	}

	return sport, nil
}

func (d *SportDAO) FindAll(ctx context.Context) ([]Sport, error) {
	var sports []Sport

	result := d.db.WithContext(ctx).Order("name").Find(&sports)
	if result.Error != nil {
		return nil, result.Error
	}

	return sports, nil
}

func (d *SportDAO) Update(ctx context.Context, sport Sport) (Sport, error) {
	result := d.db.WithContext(ctx).Model(&Sport{ID: sport.ID}).Update("name", sport.Name)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_sports_name") {
			return Sport{}, ErrSportExists
		}

		return Sport{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Sport{}, ErrSportNotFound
	}

	return sport, nil
}

func (d *SportDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Sport{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSportNotFound
	}

	return nil
}

type SportLevelDAO struct {
	db *gorm.DB
}

func NewSportLevelDAO(db *gorm.DB) *SportLevelDAO {
	return &SportLevelDAO{
		db: db,
	}
}

func (d *SportLevelDAO) Insert(ctx context.Context, level SportLevel) (SportLevel, error) {
	result := d.db.WithContext(ctx).Create(&level)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_sport_levels_sport_name") {
			return SportLevel{}, ErrSportLevelExists
		}

		return SportLevel{}, result.Error
	}

	return level, nil
}

func (d *SportLevelDAO) FindByID(ctx context.Context, id uint) (SportLevel, error) {
	var level SportLevel

	result := d.db.WithContext(ctx).First(&level, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return SportLevel{}, ErrSportLevelNotFound
		}

		return SportLevel{}, result.Error
	}

	return level, nil
}

func (d *SportLevelDAO) FindBySport(ctx context.Context, sportID uint) ([]SportLevel, error) {
	var levels []SportLevel

	result := d.db.WithContext(ctx).Where("sport_id = ?", sportID).Order("name").Find(&levels)
	if result.Error != nil {
		return nil, result.Error
	}

	return levels, nil
}

func (d *SportLevelDAO) Update(ctx context.Context, level SportLevel) (SportLevel, error) {
	result := d.db.WithContext(ctx).Model(&SportLevel{ID: level.ID}).Update("name", level.Name)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_sport_levels_sport_name") {
			return SportLevel{}, ErrSportLevelExists
		}

		return SportLevel{}, result.Error
	}
	if result.RowsAffected == 0 {
		return SportLevel{}, ErrSportLevelNotFound
	}

	return d.FindByID(ctx, level.ID)
}

// Delete nulls the level reference on categories instead of cascading;
// a category outlives its level.
func (d *SportLevelDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&SportLevel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSportLevelNotFound
	}

	return nil
}
