package dao

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jglopez/tappedout-api/internal/domain"
)

var (
	ErrCategoryNotFound = fmt.Errorf("category %w", domain.ErrNotFound)
	ErrCategoryExists   = fmt.Errorf("a category with that name %w for this sport", domain.ErrConflict)
)

type Category struct {
	ID      uint   `gorm:"primaryKey"`
	SportID uint   `gorm:"not null;uniqueIndex:idx_categories_sport_name"`
	Sport   Sport  `gorm:"foreignKey:SportID;constraint:OnDelete:CASCADE"`
	Name    string `gorm:"not null;size:100;uniqueIndex:idx_categories_sport_name"`

	MinAge    *int     `gorm:""`
	MaxAge    *int     `gorm:""`
	MinWeight *float64 `gorm:"type:decimal(5,2)"`
	MaxWeight *float64 `gorm:"type:decimal(5,2)"`

	GenderID uint   `gorm:"not null"`
	Gender   Gender `gorm:"foreignKey:GenderID"`

	LevelID *uint       `gorm:""`
	Level   *SportLevel `gorm:"foreignKey:LevelID;constraint:OnDelete:SET NULL"`
}

type CategoryDAO struct {
	db *gorm.DB
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{
		db: db,
	}
}

func (d *CategoryDAO) Insert(ctx context.Context, category Category) (Category, error) {
	result := d.db.WithContext(ctx).Create(&category)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_categories_sport_name") {
			return Category{}, ErrCategoryExists
		}

		return Category{}, result.Error
	}

	return category, nil
}

func (d *CategoryDAO) FindByID(ctx context.Context, id uint) (Category, error) {
	var category Category

	result := d.db.WithContext(ctx).First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Category{}, ErrCategoryNotFound
		}

		return Category{}, result.Error
	}

	return category, nil
}

func (d *CategoryDAO) FindAll(ctx context.Context) ([]Category, error) {
	return d.findMany(ctx, d.db.WithContext(ctx))
}

func (d *CategoryDAO) FindBySport(ctx context.Context, sportID uint) ([]Category, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("sport_id = ?", sportID))
}

func (d *CategoryDAO) FindByGender(ctx context.Context, genderID uint) ([]Category, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("gender_id = ?", genderID))
}

func (d *CategoryDAO) FindByLevel(ctx context.Context, levelID uint) ([]Category, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("level_id = ?", levelID))
}

func (d *CategoryDAO) FindBySportAndName(ctx context.Context, sportID uint, name string) (Category, error) {
	var category Category

	result := d.db.WithContext(ctx).
		Where("sport_id = ? AND name ILIKE ?", sportID, name).
		First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Category{}, ErrCategoryNotFound
		}

		return Category{}, result.Error
	}

	return category, nil
}

func (d *CategoryDAO) Search(ctx context.Context, query string) ([]Category, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("name ILIKE ?", "%"+query+"%"))
}

func (d *CategoryDAO) findMany(ctx context.Context, tx *gorm.DB) ([]Category, error) {
	var categories []Category

	result := tx.Order("name").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *CategoryDAO) Update(ctx context.Context, category Category) (Category, error) {
	result := d.db.WithContext(ctx).Model(&Category{ID: category.ID}).
		Select("name", "min_age", "max_age", "min_weight", "max_weight", "gender_id", "level_id").
		Updates(map[string]any{
			"name":       category.Name,
			"min_age":    category.MinAge,
			"max_age":    category.MaxAge,
			"min_weight": category.MinWeight,
			"max_weight": category.MaxWeight,
			"gender_id":  category.GenderID,
			"level_id":   category.LevelID,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_categories_sport_name") {
			return Category{}, ErrCategoryExists
		}

		return Category{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Category{}, ErrCategoryNotFound
	}

	return d.FindByID(ctx, category.ID)
}

func (d *CategoryDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
