package repository

import (
	"context"
	"fmt"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository/dao"
)

var (
	ErrCategoryNotFound = dao.ErrCategoryNotFound
	ErrCategoryExists   = dao.ErrCategoryExists
)

type CategoryDAO interface {
	Insert(ctx context.Context, category dao.Category) (dao.Category, error)
	FindByID(ctx context.Context, id uint) (dao.Category, error)
	FindAll(ctx context.Context) ([]dao.Category, error)
	FindBySport(ctx context.Context, sportID uint) ([]dao.Category, error)
	FindByGender(ctx context.Context, genderID uint) ([]dao.Category, error)
	FindByLevel(ctx context.Context, levelID uint) ([]dao.Category, error)
	FindBySportAndName(ctx context.Context, sportID uint, name string) (dao.Category, error)
	Search(ctx context.Context, query string) ([]dao.Category, error)
	Update(ctx context.Context, category dao.Category) (dao.Category, error)
	Delete(ctx context.Context, id uint) error
}

type CategoryRepository struct {
	dao CategoryDAO
}

func NewCategoryRepository(dao CategoryDAO) *CategoryRepository {
	return &CategoryRepository{
		dao: dao,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(category))
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (domain.Category, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *CategoryRepository) FindBySport(ctx context.Context, sportID uint) ([]domain.Category, error) {
	found, err := r.dao.FindBySport(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySport -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *CategoryRepository) FindByGender(ctx context.Context, genderID uint) ([]domain.Category, error) {
	found, err := r.dao.FindByGender(ctx, genderID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByGender -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *CategoryRepository) FindByLevel(ctx context.Context, levelID uint) ([]domain.Category, error) {
	found, err := r.dao.FindByLevel(ctx, levelID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByLevel -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *CategoryRepository) FindBySportAndName(ctx context.Context, sportID uint, name string) (domain.Category, error) {
	found, err := r.dao.FindBySportAndName(ctx, sportID, name)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.FindBySportAndName -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CategoryRepository) Search(ctx context.Context, query string) ([]domain.Category, error) {
	found, err := r.dao.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Search -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *CategoryRepository) Update(ctx context.Context, category domain.Category) (domain.Category, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(category))
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *CategoryRepository) domainToDao(c domain.Category) dao.Category {
	return dao.Category{
		ID:        c.ID,
		SportID:   c.SportID,
		Name:      c.Name,
		MinAge:    c.MinAge,
		MaxAge:    c.MaxAge,
		MinWeight: c.MinWeight,
		MaxWeight: c.MaxWeight,
		GenderID:  c.GenderID,
		LevelID:   c.LevelID,
	}
}

func (r *CategoryRepository) daoToDomain(c dao.Category) domain.Category {
	return domain.Category{
		ID:        c.ID,
		SportID:   c.SportID,
		Name:      c.Name,
		MinAge:    c.MinAge,
		MaxAge:    c.MaxAge,
		MinWeight: c.MinWeight,
		MaxWeight: c.MaxWeight,
		GenderID:  c.GenderID,
		LevelID:   c.LevelID,
	}
}

func (r *CategoryRepository) daoToDomainList(categories []dao.Category) []domain.Category {
	converted := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		converted = append(converted, r.daoToDomain(c))
	}

	return converted
}
