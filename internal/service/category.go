package service

import (
	"context"
	"fmt"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository"
)

var (
	ErrCategoryNotFound = repository.ErrCategoryNotFound
	ErrCategoryExists   = repository.ErrCategoryExists
)

type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	FindByID(ctx context.Context, id uint) (domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindBySport(ctx context.Context, sportID uint) ([]domain.Category, error)
	FindByGender(ctx context.Context, genderID uint) ([]domain.Category, error)
	FindByLevel(ctx context.Context, levelID uint) ([]domain.Category, error)
	Search(ctx context.Context, query string) ([]domain.Category, error)
	Update(ctx context.Context, category domain.Category) (domain.Category, error)
	Delete(ctx context.Context, id uint) error
}

type CategorySportRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Sport, error)
	FindLevelByID(ctx context.Context, id uint) (domain.SportLevel, error)
}

type CategoryReferenceRepository interface {
	FindGenderByID(ctx context.Context, id uint) (domain.Gender, error)
}

type CategoryService struct {
	repo       CategoryRepository
	sports     CategorySportRepository
	references CategoryReferenceRepository
}

func NewCategoryService(repo CategoryRepository, sports CategorySportRepository, references CategoryReferenceRepository) *CategoryService {
	return &CategoryService{
		repo:       repo,
		sports:     sports,
		references: references,
	}
}

func (s *CategoryService) CreateCategory(ctx context.Context, caller domain.Principal, category domain.Category) (domain.Category, error) {
	if !caller.IsAdmin() {
		return domain.Category{}, ErrPermissionDenied
	}

	if err := s.validate(ctx, category); err != nil {
		return domain.Category{}, err
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return categories, nil
}

func (s *CategoryService) ListCategoriesBySport(ctx context.Context, sportID uint) ([]domain.Category, error) {
	categories, err := s.repo.FindBySport(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySport -> %w", err)
	}

	return categories, nil
}

func (s *CategoryService) ListCategoriesByGender(ctx context.Context, genderID uint) ([]domain.Category, error) {
	categories, err := s.repo.FindByGender(ctx, genderID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByGender -> %w", err)
	}

	return categories, nil
}

func (s *CategoryService) ListCategoriesByLevel(ctx context.Context, levelID uint) ([]domain.Category, error) {
	categories, err := s.repo.FindByLevel(ctx, levelID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByLevel -> %w", err)
	}

	return categories, nil
}

func (s *CategoryService) SearchCategories(ctx context.Context, query string) ([]domain.Category, error) {
	categories, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Search -> %w", err)
	}

	return categories, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, caller domain.Principal, category domain.Category) (domain.Category, error) {
	if !caller.IsAdmin() {
		return domain.Category{}, ErrPermissionDenied
	}

	if _, err := s.repo.FindByID(ctx, category.ID); err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.validate(ctx, category); err != nil {
		return domain.Category{}, err
	}

	updated, err := s.repo.Update(ctx, category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, caller domain.Principal, id uint) error {
	if !caller.IsAdmin() {
		return ErrPermissionDenied
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// validate runs the range rules and checks that every referenced row exists,
// so callers see a not-found error rather than an FK violation.
func (s *CategoryService) validate(ctx context.Context, category domain.Category) error {
	if err := domain.ValidateAgeRange(category.MinAge, category.MaxAge); err != nil {
		return err
	}
	if err := domain.ValidateWeightRange(category.MinWeight, category.MaxWeight); err != nil {
		return err
	}

	if _, err := s.sports.FindByID(ctx, category.SportID); err != nil {
		return fmt.Errorf("s.sports.FindByID -> %w", err)
	}
	if _, err := s.references.FindGenderByID(ctx, category.GenderID); err != nil {
		return fmt.Errorf("s.references.FindGenderByID -> %w", err)
	}
	if category.LevelID != nil {
		level, err := s.sports.FindLevelByID(ctx, *category.LevelID)
		if err != nil {
			return fmt.Errorf("s.sports.FindLevelByID -> %w", err)
		}
		if level.SportID != category.SportID {
			return domain.ErrCategorySportMismatch
		}
	}

	return nil
}
