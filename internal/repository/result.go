package repository

import (
	"context"
	"fmt"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository/dao"
)

var (
	ErrResultNotFound       = dao.ErrResultNotFound
	ErrResultPositionExists = dao.ErrResultPositionExists
	ErrResultExists         = dao.ErrResultExists
)

type ResultDAO interface {
	Insert(ctx context.Context, res dao.Result) (dao.Result, error)
	FindByID(ctx context.Context, id uint) (dao.Result, error)
	FindAll(ctx context.Context) ([]dao.Result, error)
	FindByEvent(ctx context.Context, eventID uint) ([]dao.Result, error)
	FindByEventAndCategory(ctx context.Context, eventID, categoryID uint) ([]dao.Result, error)
	FindByCompetitor(ctx context.Context, competitorID uint) ([]dao.Result, error)
	FindByEventAndCompetitor(ctx context.Context, eventID, competitorID uint) ([]dao.Result, error)
	FindByEventAndPosition(ctx context.Context, eventID uint, position int) ([]dao.Result, error)
	FindByEventCategoryPosition(ctx context.Context, eventID, categoryID uint, position int) (dao.Result, error)
	ExistsPosition(ctx context.Context, eventID, categoryID uint, position int, excludeID uint) (bool, error)
	Update(ctx context.Context, res dao.Result) (dao.Result, error)
	Delete(ctx context.Context, id uint) error
}

type ResultRepository struct {
	dao ResultDAO
}

func NewResultRepository(dao ResultDAO) *ResultRepository {
	return &ResultRepository{
		dao: dao,
	}
}

func (r *ResultRepository) Create(ctx context.Context, res domain.Result) (domain.Result, error) {
	created, err := r.dao.Insert(ctx, dao.Result{
		EventID:      res.EventID,
		CategoryID:   res.CategoryID,
		CompetitorID: res.CompetitorID,
		Position:     res.Position,
		Notes:        res.Notes,
	})
	if err != nil {
		return domain.Result{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ResultRepository) FindByID(ctx context.Context, id uint) (domain.Result, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Result{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ResultRepository) FindAll(ctx context.Context) ([]domain.Result, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *ResultRepository) FindByEvent(ctx context.Context, eventID uint) ([]domain.Result, error) {
	found, err := r.dao.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEvent -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *ResultRepository) FindByEventAndCategory(ctx context.Context, eventID, categoryID uint) ([]domain.Result, error) {
	found, err := r.dao.FindByEventAndCategory(ctx, eventID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventAndCategory -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *ResultRepository) FindByCompetitor(ctx context.Context, competitorID uint) ([]domain.Result, error) {
	found, err := r.dao.FindByCompetitor(ctx, competitorID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByCompetitor -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *ResultRepository) FindByEventAndCompetitor(ctx context.Context, eventID, competitorID uint) ([]domain.Result, error) {
	found, err := r.dao.FindByEventAndCompetitor(ctx, eventID, competitorID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventAndCompetitor -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *ResultRepository) FindByEventAndPosition(ctx context.Context, eventID uint, position int) ([]domain.Result, error) {
	found, err := r.dao.FindByEventAndPosition(ctx, eventID, position)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventAndPosition -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *ResultRepository) FindWinner(ctx context.Context, eventID, categoryID uint) (domain.Result, error) {
	found, err := r.dao.FindByEventCategoryPosition(ctx, eventID, categoryID, 1)
	if err != nil {
		return domain.Result{}, fmt.Errorf("r.dao.FindByEventCategoryPosition -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ResultRepository) ExistsPosition(ctx context.Context, eventID, categoryID uint, position int, excludeID uint) (bool, error) {
	exists, err := r.dao.ExistsPosition(ctx, eventID, categoryID, position, excludeID)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsPosition -> %w", err)
	}

	return exists, nil
}

func (r *ResultRepository) Update(ctx context.Context, res domain.Result) (domain.Result, error) {
	updated, err := r.dao.Update(ctx, dao.Result{
		ID:       res.ID,
		Position: res.Position,
		Notes:    res.Notes,
	})
	if err != nil {
		return domain.Result{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ResultRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ResultRepository) daoToDomain(res dao.Result) domain.Result {
	return domain.Result{
		ID:           res.ID,
		EventID:      res.EventID,
		CategoryID:   res.CategoryID,
		CompetitorID: res.CompetitorID,
		Position:     res.Position,
		Notes:        res.Notes,
	}
}

func (r *ResultRepository) daoToDomainList(results []dao.Result) []domain.Result {
	converted := make([]domain.Result, 0, len(results))
	for _, res := range results {
		converted = append(converted, r.daoToDomain(res))
	}

	return converted
}
