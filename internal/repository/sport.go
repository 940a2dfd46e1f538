package repository

import (
	"context"
	"fmt"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository/dao"
)

var (
	ErrSportNotFound      = dao.ErrSportNotFound
	ErrSportExists        = dao.ErrSportExists
	ErrSportLevelNotFound = dao.ErrSportLevelNotFound
	ErrSportLevelExists   = dao.ErrSportLevelExists
)

type SportDAO interface {
	Insert(ctx context.Context, sport dao.Sport) (dao.Sport, error)
	FindByID(ctx context.Context, id uint) (dao.Sport, error)
	FindAll(ctx context.Context) ([]dao.Sport, error)
	Update(ctx context.Context, sport dao.Sport) (dao.Sport, error)
	Delete(ctx context.Context, id uint) error
}

type SportLevelDAO interface {
	Insert(ctx context.Context, level dao.SportLevel) (dao.SportLevel, error)
	FindByID(ctx context.Context, id uint) (dao.SportLevel, error)
	FindBySport(ctx context.Context, sportID uint) ([]dao.SportLevel, error)
	Update(ctx context.Context, level dao.SportLevel) (dao.SportLevel, error)
	Delete(ctx context.Context, id uint) error
}

type SportRepository struct {
	sports SportDAO
	levels SportLevelDAO
}

func NewSportRepository(sports SportDAO, levels SportLevelDAO) *SportRepository {
	return &SportRepository{
		sports: sports,
		levels: levels,
	}
}

func (r *SportRepository) Create(ctx context.Context, sport domain.Sport) (domain.Sport, error) {
	created, err := r.sports.Insert(ctx, dao.Sport{Name: sport.Name})
	if err != nil {
		return domain.Sport{}, fmt.Errorf("r.sports.Insert -> %w", err)
	}

	return domain.Sport{ID: created.ID, Name: created.Name}, nil
}

func (r *SportRepository) FindByID(ctx context.Context, id uint) (domain.Sport, error) {
	found, err := r.sports.FindByID(ctx, id)
	if err != nil {
		return domain.Sport{}, fmt.Errorf("r.sports.FindByID -> %w", err)
	}

	return domain.Sport{ID: found.ID, Name: found.Name}, nil
}

func (r *SportRepository) FindAll(ctx context.Context) ([]domain.Sport, error) {
	found, err := r.sports.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.sports.FindAll -> %w", err)
	}

	sports := make([]domain.Sport, 0, len(found))
	for _, s := range found {
		sports = append(sports, domain.Sport{ID: s.ID, Name: s.Name})
	}

	return sports, nil
}

func (r *SportRepository) Update(ctx context.Context, sport domain.Sport) (domain.Sport, error) {
	updated, err := r.sports.Update(ctx, dao.Sport{ID: sport.ID, Name: sport.Name})
	if err != nil {
		return domain.Sport{}, fmt.Errorf("r.sports.Update -> %w", err)
	}

	return domain.Sport{ID: updated.ID, Name: updated.Name}, nil
}

func (r *SportRepository) Delete(ctx context.Context, id uint) error {
	if err := r.sports.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.sports.Delete -> %w", err)
	}

	return nil
}

func (r *SportRepository) CreateLevel(ctx context.Context, level domain.SportLevel) (domain.SportLevel, error) {
	created, err := r.levels.Insert(ctx, dao.SportLevel{SportID: level.SportID, Name: level.Name})
	if err != nil {
		return domain.SportLevel{}, fmt.Errorf("r.levels.Insert -> %w", err)
	}

	return r.levelDaoToDomain(created), nil
}

func (r *SportRepository) FindLevelByID(ctx context.Context, id uint) (domain.SportLevel, error) {
	found, err := r.levels.FindByID(ctx, id)
	if err != nil {
		return domain.SportLevel{}, fmt.Errorf("r.levels.FindByID -> %w", err)
	}

	return r.levelDaoToDomain(found), nil
}

func (r *SportRepository) FindLevelsBySport(ctx context.Context, sportID uint) ([]domain.SportLevel, error) {
	found, err := r.levels.FindBySport(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("r.levels.FindBySport -> %w", err)
	}

	levels := make([]domain.SportLevel, 0, len(found))
	for _, l := range found {
		levels = append(levels, r.levelDaoToDomain(l))
	}

	return levels, nil
}

func (r *SportRepository) UpdateLevel(ctx context.Context, level domain.SportLevel) (domain.SportLevel, error) {
	updated, err := r.levels.Update(ctx, dao.SportLevel{ID: level.ID, Name: level.Name})
	if err != nil {
		return domain.SportLevel{}, fmt.Errorf("r.levels.Update -> %w", err)
	}

	return r.levelDaoToDomain(updated), nil
}

func (r *SportRepository) DeleteLevel(ctx context.Context, id uint) error {
	if err := r.levels.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.levels.Delete -> %w", err)
	}

	return nil
}

func (r *SportRepository) levelDaoToDomain(l dao.SportLevel) domain.SportLevel {
	return domain.SportLevel{
		ID:      l.ID,
		SportID: l.SportID,
		Name:    l.Name,
	}
}
