package service

import (
	"context"
	"fmt"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository"
)

var (
	ErrSportNotFound      = repository.ErrSportNotFound
	ErrSportExists        = repository.ErrSportExists
	ErrSportLevelNotFound = repository.ErrSportLevelNotFound
	ErrSportLevelExists   = repository.ErrSportLevelExists
)

type SportRepository interface {
	Create(ctx context.Context, sport domain.Sport) (domain.Sport, error)
	FindByID(ctx context.Context, id uint) (domain.Sport, error)
	FindAll(ctx context.Context) ([]domain.Sport, error)
	Update(ctx context.Context, sport domain.Sport) (domain.Sport, error)
	Delete(ctx context.Context, id uint) error
	CreateLevel(ctx context.Context, level domain.SportLevel) (domain.SportLevel, error)
	FindLevelByID(ctx context.Context, id uint) (domain.SportLevel, error)
	FindLevelsBySport(ctx context.Context, sportID uint) ([]domain.SportLevel, error)
	UpdateLevel(ctx context.Context, level domain.SportLevel) (domain.SportLevel, error)
	DeleteLevel(ctx context.Context, id uint) error
}

type SportService struct {
	repo SportRepository
}

func NewSportService(repo SportRepository) *SportService {
	return &SportService{
		repo: repo,
	}
}

func (s *SportService) CreateSport(ctx context.Context, caller domain.Principal, sport domain.Sport) (domain.Sport, error) {
	if !caller.IsAdmin() {
		return domain.Sport{}, ErrPermissionDenied
	}

	created, err := s.repo.Create(ctx, sport)
	if err != nil {
		return domain.Sport{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SportService) GetSport(ctx context.Context, id uint) (domain.Sport, error) {
	sport, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Sport{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return sport, nil
}

func (s *SportService) ListSports(ctx context.Context) ([]domain.Sport, error) {
	sports, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return sports, nil
}

func (s *SportService) UpdateSport(ctx context.Context, caller domain.Principal, sport domain.Sport) (domain.Sport, error) {
	if !caller.IsAdmin() {
		return domain.Sport{}, ErrPermissionDenied
	}

	updated, err := s.repo.Update(ctx, sport)
	if err != nil {
		return domain.Sport{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *SportService) DeleteSport(ctx context.Context, caller domain.Principal, id uint) error {
	if !caller.IsAdmin() {
		return ErrPermissionDenied
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// CreateLevel checks the parent sport exists so the handler can report a 404
// instead of a bare FK violation.
func (s *SportService) CreateLevel(ctx context.Context, caller domain.Principal, level domain.SportLevel) (domain.SportLevel, error) {
	if !caller.IsAdmin() {
		return domain.SportLevel{}, ErrPermissionDenied
	}

	if _, err := s.repo.FindByID(ctx, level.SportID); err != nil {
		return domain.SportLevel{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	created, err := s.repo.CreateLevel(ctx, level)
	if err != nil {
		return domain.SportLevel{}, fmt.Errorf("s.repo.CreateLevel -> %w", err)
	}

	return created, nil
}

func (s *SportService) GetLevel(ctx context.Context, id uint) (domain.SportLevel, error) {
	level, err := s.repo.FindLevelByID(ctx, id)
	if err != nil {
		return domain.SportLevel{}, fmt.Errorf("s.repo.FindLevelByID -> %w", err)
	}

	return level, nil
}

func (s *SportService) ListLevelsBySport(ctx context.Context, sportID uint) ([]domain.SportLevel, error) {
	if _, err := s.repo.FindByID(ctx, sportID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	levels, err := s.repo.FindLevelsBySport(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindLevelsBySport -> %w", err)
	}

	return levels, nil
}

func (s *SportService) UpdateLevel(ctx context.Context, caller domain.Principal, level domain.SportLevel) (domain.SportLevel, error) {
	if !caller.IsAdmin() {
		return domain.SportLevel{}, ErrPermissionDenied
	}

	updated, err := s.repo.UpdateLevel(ctx, level)
	if err != nil {
		return domain.SportLevel{}, fmt.Errorf("s.repo.UpdateLevel -> %w", err)
	}

	return updated, nil
}

func (s *SportService) DeleteLevel(ctx context.Context, caller domain.Principal, id uint) error {
	if !caller.IsAdmin() {
		return ErrPermissionDenied
	}

	if err := s.repo.DeleteLevel(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteLevel -> %w", err)
	}

	return nil
}
