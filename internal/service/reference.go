package service

import (
	"context"
	"fmt"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository"
)

var (
	ErrGenderNotFound   = repository.ErrGenderNotFound
	ErrGenderExists     = repository.ErrGenderExists
	ErrUserTypeNotFound = repository.ErrUserTypeNotFound
	ErrUserTypeExists   = repository.ErrUserTypeExists
)

type ReferenceRepository interface {
	CreateGender(ctx context.Context, gender domain.Gender) (domain.Gender, error)
	FindGenderByID(ctx context.Context, id uint) (domain.Gender, error)
	FindAllGenders(ctx context.Context) ([]domain.Gender, error)
	DeleteGender(ctx context.Context, id uint) error
	CreateUserType(ctx context.Context, userType domain.UserType) (domain.UserType, error)
	FindUserTypeByID(ctx context.Context, id uint) (domain.UserType, error)
	FindAllUserTypes(ctx context.Context) ([]domain.UserType, error)
	DeleteUserType(ctx context.Context, id uint) error
}

// ReferenceService manages the genders and user_types lookup tables.
// Mutations are admin-only; reads are open to any authenticated user.
type ReferenceService struct {
	repo ReferenceRepository
}

func NewReferenceService(repo ReferenceRepository) *ReferenceService {
	return &ReferenceService{
		repo: repo,
	}
}

func (s *ReferenceService) CreateGender(ctx context.Context, caller domain.Principal, gender domain.Gender) (domain.Gender, error) {
	if !caller.IsAdmin() {
		return domain.Gender{}, ErrPermissionDenied
	}

	created, err := s.repo.CreateGender(ctx, gender)
	if err != nil {
		return domain.Gender{}, fmt.Errorf("s.repo.CreateGender -> %w", err)
	}

	return created, nil
}

func (s *ReferenceService) GetGender(ctx context.Context, id uint) (domain.Gender, error) {
	gender, err := s.repo.FindGenderByID(ctx, id)
	if err != nil {
		return domain.Gender{}, fmt.Errorf("s.repo.FindGenderByID -> %w", err)
	}

	return gender, nil
}

func (s *ReferenceService) ListGenders(ctx context.Context) ([]domain.Gender, error) {
	genders, err := s.repo.FindAllGenders(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllGenders -> %w", err)
	}

	return genders, nil
}

func (s *ReferenceService) DeleteGender(ctx context.Context, caller domain.Principal, id uint) error {
	if !caller.IsAdmin() {
		return ErrPermissionDenied
	}

	if err := s.repo.DeleteGender(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteGender -> %w", err)
	}

	return nil
}

func (s *ReferenceService) CreateUserType(ctx context.Context, caller domain.Principal, userType domain.UserType) (domain.UserType, error) {
	if !caller.IsAdmin() {
		return domain.UserType{}, ErrPermissionDenied
	}

	created, err := s.repo.CreateUserType(ctx, userType)
	if err != nil {
		return domain.UserType{}, fmt.Errorf("s.repo.CreateUserType -> %w", err)
	}

	return created, nil
}

func (s *ReferenceService) GetUserType(ctx context.Context, id uint) (domain.UserType, error) {
	userType, err := s.repo.FindUserTypeByID(ctx, id)
	if err != nil {
		return domain.UserType{}, fmt.Errorf("s.repo.FindUserTypeByID -> %w", err)
	}

	return userType, nil
}

func (s *ReferenceService) ListUserTypes(ctx context.Context) ([]domain.UserType, error) {
	userTypes, err := s.repo.FindAllUserTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllUserTypes -> %w", err)
	}

	return userTypes, nil
}

func (s *ReferenceService) DeleteUserType(ctx context.Context, caller domain.Principal, id uint) error {
	if !caller.IsAdmin() {
		return ErrPermissionDenied
	}

	if err := s.repo.DeleteUserType(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteUserType -> %w", err)
	}

	return nil
}
