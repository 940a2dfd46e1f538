package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository"
)

var (
	ErrUserNotFound     = repository.ErrUserNotFound
	ErrPermissionDenied = errors.New("permission denied")
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByDNI(ctx context.Context, dni string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByType(ctx context.Context, typeID uint) ([]domain.User, error)
	FindByGender(ctx context.Context, genderID uint) ([]domain.User, error)
	FindByLocation(ctx context.Context, country, city string) ([]domain.User, error)
	Search(ctx context.Context, query string) ([]domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	Delete(ctx context.Context, id uint) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) GetUserByDNI(ctx context.Context, dni string) (domain.User, error) {
	user, err := s.repo.FindByDNI(ctx, dni)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByDNI -> %w", err)
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return users, nil
}

func (s *UserService) ListUsersByType(ctx context.Context, typeID uint) ([]domain.User, error) {
	users, err := s.repo.FindByType(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByType -> %w", err)
	}

	return users, nil
}

func (s *UserService) ListUsersByGender(ctx context.Context, genderID uint) ([]domain.User, error) {
	users, err := s.repo.FindByGender(ctx, genderID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByGender -> %w", err)
	}

	return users, nil
}

func (s *UserService) ListUsersByLocation(ctx context.Context, country, city string) ([]domain.User, error) {
	users, err := s.repo.FindByLocation(ctx, country, city)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByLocation -> %w", err)
	}

	return users, nil
}

func (s *UserService) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	users, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Search -> %w", err)
	}

	return users, nil
}

// UpdateUser applies profile changes. Only admins and the user themselves may
// edit; DNI, type and gender are immutable after signup.
func (s *UserService) UpdateUser(ctx context.Context, caller domain.Principal, user domain.User) (domain.User, error) {
	if !domain.CanEditUser(caller, user.ID) {
		return domain.User{}, ErrPermissionDenied
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *UserService) ChangePassword(ctx context.Context, caller domain.Principal, userID uint, currentPassword, newPassword string) error {
	if !domain.CanEditUser(caller, userID) {
		return ErrPermissionDenied
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err = s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("s.repo.UpdatePassword -> %w", err)
	}

	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, caller domain.Principal, userID uint) error {
	if !domain.CanEditUser(caller, userID) {
		return ErrPermissionDenied
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
