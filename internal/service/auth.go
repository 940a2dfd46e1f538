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
	ErrUserEmailExists = repository.ErrUserEmailExists
	ErrUserDNIExists   = repository.ErrUserDNIExists
	ErrWrongPassword   = errors.New("wrong password")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type AuthReferenceRepository interface {
	FindUserTypeByName(ctx context.Context, name string) (domain.UserType, error)
}

type AuthService struct {
	users      AuthUserRepository
	references AuthReferenceRepository
}

func NewAuthService(users AuthUserRepository, references AuthReferenceRepository) *AuthService {
	return &AuthService{
		users:      users,
		references: references,
	}
}

// Signup creates a user under the given role name. The role must exist in the
// user_types reference table; handlers default it to COMPETITOR.
func (s *AuthService) Signup(ctx context.Context, user domain.User, password, roleName string) (domain.User, error) {
	userType, err := s.references.FindUserTypeByName(ctx, roleName)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.references.FindUserTypeByName -> %w", err)
	}
	user.TypeID = userType.ID

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	user.PasswordHash = string(hash)

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.users.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.users.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}
