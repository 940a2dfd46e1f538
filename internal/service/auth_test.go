package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository"
	"github.com/jglopez/tappedout-api/internal/service"
)

type fakeAuthUserRepo struct {
	byEmail map[string]domain.User
	nextID  uint
}

func (f *fakeAuthUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}
	f.nextID++
	user.ID = f.nextID
	f.byEmail[user.Email] = user

	return user, nil
}

func (f *fakeAuthUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

type fakeAuthReferenceRepo struct {
	types map[string]domain.UserType
}

func (f *fakeAuthReferenceRepo) FindUserTypeByName(_ context.Context, name string) (domain.UserType, error) {
	userType, ok := f.types[name]
	if !ok {
		return domain.UserType{}, repository.ErrUserTypeNotFound
	}

	return userType, nil
}

func newAuthService() (*service.AuthService, *fakeAuthUserRepo) {
	users := &fakeAuthUserRepo{byEmail: make(map[string]domain.User)}
	references := &fakeAuthReferenceRepo{types: map[string]domain.UserType{
		domain.RoleAdmin:      {ID: 1, Name: domain.RoleAdmin},
		domain.RoleOrganizer:  {ID: 2, Name: domain.RoleOrganizer},
		domain.RoleCompetitor: {ID: 3, Name: domain.RoleCompetitor},
	}}

	return service.NewAuthService(users, references), users
}

func newSignupUser() domain.User {
	return domain.User{
		DNI:         "12345678A",
		Email:       "maria@example.com",
		FirstName:   "Maria",
		LastName:    "Lopez",
		DateOfBirth: time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC),
		GenderID:    1,
		Country:     "Spain",
		City:        "Madrid",
	}
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("hashes the password and resolves the role", func(t *testing.T) {
		svc, users := newAuthService()

		created, err := svc.Signup(context.Background(), newSignupUser(), "secret123", domain.RoleCompetitor)

		require.NoError(t, err)
		assert.Equal(t, uint(3), created.TypeID)

		stored := users.byEmail["maria@example.com"]
		assert.NotEqual(t, "secret123", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
	})

	t.Run("unknown role", func(t *testing.T) {
		svc, _ := newAuthService()

		_, err := svc.Signup(context.Background(), newSignupUser(), "secret123", "REFEREE")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, _ := newAuthService()

		_, err := svc.Signup(context.Background(), newSignupUser(), "secret123", domain.RoleCompetitor)
		require.NoError(t, err)

		_, err = svc.Signup(context.Background(), newSignupUser(), "secret123", domain.RoleCompetitor)
		assert.ErrorIs(t, err, service.ErrUserEmailExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthService()
	_, err := svc.Signup(context.Background(), newSignupUser(), "secret123", domain.RoleCompetitor)
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "maria@example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "maria@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "maria@example.com", "nope12345")

		assert.ErrorIs(t, err, service.ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "secret123")

		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}
